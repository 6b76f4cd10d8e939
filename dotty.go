package bstree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Empty child slots of inner nodes are drawn as
// small empty circles, which makes left and right children distinguishable.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	empties := 0
	emptySlot := func(parent int) {
		empties++
		fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", empties, emptyNode())
		fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", parent, empties)
	}
	if !tree.IsEmpty() {
		preorderNodes(tree.root, func(n *node[T]) {
			ID := ids.alloc(n)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, dotLabel(n.element), nodeDotStyles(n.isLeaf()))
			if n.isLeaf() {
				return
			}
			for _, child := range [2]*node[T]{n.left, n.right} {
				if child == nil {
					emptySlot(ID)
				} else {
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				}
			}
		})
	}
	_, err := io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+
		edgelist.String()+
		"}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func preorderNodes[T any](n *node[T], fn func(*node[T])) {
	if n == nil {
		return
	}
	fn(n)
	preorderNodes(n.left, fn)
	preorderNodes(n.right, fn)
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// dotLabel formats x as the content of a quoted DOT string.
func dotLabel(x any) string {
	return dotEscaper.Replace(fmt.Sprint(x))
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=\"#a3d7e4\",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
