package bstree

import (
	"bufio"
	"fmt"
	"io"
)

// PrintLevels writes the elements of t to w, one line per level of the tree,
// elements separated by blanks. Nothing is written for an empty tree.
func (t *Tree[T]) PrintLevels(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for level := range t.Levels() {
		for i, x := range level {
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprint(bw, x)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// PrintTree writes the elements of t to w in ascending order, one per line.
// An empty tree prints as "Empty tree".
func (t *Tree[T]) PrintTree(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if t.IsEmpty() {
		bw.WriteString("Empty tree\n")
		return bw.Flush()
	}
	for x := range t.All() {
		fmt.Fprintln(bw, x)
	}
	return bw.Flush()
}
