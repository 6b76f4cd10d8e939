/*
Package html renders binary search trees as HTML and loads tree elements
from HTML fragments.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}

// Levels creates an HTML table for the levels of a tree. Every level is a
// table row, headed by its depth, with one cell per element:
//
//	<table class="bstree-levels">
//	  <tr><th>0</th><td>40</td></tr>
//	  <tr><th>1</th><td>10</td><td>50</td></tr>
//	</table>
//
// The table of an empty tree has no rows.
func Levels[T any](tree *bstree.Tree[T]) *html.Node {
	table := element(atom.Table)
	table.Attr = []html.Attribute{{Key: "class", Val: "bstree-levels"}}
	depth := 0
	for level := range tree.Levels() {
		tr := element(atom.Tr)
		tr.AppendChild(cell(atom.Th, strconv.Itoa(depth)))
		for _, x := range level {
			tr.AppendChild(cell(atom.Td, fmt.Sprint(x)))
		}
		table.AppendChild(tr)
		depth++
	}
	return table
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func cell(a atom.Atom, text string) *html.Node {
	c := element(a)
	c.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return c
}

// Render writes the levels table of tree to w.
func Render[T any](tree *bstree.Tree[T], w io.Writer) error {
	return html.Render(w, Levels(tree))
}

// InsertFromHTML parses an HTML fragment and inserts the text of every list
// item (<li>) into tree. Surrounding white space is trimmed; empty items are
// skipped. Duplicates are ignored, as with bstree.Tree.Insert.
//
// It returns the number of list items found.
func InsertFromHTML(tree *bstree.Tree[string], input io.Reader) (int, error) {
	if tree == nil {
		return 0, fmt.Errorf("html: tree is nil")
	}
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return 0, err
	}
	cnt := 0
	for _, n := range nodes {
		cnt += collectItems(n, tree)
	}
	tracer().Debugf("html: found %d list items", cnt)
	return cnt, nil
}

func collectItems(n *html.Node, tree *bstree.Tree[string]) int {
	if n.Type == html.ElementNode && n.DataAtom == atom.Li {
		var b strings.Builder
		collectText(n, &b)
		if s := strings.TrimSpace(b.String()); s != "" {
			tree.Insert(s)
		}
		return 1
	}
	cnt := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cnt += collectItems(c, tree)
	}
	return cnt
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
