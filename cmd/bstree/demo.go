package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/bstree/events"
	"github.com/spf13/cobra"
)

func demoCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "replay a tour of all tree operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every mutation of the first tree")
	return cmd
}

// demo collects output and remembers the first write error.
type demo struct {
	w   io.Writer
	err error
}

func (d *demo) printf(format string, args ...any) {
	if d.err == nil {
		_, d.err = fmt.Fprintf(d.w, format, args...)
	}
}

func (d *demo) section(title string) {
	d.printf("********** %s **********\n", title)
}

func (d *demo) levels(title string, tree *bstree.Tree[int]) {
	d.printf("%s\n", title)
	if d.err == nil {
		d.err = tree.PrintLevels(d.w)
	}
}

func (d *demo) result(label string, ok bool, err error) {
	if err != nil {
		d.printf("%s: %v\n", label, err)
		return
	}
	d.printf("%s: %v\n", label, ok)
}

// fillT builds the 20 element tree of the demo. With a non-nil log it
// reports every insertion.
func fillT(log io.Writer) (*bstree.Tree[int], error) {
	o := events.Observe(bstree.New[int]())
	defer o.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := o.Subscribe(ctx, 32)
	if err != nil {
		return nil, err
	}
	ops := 0
	o.Insert(40)
	ops++
	for i := 10; i <= 100; i += 10 {
		o.Insert(i)
		ops++
	}
	for i := 5; i < 100; i += 10 {
		o.Insert(i)
		ops++
	}
	for ; ops > 0; ops-- {
		select {
		case ev := <-ch:
			if log != nil {
				fmt.Fprintf(log, "  %v\n", ev)
			}
		case <-time.After(time.Second):
			return nil, errors.New("demo: timeout waiting for tree events")
		}
	}
	return o.Tree(), nil
}

func fillT1T2() (*bstree.Tree[int], *bstree.Tree[int]) {
	t1, t2 := bstree.New[int](), bstree.New[int]()
	t1.Insert(6)
	t2.Insert(11)
	for i := 0; i < 10; i += 2 {
		t1.Insert(i)
		t2.Insert(i + 5)
	}
	for i := 10; i > 0; i -= 3 {
		t1.Insert(i)
		t2.Insert(i + 5)
	}
	return t1, t2
}

func runDemo(w io.Writer, verbose bool) error {
	d := &demo{w: w}
	var log io.Writer
	if verbose {
		log = w
	}
	t, err := fillT(log)
	if err != nil {
		return err
	}
	d.section("Node count of tree t")
	d.printf("t.NodeCount(): %d\n", t.NodeCount())
	d.section("Full tree")
	full, err := t.IsFull()
	d.result("Is tree t full?", full, err)
	t.Remove(95)
	full, err = t.IsFull()
	d.result("Is tree t full after removing 95?", full, err)

	t1, t2 := fillT1T2()
	d.section("Structure comparison")
	same, err := t1.CompareStructure(t2)
	d.result("Same structure t1, t2?", same, err)
	same, err = t.CompareStructure(t1)
	d.result("Same structure t, t1?", same, err)

	d.section("Equals")
	eq, err := t1.Equals(t1)
	d.result("Is t1 equal to t1?", eq, err)
	eq, err = t1.Equals(t2)
	d.result("Is t1 equal to t2?", eq, err)

	d.section("Copy")
	copyOfT2 := t2.Copy()
	d.levels("Levels of copy of t2:", copyOfT2)
	eq, err = copyOfT2.Equals(t2)
	d.result("Is copy of t2 equal to t2?", eq, err)
	copyOfT2.Remove(7)
	eq, err = copyOfT2.Equals(t2)
	d.result("Is copy of t2 equal to t2 after removing 7?", eq, err)

	d.section("Mirror")
	mirrored := t1.Mirror()
	d.levels("Levels of the mirror of t1:", mirrored)
	d.result("Is t2 a mirror of it?", t2.IsMirror(mirrored), nil)
	d.result("Is t1 a mirror of it?", t1.IsMirror(mirrored), nil)

	d.section("Rotate right")
	if r, err := t1.RotateRight(8); err == nil {
		d.levels("Levels of t1 after right rotation at 8:", r)
	} else {
		d.printf("%v\n", err)
	}
	if r, err := t2.RotateRight(11); err == nil {
		d.levels("Levels of t2 after right rotation at its root 11:", r)
	} else {
		d.printf("%v\n", err)
	}
	d.section("Rotate left")
	if r, err := copyOfT2.RotateLeft(13); err == nil {
		d.levels("Levels of copy of t2 after left rotation at 13:", r)
	} else {
		d.printf("%v\n", err)
	}

	d.section("Levels")
	d.levels("Levels of t:", t)

	d.section("Invalid rotations")
	invalid := []struct {
		dir string
		rot func(int) (*bstree.Tree[int], error)
		x   int
	}{
		{"right", t2.RotateRight, 5},
		{"left", t2.RotateLeft, 12},
	}
	for _, c := range invalid {
		if _, err := c.rot(c.x); err != nil {
			d.printf("%s rotation at %d not performed: %v\n", c.dir, c.x, err)
		}
	}
	return d.err
}
