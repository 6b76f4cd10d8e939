package bstree

import (
	"bytes"
	"slices"
	"testing"
)

func TestLevels(t *testing.T) {
	tree := sampleT()
	want := [][]int{
		{40},
		{10, 50},
		{5, 20, 45, 60},
		{15, 30, 55, 70},
		{25, 35, 65, 80},
		{75, 90},
		{85, 95},
		{100},
	}
	assertLevels(t, tree, want)
	// restartable
	assertLevels(t, tree, want)
	if n := len(levelsOf(New[int]())); n != 0 {
		t.Errorf("expected no levels for empty tree, have %d", n)
	}
}

func TestLevelsStopEarly(t *testing.T) {
	tree := sampleT()
	cnt := 0
	for level := range tree.Levels() {
		cnt++
		if len(level) == 4 {
			break
		}
	}
	if cnt != 3 {
		t.Errorf("expected iteration to stop at level 3, stopped at %d", cnt)
	}
}

func TestTraversals(t *testing.T) {
	t1 := sampleT1()
	if !slices.Equal(t1.InOrder(), []int{0, 1, 2, 4, 6, 7, 8, 10}) {
		t.Errorf("unexpected in-order %v", t1.InOrder())
	}
	if pre := slices.Collect(t1.PreOrder()); !slices.Equal(pre, []int{6, 0, 2, 1, 4, 8, 7, 10}) {
		t.Errorf("unexpected pre-order %v", pre)
	}
	var firstThree []int
	for x := range t1.All() {
		firstThree = append(firstThree, x)
		if len(firstThree) == 3 {
			break
		}
	}
	if !slices.Equal(firstThree, []int{0, 1, 2}) {
		t.Errorf("unexpected prefix of All %v", firstThree)
	}
	if len(New[int]().InOrder()) != 0 || len(slices.Collect(New[int]().PreOrder())) != 0 {
		t.Errorf("expected empty traversals for empty tree")
	}
}

func TestPrintLevels(t *testing.T) {
	var b bytes.Buffer
	if err := sampleT1().PrintLevels(&b); err != nil {
		t.Fatal(err)
	}
	want := "6\n0 8\n2 7 10\n1 4\n"
	if b.String() != want {
		t.Errorf("expected levels output %q, have %q", want, b.String())
	}
	b.Reset()
	if err := New[int]().PrintLevels(&b); err != nil || b.Len() != 0 {
		t.Errorf("expected no output for empty tree, have %q", b.String())
	}
}

func TestPrintTree(t *testing.T) {
	var b bytes.Buffer
	if err := fromValues(2, 3, 1).PrintTree(&b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "1\n2\n3\n" {
		t.Errorf("unexpected in-order output %q", b.String())
	}
	b.Reset()
	New[int]().PrintTree(&b)
	if b.String() != "Empty tree\n" {
		t.Errorf("unexpected output for empty tree %q", b.String())
	}
}
