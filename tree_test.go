package bstree

import (
	"errors"
	"maps"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func fromValues(values ...int) *Tree[int] {
	tree := New[int]()
	for _, x := range values {
		tree.Insert(x)
	}
	return tree
}

// sampleT has 20 elements. Every node has 0 or 2 children, except for 95,
// which has a single right child 100.
func sampleT() *Tree[int] {
	return fromValues(40, 10, 50, 5, 20, 45, 60, 15, 30, 55, 70, 25, 35, 65, 80, 75, 90, 85, 95, 100)
}

// sampleT1 is
//
//	    6
//	   / \
//	  0   8
//	   \  / \
//	   2 7  10
//	  / \
//	 1   4
func sampleT1() *Tree[int] {
	t1 := fromValues(6)
	for i := 0; i < 10; i += 2 {
		t1.Insert(i)
	}
	for i := 10; i > 0; i -= 3 {
		t1.Insert(i)
	}
	return t1
}

// sampleT2 has the same shape as sampleT1, every element shifted by 5.
func sampleT2() *Tree[int] {
	t2 := fromValues(11)
	for i := 0; i < 10; i += 2 {
		t2.Insert(i + 5)
	}
	for i := 10; i > 0; i -= 3 {
		t2.Insert(i + 5)
	}
	return t2
}

func levelsOf[T any](tree *Tree[T]) [][]T {
	var levels [][]T
	for level := range tree.Levels() {
		levels = append(levels, level)
	}
	return levels
}

func mustCheck[T any](t *testing.T, tree *Tree[T]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants violated: %v", err)
	}
}

func TestInsertContains(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := sampleT()
	mustCheck(t, tree)
	for _, x := range []int{5, 40, 75, 100} {
		if !tree.Contains(x) {
			t.Errorf("expected tree to contain %d", x)
		}
	}
	for _, x := range []int{0, 41, 101} {
		if tree.Contains(x) {
			t.Errorf("expected tree not to contain %d", x)
		}
	}
	if New[int]().Contains(1) {
		t.Errorf("empty tree must not contain anything")
	}
}

func TestInsertDuplicateIsNoop(t *testing.T) {
	once := fromValues(5, 3, 8)
	twice := fromValues(5, 3, 8, 3, 8, 5)
	if once.NodeCount() != twice.NodeCount() {
		t.Fatalf("duplicate insert changed node count: %d != %d", once.NodeCount(), twice.NodeCount())
	}
	if eq, err := once.Equals(twice); err != nil || !eq {
		t.Fatalf("duplicate insert changed tree, equals=%v err=%v", eq, err)
	}
}

func TestRemove(t *testing.T) {
	tree := sampleT1()
	tree.Remove(0) // one child
	if tree.Contains(0) || tree.NodeCount() != 7 {
		t.Fatalf("remove of 0 failed, count=%d", tree.NodeCount())
	}
	mustCheck(t, tree)
	tree.Remove(6) // root with two children, successor 7
	if tree.root.element != 7 {
		t.Errorf("expected successor 7 to replace root, have %d", tree.root.element)
	}
	if !slices.Equal(tree.InOrder(), []int{1, 2, 4, 7, 8, 10}) {
		t.Errorf("unexpected in-order after remove: %v", tree.InOrder())
	}
	mustCheck(t, tree)
	tree.Remove(99) // absent
	if tree.NodeCount() != 6 {
		t.Errorf("remove of absent element changed count to %d", tree.NodeCount())
	}
	for _, x := range []int{1, 2, 4, 7, 8, 10} {
		tree.Remove(x)
	}
	if !tree.IsEmpty() {
		t.Errorf("expected tree to be empty")
	}
	tree.Remove(1)
}

func TestRemoveInsertInverse(t *testing.T) {
	tree := sampleT()
	before := tree.InOrder()
	tree.Insert(42)
	tree.Remove(42)
	if !slices.Equal(before, tree.InOrder()) || tree.NodeCount() != len(before) {
		t.Fatalf("remove did not undo insert: %v", tree.InOrder())
	}
}

func TestFindMinMax(t *testing.T) {
	tree := sampleT()
	if lo, err := tree.FindMin(); err != nil || lo != 5 {
		t.Errorf("expected min 5, have %d (%v)", lo, err)
	}
	if hi, err := tree.FindMax(); err != nil || hi != 100 {
		t.Errorf("expected max 100, have %d (%v)", hi, err)
	}
	tree.MakeEmpty()
	if !tree.IsEmpty() {
		t.Fatalf("expected MakeEmpty to empty the tree")
	}
	if _, err := tree.FindMin(); !errors.Is(err, ErrUnderflow) {
		t.Errorf("expected ErrUnderflow for FindMin, have %v", err)
	}
	if _, err := tree.FindMax(); !errors.Is(err, ErrUnderflow) {
		t.Errorf("expected ErrUnderflow for FindMax, have %v", err)
	}
}

func TestHeight(t *testing.T) {
	if h := New[int]().Height(); h != -1 {
		t.Errorf("expected height -1 for empty tree, have %d", h)
	}
	if h := fromValues(1).Height(); h != 0 {
		t.Errorf("expected height 0 for single node, have %d", h)
	}
	if h := sampleT1().Height(); h != 3 {
		t.Errorf("expected height 3 for t1, have %d", h)
	}
}

func TestNewFuncOrder(t *testing.T) {
	tree := NewFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	for _, s := range []string{"pear", "Apple", "fig", "APPLE"} {
		tree.Insert(s)
	}
	if tree.NodeCount() != 3 {
		t.Fatalf("expected case-insensitive duplicates to collapse, count=%d", tree.NodeCount())
	}
	if !slices.Equal(tree.InOrder(), []string{"Apple", "fig", "pear"}) {
		t.Errorf("unexpected order %v", tree.InOrder())
	}
}

func TestRandomInsertRemoveKeepsOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	tree := New[int]()
	ref := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		x := rnd.Intn(200)
		if rnd.Intn(3) == 0 {
			tree.Remove(x)
			delete(ref, x)
		} else {
			tree.Insert(x)
			ref[x] = true
		}
		if i%100 == 0 {
			mustCheck(t, tree)
		}
	}
	mustCheck(t, tree)
	want := slices.Sorted(maps.Keys(ref))
	if !slices.Equal(tree.InOrder(), want) {
		t.Fatalf("in-order sequence differs from reference set")
	}
	if tree.NodeCount() != len(want) {
		t.Fatalf("node count %d, reference has %d elements", tree.NodeCount(), len(want))
	}
}
