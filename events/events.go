/*
Package events broadcasts changes of a binary search tree to subscribers.

An Observed tree forwards operations to a bstree.Tree and publishes an Event
for every mutation. Any number of subscribers may listen to these events, each
receiving them on a channel of its own, in the order the operations happened.

The tree itself is still owned by a single client; only the events travel
between goroutines. Events carry copies of elements, never tree nodes.

Subscribers have to drain their channels: publishing blocks while a
subscriber's channel is full.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bstree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}

// ErrClosed is returned when subscribing to an observed tree which has been
// closed.
var ErrClosed = errors.New("events: broadcaster closed")

// Op is the kind of a tree mutation.
type Op int8

const (
	OpInsert Op = iota
	OpRemove
	OpMakeEmpty
	OpRotateLeft
	OpRotateRight
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpMakeEmpty:
		return "make-empty"
	case OpRotateLeft:
		return "rotate-left"
	case OpRotateRight:
		return "rotate-right"
	}
	return fmt.Sprintf("Op(%d)", int8(op))
}

// Event describes a single operation on an observed tree.
type Event[T any] struct {
	Op    Op
	Value T     // element the operation was called with; zero for OpMakeEmpty
	Count int   // node count of the tree after the operation
	Err   error // non-nil if the operation has not been performed
}

func (e Event[T]) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s(%v) failed: %v", e.Op, e.Value, e.Err)
	}
	if e.Op == OpMakeEmpty {
		return fmt.Sprintf("%s → %d nodes", e.Op, e.Count)
	}
	return fmt.Sprintf("%s(%v) → %d nodes", e.Op, e.Value, e.Count)
}

// Observed wraps a tree and publishes its mutations.
type Observed[T any] struct {
	tree *bstree.Tree[T]
	cast *caster.Caster
}

// Observe starts observing tree. Clients should perform all further
// mutations of tree through the returned Observed.
func Observe[T any](tree *bstree.Tree[T]) *Observed[T] {
	return &Observed[T]{
		tree: tree,
		cast: caster.New(nil),
	}
}

// Tree returns the observed tree. Rotations replace the observed tree, so
// clients should not hold on to the result across rotations.
func (o *Observed[T]) Tree() *bstree.Tree[T] {
	return o.tree
}

func (o *Observed[T]) publish(op Op, x T, err error) {
	ev := Event[T]{Op: op, Value: x, Count: o.tree.NodeCount(), Err: err}
	if !o.cast.Pub(ev) {
		tracer().Debugf("events: dropped %v, broadcaster closed", ev)
	}
}

// Insert inserts x into the observed tree and publishes OpInsert.
func (o *Observed[T]) Insert(x T) {
	o.tree.Insert(x)
	o.publish(OpInsert, x, nil)
}

// Remove removes x from the observed tree and publishes OpRemove.
func (o *Observed[T]) Remove(x T) {
	o.tree.Remove(x)
	o.publish(OpRemove, x, nil)
}

// MakeEmpty empties the observed tree and publishes OpMakeEmpty.
func (o *Observed[T]) MakeEmpty() {
	o.tree.MakeEmpty()
	var zero T
	o.publish(OpMakeEmpty, zero, nil)
}

// RotateLeft rotates left at x. On success the rotated tree replaces the
// observed tree. The event is published in either case, carrying the error of
// a rotation which was not applicable.
func (o *Observed[T]) RotateLeft(x T) error {
	return o.rotate(OpRotateLeft, x, o.tree.RotateLeft)
}

// RotateRight rotates right at x, analogous to RotateLeft.
func (o *Observed[T]) RotateRight(x T) error {
	return o.rotate(OpRotateRight, x, o.tree.RotateRight)
}

func (o *Observed[T]) rotate(op Op, x T, rot func(T) (*bstree.Tree[T], error)) error {
	rotated, err := rot(x)
	if err == nil {
		o.tree = rotated
	}
	o.publish(op, x, err)
	return err
}

// Subscribe returns a channel receiving all events published after the call.
// The channel is closed when ctx is done or o is closed. Subscribing to a
// closed Observed returns ErrClosed.
//
// A subscriber which stops reading has to cancel ctx; its channel is closed
// then, and events still pending for it are discarded.
func (o *Observed[T]) Subscribe(ctx context.Context, capacity uint) (<-chan Event[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-o.cast.Done():
		return nil, ErrClosed
	default:
	}
	sub, _ := o.cast.Sub(ctx, capacity)
	out := make(chan Event[T], capacity)
	go func() {
		// the broadcaster blocks on a full subscription; keep it flowing until
		// it closes sub, which happens on the next publication after ctx is done
		defer func() {
			for range sub {
			}
		}()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-sub:
				if !ok {
					return
				}
				ev, ok := m.(Event[T])
				if !ok {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Close stops publishing and closes all subscriber channels.
// The observed tree stays usable.
func (o *Observed[T]) Close() {
	o.cast.Close()
	<-o.cast.Done()
}
