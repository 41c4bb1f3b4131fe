package node

import (
	"fmt"

	"github.com/speedata/linkednodelist/backend/bag"
	"github.com/speedata/linkednodelist/backend/collection"
)

// List manages the links of a chain of nodes it does not own.
// The zero value for List is an empty list ready to use.
//
// Every change of the chain increments the version of the list. Iterators
// remember the version they started with and stop with
// ErrConcurrentModification if the list has been changed in between.
//
// A List is not safe for concurrent use.
type List[N Linker[N]] struct {
	first, last N
	version     int
	unsafeCount int
	reversed    *Reversed[N]
}

// NewList returns an empty list.
func NewList[N Linker[N]]() *List[N] { return &List[N]{} }

// First returns the first node of list l or the zero value if the list is empty.
func (l *List[N]) First() N { return l.first }

// Last returns the last node of list l or the zero value if the list is empty.
func (l *List[N]) Last() N { return l.last }

// Version returns the current version of the list.
func (l *List[N]) Version() int { return l.version }

// UnsafeCount returns the tracked number of nodes in the list. The complexity
// is O(1). Since the links of the nodes are not protected, this number gets
// out of sync if they are modified from outside. Use collection.Count for the
// actual number of nodes.
func (l *List[N]) UnsafeCount() int { return l.unsafeCount }

// assertDetached makes sure that n can be added. The single node of a list
// has no links, so it is compared to the boundaries as well.
func (l *List[N]) assertDetached(n N, name string) error {
	if isZero(n) {
		return fmt.Errorf("%w: %s is nil", ErrInvalidArgument, name)
	}
	if !detached(n) || n == l.first {
		return fmt.Errorf("%w: cannot add %s to a list", ErrInvalidState, name)
	}
	return nil
}

// checkAnchor makes sure that a detached anchor is the single node of l.
// Linked anchors are not checked for membership.
func (l *List[N]) checkAnchor(node, anchor N, name string) error {
	if isZero(anchor) {
		return nil
	}
	if anchor == node {
		return fmt.Errorf("%w: %s is the node itself", ErrInvalidArgument, name)
	}
	if detached(anchor) && anchor != l.first {
		return fmt.Errorf("%w: %s is not part of the list", ErrInvalidArgument, name)
	}
	return nil
}

// AddNodeAfter inserts node right after the node after. If after is the zero
// value, node is appended to the list. The node must not be linked.
func (l *List[N]) AddNodeAfter(node, after N) error {
	if err := l.assertDetached(node, "node"); err != nil {
		return err
	}
	if err := l.checkAnchor(node, after, "after"); err != nil {
		return err
	}
	l.linkAfter(node, after)
	return nil
}

// AddNodeBefore inserts node right before the node before. If before is the
// zero value, node becomes the first node of the list. The node must not be
// linked.
func (l *List[N]) AddNodeBefore(node, before N) error {
	if err := l.assertDetached(node, "node"); err != nil {
		return err
	}
	if err := l.checkAnchor(node, before, "before"); err != nil {
		return err
	}
	l.linkBefore(node, before)
	return nil
}

// AddNode appends node to the end of the list.
func (l *List[N]) AddNode(node N) error {
	var zero N
	return l.AddNodeAfter(node, zero)
}

func (l *List[N]) linkAfter(node, after N) {
	if isZero(after) {
		after = l.last
	}
	if isZero(after) {
		l.first, l.last = node, node
	} else {
		next := after.Next()
		node.SetNext(next)
		node.SetPrev(after)
		after.SetNext(node)
		if !isZero(next) {
			next.SetPrev(node)
		}
		if after == l.last {
			l.last = node
		}
	}
	l.version++
	l.unsafeCount++
}

func (l *List[N]) linkBefore(node, before N) {
	if isZero(before) {
		before = l.first
	}
	if isZero(before) {
		l.first, l.last = node, node
	} else {
		prev := before.Prev()
		node.SetPrev(prev)
		node.SetNext(before)
		before.SetPrev(node)
		if !isZero(prev) {
			prev.SetNext(node)
		}
		if before == l.first {
			l.first = node
		}
	}
	l.version++
	l.unsafeCount++
}

// RemoveNode unlinks node from the list and detaches it. It returns false if
// the node is not linked (for example because it has been removed already).
// ErrCorruptedState is returned if the links of node do not match the
// boundaries of the list; the list is unchanged in that case.
func (l *List[N]) RemoveNode(node N) (bool, error) {
	if isZero(node) {
		return false, fmt.Errorf("%w: node is nil", ErrInvalidArgument)
	}
	prev, next := node.Prev(), node.Next()
	noPrev := isZero(prev) && node != l.first
	noNext := isZero(next) && node != l.last
	if noPrev != noNext {
		if noPrev {
			return false, fmt.Errorf("%w: node has no previous node but is not the first node", ErrCorruptedState)
		}
		return false, fmt.Errorf("%w: node has no next node but is not the last node", ErrCorruptedState)
	}
	if noPrev {
		return false, nil
	}

	if isZero(prev) {
		l.first = next
	} else {
		prev.SetNext(next)
	}
	if isZero(next) {
		l.last = prev
	} else {
		next.SetPrev(prev)
	}
	var zero N
	node.SetPrev(zero)
	node.SetNext(zero)
	l.version++
	l.unsafeCount--
	return true, nil
}

// TakeFirst removes the first node and returns it. It returns the zero value
// if the list is empty.
func (l *List[N]) TakeFirst() (N, error) {
	var zero N
	n := l.first
	if isZero(n) {
		return zero, nil
	}
	if !isZero(n.Prev()) {
		return zero, fmt.Errorf("%w: first node has a previous node", ErrCorruptedState)
	}
	if _, err := l.RemoveNode(n); err != nil {
		return zero, err
	}
	return n, nil
}

// TakeLast removes the last node and returns it. It returns the zero value if
// the list is empty.
func (l *List[N]) TakeLast() (N, error) {
	var zero N
	n := l.last
	if isZero(n) {
		return zero, nil
	}
	if !isZero(n.Next()) {
		return zero, fmt.Errorf("%w: last node has a next node", ErrCorruptedState)
	}
	if _, err := l.RemoveNode(n); err != nil {
		return zero, err
	}
	return n, nil
}

// RemoveFirst removes the first node and reports whether there was one.
func (l *List[N]) RemoveFirst() (bool, error) {
	n, err := l.TakeFirst()
	return !isZero(n), err
}

// RemoveLast removes the last node and reports whether there was one.
func (l *List[N]) RemoveLast() (bool, error) {
	n, err := l.TakeLast()
	return !isZero(n), err
}

// Clear detaches all nodes and returns the number of nodes that were in the
// list.
func (l *List[N]) Clear() int {
	var zero N
	cF, cL := 0, 0

	n := l.first
	l.first = zero
	for !isZero(n) {
		cF++
		cur := n
		n = n.Next()
		cur.SetNext(zero)
	}

	n = l.last
	l.last = zero
	for !isZero(n) {
		cL++
		cur := n
		n = n.Prev()
		cur.SetPrev(zero)
	}

	// Corrupted lists must still be clearable, so this is not an error.
	if cF != cL {
		bag.Logger.Warnw("forward and reverse count do not match when clearing the list", "forward", cF, "reverse", cL)
	}

	l.version++
	l.unsafeCount = 0
	return cF
}

// Replace puts replacement at the position of node. The replacement must not
// be linked. The links of node are left untouched, so node still points into
// the list afterwards and must not be added anywhere before it is detached by
// the caller. A node that is neither linked nor the single node of l is an
// ErrInvalidArgument.
func (l *List[N]) Replace(node, replacement N) error {
	if isZero(node) {
		return fmt.Errorf("%w: node is nil", ErrInvalidArgument)
	}
	if node == replacement {
		return nil
	}
	if err := l.assertDetached(replacement, "replacement"); err != nil {
		return err
	}
	if detached(node) && node != l.first {
		return fmt.Errorf("%w: node is not part of the list", ErrInvalidArgument)
	}

	prev, next := node.Prev(), node.Next()
	replacement.SetPrev(prev)
	replacement.SetNext(next)
	if !isZero(prev) {
		prev.SetNext(replacement)
	}
	if !isZero(next) {
		next.SetPrev(replacement)
	}
	if node == l.first {
		l.first = replacement
	}
	if node == l.last {
		l.last = replacement
	}
	l.version++
	return nil
}

// NodeAt returns the node at position index or the zero value if the index is
// out of range.
func (l *List[N]) NodeAt(index int) N {
	var zero N
	if index < 0 {
		return zero
	}
	n := l.first
	for i := 0; !isZero(n) && i < index; i++ {
		n = n.Next()
	}
	return n
}

// Find returns the first node for which pred returns true. The second
// argument of pred is the position of the node.
func (l *List[N]) Find(pred func(N, int) bool) (N, error) {
	var zero N
	if pred == nil {
		return zero, fmt.Errorf("%w: predicate is nil", ErrInvalidArgument)
	}
	it := l.Iterate()
	for i := 0; it.Next(); i++ {
		if n := it.Value(); pred(n, i) {
			return n, nil
		}
	}
	return zero, it.Err()
}

// IndexOf returns the position of node in the list or -1.
func (l *List[N]) IndexOf(node N) int {
	if isZero(node) || (detached(node) && node != l.first) {
		return -1
	}
	i := 0
	for n := l.first; !isZero(n); n = n.Next() {
		if n == node {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether node is part of the list.
func (l *List[N]) Contains(node N) (bool, error) {
	if isZero(node) {
		return false, fmt.Errorf("%w: node is nil", ErrInvalidArgument)
	}
	return l.IndexOf(node) != -1, nil
}

// Iterate returns an iterator from the first to the last node.
func (l *List[N]) Iterate() collection.Iterator[N] {
	return l.iterate(false)
}

// Reversed returns the list in reverse order. The same value is returned on
// every call.
func (l *List[N]) Reversed() *Reversed[N] {
	if l.reversed == nil {
		l.reversed = &Reversed[N]{list: l}
	}
	return l.reversed
}
