package node

import (
	"fmt"

	"github.com/speedata/linkednodelist/backend/collection"
)

// Iterator walks the nodes of a list in one direction. It stops with
// ErrConcurrentModification as soon as the list has been changed after the
// iterator was created.
type Iterator[N Linker[N]] struct {
	list    *List[N]
	version int
	reverse bool
	next    N
	cur     N
	done    bool
	err     error
}

func (l *List[N]) iterate(reverse bool) *Iterator[N] {
	it := &Iterator[N]{list: l, version: l.version, reverse: reverse, next: l.first}
	if reverse {
		it.next = l.last
	}
	return it
}

// Next advances to the next node and reports whether there is one.
func (it *Iterator[N]) Next() bool {
	if it.done {
		return false
	}
	var zero N
	if v := it.list.version; v != it.version {
		it.err = fmt.Errorf("%w (started at version %d, now %d)", ErrConcurrentModification, it.version, v)
		it.cur, it.done = zero, true
		return false
	}
	if isZero(it.next) {
		it.cur, it.done = zero, true
		return false
	}
	it.cur = it.next
	if it.reverse {
		it.next = it.cur.Prev()
	} else {
		it.next = it.cur.Next()
	}
	return true
}

// Value returns the current node.
func (it *Iterator[N]) Value() N { return it.cur }

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[N]) Err() error { return it.err }

// Reversed is the view of a list from the last to the first node.
type Reversed[N Linker[N]] struct {
	list *List[N]
}

// Iterate returns an iterator from the last to the first node.
func (r *Reversed[N]) Iterate() collection.Iterator[N] {
	return r.list.iterate(true)
}
