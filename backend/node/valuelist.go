package node

import (
	"fmt"

	"github.com/speedata/linkednodelist/backend/collection"
)

// ValueList is a List of ValueNodes with helpers that work on the values
// directly.
type ValueList[T any] struct {
	List[*ValueNode[T]]
}

// NewValueList returns an empty value list.
func NewValueList[T any]() *ValueList[T] { return &ValueList[T]{} }

// PrependValue adds a new node with the value v at the start of the list and
// returns it.
func (l *ValueList[T]) PrependValue(v T) *ValueNode[T] {
	n := NewValueNode(v)
	l.linkBefore(n, nil)
	return n
}

// AppendValue adds a new node with the value v at the end of the list and
// returns it.
func (l *ValueList[T]) AppendValue(v T) *ValueNode[T] {
	n := NewValueNode(v)
	l.linkAfter(n, nil)
	return n
}

// Values returns an iterator over the values from the first to the last node.
func (l *ValueList[T]) Values() collection.Iterator[T] {
	return collection.Map(l.Iterate(), func(n *ValueNode[T]) T { return n.Value })
}

// CopyValuesTo writes the values into *dst, starting at position index. The
// slice grows if necessary; positions between the old length and index get
// the zero value.
func (l *ValueList[T]) CopyValuesTo(dst *[]T, index int) error {
	if dst == nil {
		return fmt.Errorf("%w: destination is nil", ErrInvalidArgument)
	}
	if index < 0 {
		return fmt.Errorf("%w: negative index %d", ErrInvalidArgument, index)
	}
	i := index
	it := l.Iterate()
	for it.Next() {
		if i >= len(*dst) {
			*dst = append(*dst, make([]T, i-len(*dst)+1)...)
		}
		(*dst)[i] = it.Value().Value
		i++
	}
	return it.Err()
}
