// Package node provides intrusive doubly linked lists.
//
// The list does not own its nodes. Any type that can store a previous and a
// next pointer (see Linker) can be chained. The easiest way is to embed Links:
//
//	type Glyph struct {
//		node.Links[*Glyph]
//		Codepoint rune
//	}
//
//	l := node.NewList[*Glyph]()
//	l.AddNode(&Glyph{Codepoint: 'a'})
//
// Once a node is added, the list is the only one that should write its
// links. Changing Prev or Next directly breaks the list, which is detected on
// a best effort basis only (see UnsafeCount).
package node

import "fmt"

// Linker is the interface that nodes must implement to be chained in a List.
// The zero value of N (usually a nil pointer) means "no node".
type Linker[N any] interface {
	comparable
	Prev() N
	Next() N
	SetPrev(N)
	SetNext(N)
}

// Links holds the previous and the next pointer of a node. Embed it in a
// struct to satisfy Linker.
type Links[N any] struct {
	prev, next N
}

// Prev returns the previous node or the zero value.
func (l *Links[N]) Prev() N { return l.prev }

// Next returns the next node or the zero value.
func (l *Links[N]) Next() N { return l.next }

// SetPrev sets the previous node.
func (l *Links[N]) SetPrev(n N) { l.prev = n }

// SetNext sets the next node.
func (l *Links[N]) SetNext(n N) { l.next = n }

// ValueNode is a node that carries a value.
type ValueNode[T any] struct {
	Links[*ValueNode[T]]
	Value T
}

// NewValueNode returns a detached node holding v.
func NewValueNode[T any](v T) *ValueNode[T] {
	return &ValueNode[T]{Value: v}
}

func (n *ValueNode[T]) String() string {
	return fmt.Sprint(n.Value)
}

func isZero[N comparable](n N) bool {
	var zero N
	return n == zero
}

// detached reports whether n has neither a previous nor a next node.
func detached[N Linker[N]](n N) bool {
	return isZero(n.Prev()) && isZero(n.Next())
}
