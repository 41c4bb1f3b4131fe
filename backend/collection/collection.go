// Package collection contains the helpers every iterable collection gets
// for free once it can produce an Iterator.
package collection

// Iterator is a lazy, single pass sequence. Next advances to the next item
// and reports whether there is one. Once Next returns false, Err tells if
// the sequence ended because of an error.
type Iterator[T any] interface {
	Next() bool
	Value() T
	Err() error
}

// Iterable is anything that can start a new traversal over its items.
type Iterable[T any] interface {
	Iterate() Iterator[T]
}

// ToSlice drains a fresh traversal of src into a new slice.
func ToSlice[T any](src Iterable[T]) ([]T, error) {
	ret := []T{}
	it := src.Iterate()
	for it.Next() {
		ret = append(ret, it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Count returns the number of items by walking a fresh traversal of src.
// The complexity is O(n).
func Count[T any](src Iterable[T]) (int, error) {
	c := 0
	it := src.Iterate()
	for it.Next() {
		c++
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return c, nil
}

type mapped[T, U any] struct {
	it Iterator[T]
	f  func(T) U
	ok bool
}

func (m *mapped[T, U]) Next() bool {
	m.ok = m.it.Next()
	return m.ok
}

// Value returns the zero value unless the last call to Next returned true.
func (m *mapped[T, U]) Value() U {
	if !m.ok {
		var zero U
		return zero
	}
	return m.f(m.it.Value())
}

func (m *mapped[T, U]) Err() error { return m.it.Err() }

// Map returns an iterator that yields f(v) for every v of it. The returned
// iterator advances it, so errors of it are reported by Err.
func Map[T, U any](it Iterator[T], f func(T) U) Iterator[U] {
	return &mapped[T, U]{it: it, f: f}
}
