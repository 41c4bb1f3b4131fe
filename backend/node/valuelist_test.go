package node

import (
	"errors"
	"fmt"
	"testing"

	"github.com/speedata/linkednodelist/backend/collection"
)

func values[T any](t *testing.T, l *ValueList[T]) string {
	t.Helper()
	str := ""
	it := l.Values()
	for it.Next() {
		str += fmt.Sprint(it.Value())
	}
	if err := it.Err(); err != nil {
		t.Fatal(err)
	}
	return str
}

func TestValueListInsertAndReplace(t *testing.T) {
	l := NewValueList[string]()
	l.AppendValue("b")
	l.PrependValue("a")
	if err := l.AddNodeAfter(NewValueNode("d"), l.Last()); err != nil {
		t.Fatal(err)
	}
	c := NewValueNode("c")
	if err := l.AddNodeBefore(c, l.Last()); err != nil {
		t.Fatal(err)
	}
	if got := values(t, l); got != "abcd" {
		t.Errorf("values = %q, want %q", got, "abcd")
	}
	if l.UnsafeCount() != 4 {
		t.Errorf("UnsafeCount() = %d, want 4", l.UnsafeCount())
	}
	if cnt, err := collection.Count[*ValueNode[string]](l); err != nil || cnt != 4 {
		t.Errorf("Count() = %d, %v, want 4, nil", cnt, err)
	}

	if err := l.AddNode(&ValueNode[string]{Links: Links[*ValueNode[string]]{prev: c}, Value: "x"}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("AddNode(linked) err = %v, want %v", err, ErrInvalidState)
	}
	if err := l.AddNode(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AddNode(nil) err = %v, want %v", err, ErrInvalidArgument)
	}

	if err := l.Replace(c, NewValueNode("X")); err != nil {
		t.Fatal(err)
	}
	if got := values(t, l); got != "abXd" {
		t.Errorf("values = %q, want %q", got, "abXd")
	}

	if n := l.Clear(); n != 4 {
		t.Errorf("Clear() = %d, want 4", n)
	}
	if l.UnsafeCount() != 0 {
		t.Errorf("UnsafeCount() = %d, want 0", l.UnsafeCount())
	}
}

func TestValueListRoundTrip(t *testing.T) {
	l := NewValueList[rune]()
	for _, r := range "abc" {
		l.AppendValue(r)
	}
	fwd, err := collection.ToSlice[rune](valueIterable[rune]{l})
	if err != nil {
		t.Fatal(err)
	}
	if string(fwd) != "abc" {
		t.Errorf("values = %q, want %q", string(fwd), "abc")
	}
	rev, err := collection.ToSlice[*ValueNode[rune]](l.Reversed())
	if err != nil {
		t.Fatal(err)
	}
	str := ""
	for _, n := range rev {
		str += string(n.Value)
	}
	if str != "cba" {
		t.Errorf("reversed values = %q, want %q", str, "cba")
	}
}

type valueIterable[T any] struct{ l *ValueList[T] }

func (v valueIterable[T]) Iterate() collection.Iterator[T] { return v.l.Values() }

func TestValuesModified(t *testing.T) {
	l := NewValueList[int]()
	l.AppendValue(1)
	l.AppendValue(2)
	it := l.Values()
	for it.Next() {
		l.AppendValue(it.Value())
	}
	if !errors.Is(it.Err(), ErrConcurrentModification) {
		t.Errorf("Err() = %v, want %v", it.Err(), ErrConcurrentModification)
	}
}

func TestNodeAtValues(t *testing.T) {
	l := NewValueList[int]()
	l.AppendValue(1)
	l.AppendValue(2)
	l.PrependValue(0)
	for i := 0; i < l.UnsafeCount(); i++ {
		if n := l.NodeAt(i); n == nil || n.Value != i {
			t.Errorf("NodeAt(%d) = %v, want %d", i, n, i)
		}
	}
	n, err := l.Find(func(n *ValueNode[int], _ int) bool { return n.Value == 1 })
	if err != nil || n == nil || n.Value != 1 {
		t.Errorf("Find(1) = %v, %v, want 1, nil", n, err)
	}
}

func TestCopyValuesTo(t *testing.T) {
	data := []struct {
		values []int
		dst    []int
		index  int
		want   []int
	}{
		{[]int{1, 2}, []int{-1}, 1, []int{-1, 1, 2}},
		{[]int{0, 1, 2}, []int{-1}, 1, []int{-1, 0, 1, 2}},
		{[]int{0, 1, 2}, []int{-1}, 0, []int{0, 1, 2}},
		{[]int{7}, []int{1, 2, 3}, 1, []int{1, 7, 3}},
		{[]int{7}, nil, 2, []int{0, 0, 7}},
		{nil, []int{5}, 3, []int{5}},
	}
	for _, d := range data {
		l := NewValueList[int]()
		for _, v := range d.values {
			l.AppendValue(v)
		}
		dst := d.dst
		if err := l.CopyValuesTo(&dst, d.index); err != nil {
			t.Fatal(err)
		}
		if fmt.Sprint(dst) != fmt.Sprint(d.want) {
			t.Errorf("CopyValuesTo(%v, %d) = %v, want %v", d.dst, d.index, dst, d.want)
		}
	}

	l := NewValueList[int]()
	l.AppendValue(1)
	if err := l.CopyValuesTo(nil, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CopyValuesTo(nil) err = %v, want %v", err, ErrInvalidArgument)
	}
	dst := []int{}
	if err := l.CopyValuesTo(&dst, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CopyValuesTo(-1) err = %v, want %v", err, ErrInvalidArgument)
	}
}

func TestValuesAfterEnd(t *testing.T) {
	l := NewValueList[string]()
	l.AppendValue("a")
	it := l.Values()
	for it.Next() {
	}
	if got := it.Value(); got != "" {
		t.Errorf("Value() after the end = %q, want empty", got)
	}
	if err := it.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}
