package SList

import (
	"fmt"
	"strings"

	"github.com/s-d-olenev/go-adts/Lists"
)

type node[T any] struct {
	v  T
	nx *node[T]
}

// SLinkedList is a singly linked list keeping both a head and a tail
// pointer, so AddFirst, AddLast, Pop and Peek are O(1). Indexed
// receivers walk from the head and are O(n).
type SLinkedList[T comparable] struct {
	head, tail *node[T]
	sz         int
}

func New[T comparable]() *SLinkedList[T] {
	return &SLinkedList[T]{}
}

// CopyOf returns an independent deep copy of o, preserving order.
// Time: O(n)
func CopyOf[T comparable](o *SLinkedList[T]) *SLinkedList[T] {
	u := &SLinkedList[T]{}
	for cur := o.head; cur != nil; cur = cur.nx {
		u.AddLast(cur.v)
	}
	return u
}

// MoveOf returns a list holding exactly what o held and leaves o empty.
// Time: O(1)
func MoveOf[T comparable](o *SLinkedList[T]) *SLinkedList[T] {
	u := &SLinkedList[T]{}
	u.swap(o)
	return u
}

func (u *SLinkedList[T]) swap(o *SLinkedList[T]) {
	u.head, o.head = o.head, u.head
	u.tail, o.tail = o.tail, u.tail
	u.sz, o.sz = o.sz, u.sz
}

// Copy makes u an independent deep copy of o. Copy-then-swap, safe for
// self assignment.
func (u *SLinkedList[T]) Copy(o *SLinkedList[T]) {
	t := CopyOf(o)
	t.swap(u)
}

// Take transfers o's contents into u and leaves o empty. Taking from
// itself is a no-op.
func (u *SLinkedList[T]) Take(o *SLinkedList[T]) {
	if u == o {
		return
	}
	u.Clear()
	u.swap(o)
}

func (u *SLinkedList[T]) AddFirst(v T) {
	u.head = &node[T]{v, u.head}
	if u.tail == nil {
		u.tail = u.head
	}
	u.sz++
}

func (u *SLinkedList[T]) AddLast(v T) {
	n := &node[T]{v: v}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.nx = n
	}
	u.tail = n
	u.sz++
}

// at returns the node at position i. i must be in [0, sz).
func (u *SLinkedList[T]) at(i int) *node[T] {
	cur := u.head
	for ; i > 0; i-- {
		cur = cur.nx
	}
	return cur
}

func (u *SLinkedList[T]) InsertAt(v T, i int) error {
	if i < 0 || i > u.sz {
		return &Lists.IndexRangeError{Index: i, Size: u.sz}
	}
	if i == 0 {
		u.AddFirst(v)
	} else if i == u.sz {
		u.AddLast(v)
	} else {
		prev := u.at(i - 1)
		prev.nx = &node[T]{v, prev.nx}
		u.sz++
	}
	return nil
}

func (u *SLinkedList[T]) RemoveAt(i int) error {
	_, err := u.PopAt(i)
	return err
}

func (u *SLinkedList[T]) Pop() (T, error) {
	if u.head == nil {
		return *new(T), &Lists.EmptyListError{}
	}
	t := u.head.v
	u.head = u.head.nx
	if u.head == nil {
		u.tail = nil
	}
	u.sz--
	return t, nil
}

func (u *SLinkedList[T]) PopAt(i int) (T, error) {
	if i < 0 || i >= u.sz {
		return *new(T), &Lists.IndexRangeError{Index: i, Size: u.sz}
	}
	if i == 0 {
		return u.Pop()
	}
	prev := u.at(i - 1)
	t := prev.nx.v
	prev.nx = prev.nx.nx
	if prev.nx == nil {
		u.tail = prev
	}
	u.sz--
	return t, nil
}

func (u *SLinkedList[T]) Peek() (T, error) {
	if u.head == nil {
		return *new(T), &Lists.EmptyListError{}
	}
	return u.head.v, nil
}

func (u *SLinkedList[T]) PeekAt(i int) (T, error) {
	if i < 0 || i >= u.sz {
		return *new(T), &Lists.IndexRangeError{Index: i, Size: u.sz}
	}
	return u.at(i).v, nil
}

func (u *SLinkedList[T]) At(i int) (*T, error) {
	if i < 0 || i >= u.sz {
		return nil, &Lists.IndexRangeError{Index: i, Size: u.sz}
	}
	return &u.at(i).v, nil
}

// Eq reports whether u and o have the same length and hold equal
// elements in the same order.
func (u *SLinkedList[T]) Eq(o *SLinkedList[T]) bool {
	if u.sz != o.sz {
		return false
	}
	for a, b := u.head, o.head; a != nil; a, b = a.nx, b.nx {
		if a.v != b.v {
			return false
		}
	}
	return true
}

func (u *SLinkedList[T]) Size() int {
	return u.sz
}

func (u *SLinkedList[T]) Empty() bool {
	return u.sz == 0
}

func (u *SLinkedList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// String renders the list head to tail as "(a, b, c)"; "()" when empty.
func (u *SLinkedList[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for cur := u.head; cur != nil; cur = cur.nx {
		if cur != u.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", cur.v)
	}
	b.WriteByte(')')
	return b.String()
}
