package DList

import (
	"fmt"
	"strings"

	"github.com/s-d-olenev/go-adts/Lists"
)

type node[T any] struct {
	v      T
	pv, nx *node[T]
}

// DLinkedList is a doubly linked list keeping both a head and a tail
// pointer. AddFirst, AddLast, Pop and Peek are O(1); indexed receivers
// walk from whichever end is nearer, so they are O(n) with at most
// n/2 steps.
type DLinkedList[T comparable] struct {
	head, tail *node[T]
	sz         int
}

func New[T comparable]() *DLinkedList[T] {
	return &DLinkedList[T]{}
}

// CopyOf returns an independent deep copy of o, preserving order.
// Time: O(n)
func CopyOf[T comparable](o *DLinkedList[T]) *DLinkedList[T] {
	u := &DLinkedList[T]{}
	for cur := o.head; cur != nil; cur = cur.nx {
		u.AddLast(cur.v)
	}
	return u
}

// MoveOf returns a list holding exactly what o held and leaves o empty.
// Time: O(1)
func MoveOf[T comparable](o *DLinkedList[T]) *DLinkedList[T] {
	u := &DLinkedList[T]{}
	u.swap(o)
	return u
}

func (u *DLinkedList[T]) swap(o *DLinkedList[T]) {
	u.head, o.head = o.head, u.head
	u.tail, o.tail = o.tail, u.tail
	u.sz, o.sz = o.sz, u.sz
}

// Copy makes u an independent deep copy of o. Copy-then-swap, safe for
// self assignment.
func (u *DLinkedList[T]) Copy(o *DLinkedList[T]) {
	t := CopyOf(o)
	t.swap(u)
}

// Take transfers o's contents into u and leaves o empty. Taking from
// itself is a no-op.
func (u *DLinkedList[T]) Take(o *DLinkedList[T]) {
	if u == o {
		return
	}
	u.Clear()
	u.swap(o)
}

func (u *DLinkedList[T]) AddFirst(v T) {
	n := &node[T]{v: v, nx: u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.pv = n
	}
	u.head = n
	u.sz++
}

func (u *DLinkedList[T]) AddLast(v T) {
	n := &node[T]{v: v, pv: u.tail}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.nx = n
	}
	u.tail = n
	u.sz++
}

// at returns the node at position i, walking from the nearer end.
// i must be in [0, sz).
func (u *DLinkedList[T]) at(i int) *node[T] {
	if i < u.sz/2 {
		cur := u.head
		for ; i > 0; i-- {
			cur = cur.nx
		}
		return cur
	}
	cur := u.tail
	for i = u.sz - 1 - i; i > 0; i-- {
		cur = cur.pv
	}
	return cur
}

// unlink removes n from the chain.
func (u *DLinkedList[T]) unlink(n *node[T]) {
	if n.pv == nil {
		u.head = n.nx
	} else {
		n.pv.nx = n.nx
	}
	if n.nx == nil {
		u.tail = n.pv
	} else {
		n.nx.pv = n.pv
	}
	u.sz--
}

func (u *DLinkedList[T]) InsertAt(v T, i int) error {
	if i < 0 || i > u.sz {
		return &Lists.IndexRangeError{Index: i, Size: u.sz}
	}
	if i == 0 {
		u.AddFirst(v)
	} else if i == u.sz {
		u.AddLast(v)
	} else {
		nx := u.at(i)
		n := &node[T]{v: v, pv: nx.pv, nx: nx}
		nx.pv.nx = n
		nx.pv = n
		u.sz++
	}
	return nil
}

func (u *DLinkedList[T]) RemoveAt(i int) error {
	_, err := u.PopAt(i)
	return err
}

func (u *DLinkedList[T]) Pop() (T, error) {
	if u.head == nil {
		return *new(T), &Lists.EmptyListError{}
	}
	t := u.head.v
	u.unlink(u.head)
	return t, nil
}

func (u *DLinkedList[T]) PopAt(i int) (T, error) {
	if i < 0 || i >= u.sz {
		return *new(T), &Lists.IndexRangeError{Index: i, Size: u.sz}
	}
	n := u.at(i)
	u.unlink(n)
	return n.v, nil
}

func (u *DLinkedList[T]) Peek() (T, error) {
	if u.head == nil {
		return *new(T), &Lists.EmptyListError{}
	}
	return u.head.v, nil
}

func (u *DLinkedList[T]) PeekAt(i int) (T, error) {
	if i < 0 || i >= u.sz {
		return *new(T), &Lists.IndexRangeError{Index: i, Size: u.sz}
	}
	return u.at(i).v, nil
}

func (u *DLinkedList[T]) At(i int) (*T, error) {
	if i < 0 || i >= u.sz {
		return nil, &Lists.IndexRangeError{Index: i, Size: u.sz}
	}
	return &u.at(i).v, nil
}

// Eq reports whether u and o have the same length and hold equal
// elements in the same order.
func (u *DLinkedList[T]) Eq(o *DLinkedList[T]) bool {
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

func (u *DLinkedList[T]) Size() int {
	return u.sz
}

func (u *DLinkedList[T]) Empty() bool {
	return u.sz == 0
}

func (u *DLinkedList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// String renders the list head to tail as "(a, b, c)"; "()" when empty.
func (u *DLinkedList[T]) String() string {
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
