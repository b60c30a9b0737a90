package Stacks

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	v  T
	nx *node[T]
}

// LinkedStack is a singly linked LIFO stack. Push, Pop and Peek are
// O(1). The stack exclusively owns its nodes; copies share nothing
// with their source.
type LinkedStack[T comparable] struct {
	top *node[T]
	sz  int
}

func New[T comparable]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// CopyOf returns an independent deep copy of o, preserving order.
// Time: O(n)
func CopyOf[T comparable](o *LinkedStack[T]) *LinkedStack[T] {
	u := &LinkedStack[T]{}
	tail := &u.top
	for cur := o.top; cur != nil; cur = cur.nx {
		*tail = &node[T]{v: cur.v}
		tail = &(*tail).nx
		u.sz++
	}
	return u
}

// MoveOf returns a stack holding exactly what o held and leaves o empty.
// Time: O(1)
func MoveOf[T comparable](o *LinkedStack[T]) *LinkedStack[T] {
	u := &LinkedStack[T]{}
	u.swap(o)
	return u
}

func (this *LinkedStack[T]) swap(o *LinkedStack[T]) {
	this.top, o.top = o.top, this.top
	this.sz, o.sz = o.sz, this.sz
}

// Copy makes this an independent deep copy of o. Copy-then-swap, safe
// for self assignment.
func (this *LinkedStack[T]) Copy(o *LinkedStack[T]) {
	t := CopyOf(o)
	t.swap(this)
}

// Take transfers o's contents into this and leaves o empty. Taking
// from itself is a no-op.
func (this *LinkedStack[T]) Take(o *LinkedStack[T]) {
	if this == o {
		return
	}
	this.Clear()
	this.swap(o)
}

func (this *LinkedStack[T]) Push(item T) {
	this.top = &node[T]{item, this.top}
	this.sz++
}

func (this *LinkedStack[T]) Pop() (T, error) {
	if this.top == nil {
		return *new(T), &EmptyStackError{}
	}
	t := this.top.v
	this.top = this.top.nx
	this.sz--
	return t, nil
}

func (this *LinkedStack[T]) Peek() (T, error) {
	if this.top == nil {
		return *new(T), &EmptyStackError{}
	}
	return this.top.v, nil
}

func (this *LinkedStack[T]) Size() int {
	return this.sz
}

func (this *LinkedStack[T]) Empty() bool {
	return this.sz == 0
}

func (this *LinkedStack[T]) Clear() {
	this.top = nil
	this.sz = 0
}

// String renders the stack top to bottom as "(a, b, c)"; "()" when empty.
func (this *LinkedStack[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for cur := this.top; cur != nil; cur = cur.nx {
		if cur != this.top {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", cur.v)
	}
	b.WriteByte(')')
	return b.String()
}
