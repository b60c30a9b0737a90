package Trees

import (
	"fmt"
	"strings"
)

// BinaryTree is a binary tree with no repeated values that keeps its
// shape structurally complete: every level is filled before the next
// one is started, matching the layout of an array backed complete
// binary tree. New values always land in the first empty slot found in
// level order (left child before right child), and removal refills the
// vacated position from the level-order-last node so that no gap is
// ever introduced. There is no ordering relation between a node's
// value and its children's values; T only needs equality.
// This struct holds the root of the owned node graph and the node
// count. sz always equals the number of nodes reachable from root, and
// sz==0 exactly when root is nil.
type BinaryTree[T comparable] struct {
	root *node[T]
	sz   int
}

// New returns an empty BinaryTree.
func New[T comparable]() *BinaryTree[T] {
	return &BinaryTree[T]{}
}

// graft rebuilds o's node graph under u in level order, allocating a
// fresh node per source node so that the two trees share nothing. The
// destination side walks slots (addresses of child links) while the
// source side walks nodes, the two queues advancing in lockstep.
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) graft(o *BinaryTree[T]) {
	if o.root == nil {
		return
	}
	slots := []**node[T]{&u.root}
	srcs := []*node[T]{o.root}
	for len(srcs) > 0 {
		slot, src := slots[0], srcs[0]
		slots, srcs = slots[1:], srcs[1:]
		*slot = &node[T]{v: src.v}
		if src.l != nil {
			slots = append(slots, &(*slot).l)
			srcs = append(srcs, src.l)
		}
		if src.r != nil {
			slots = append(slots, &(*slot).r)
			srcs = append(srcs, src.r)
		}
		u.sz++
	}
}

// CopyOf returns a deep copy of o. The copy preserves o's exact shape
// and is fully independent: mutating either tree never affects the other.
// Time: O(n); Space: O(n)
func CopyOf[T comparable](o *BinaryTree[T]) *BinaryTree[T] {
	u := &BinaryTree[T]{}
	u.graft(o)
	return u
}

// MoveOf returns a tree holding exactly what o held and leaves o empty.
// Time: O(n); Space: O(n)
func MoveOf[T comparable](o *BinaryTree[T]) *BinaryTree[T] {
	u := &BinaryTree[T]{}
	u.graft(o)
	o.Clear()
	return u
}

// swap exchanges the root and size of u and o.
func (u *BinaryTree[T]) swap(o *BinaryTree[T]) {
	u.root, o.root = o.root, u.root
	u.sz, o.sz = o.sz, u.sz
}

// Copy makes u an independent deep copy of o, discarding u's previous
// contents. Implemented as copy-then-swap, so it is safe when o==u and
// u is untouched if the copy fails to complete.
func (u *BinaryTree[T]) Copy(o *BinaryTree[T]) {
	t := CopyOf(o)
	t.swap(u)
}

// Take transfers o's contents into u, discarding u's previous contents
// and leaving o empty. Taking from itself is a no-op.
func (u *BinaryTree[T]) Take(o *BinaryTree[T]) {
	if u == o {
		return
	}
	u.Clear()
	u.swap(o)
}

// Insert [Tree.Insert]. The first empty child slot found by a breadth
// first scan from the root receives v, scanning each visited node's
// left child before its right child; on an empty tree v becomes the
// root. If any node examined along the scan already holds v the call
// is a no-op returning false. The scan visits every node at or above
// the level of the first empty slot, so with level-order insertion the
// duplicate check is complete in practice.
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = &node[T]{v: v}
	} else if u.root.v == v {
		return false
	} else {
		q := []*node[T]{u.root}
	scan:
		for len(q) > 0 {
			cur := q[0]
			q = q[1:]
			if cur.l != nil {
				if cur.l.v == v {
					return false
				}
				q = append(q, cur.l)
			} else {
				cur.l = &node[T]{v: v}
				break scan
			}
			if cur.r != nil {
				if cur.r.v == v {
					return false
				}
				q = append(q, cur.r)
			} else {
				cur.r = &node[T]{v: v}
				break scan
			}
		}
	}
	u.sz++
	return true
}

// BFSearch [Tree.BFSearch]
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) BFSearch(v T) bool {
	if u.root == nil {
		return false
	}
	for q := []*node[T]{u.root}; len(q) > 0; {
		cur := q[0]
		q = q[1:]
		if cur.v == v {
			return true
		}
		if cur.l != nil {
			q = append(q, cur.l)
		}
		if cur.r != nil {
			q = append(q, cur.r)
		}
	}
	return false
}

// DFSearch [Tree.DFSearch]. Iterative inorder traversal with an
// explicit stack; returns on the first match in inorder sequence.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T]) DFSearch(v T) bool {
	if u.root == nil {
		return false
	}
	st := []*node[T]{u.root}
	cur := u.root.l
	for len(st) > 0 || cur != nil {
		if cur != nil {
			st = append(st, cur)
			cur = cur.l
			continue
		}
		cur = st[len(st)-1]
		st = st[:len(st)-1]
		if cur.v == v {
			return true
		}
		cur = cur.r
	}
	return false
}

// Remove [Tree.Remove]. A single breadth first pass locates both the
// node holding v and the deepest parent: the node visited last in
// level order that still has at least one child. The deepest parent's
// right child if present, else its left child, is the level-order-last
// node of the tree; its value overwrites the target's slot and the
// node itself is excised, so the tree stays structurally complete.
// This is deliberately not search-tree removal. Removing the only node
// clears the tree.
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) Remove(v T) bool {
	if u.root == nil {
		return false
	}
	var target, deepestParent *node[T]
	for q := []*node[T]{u.root}; len(q) > 0; {
		cur := q[0]
		q = q[1:]
		if cur.v == v {
			target = cur
		}
		if cur.l != nil || cur.r != nil {
			deepestParent = cur
		}
		if cur.l != nil {
			q = append(q, cur.l)
		}
		if cur.r != nil {
			q = append(q, cur.r)
		}
	}
	if target == nil {
		return false
	}
	if deepestParent == nil { // root is the only node
		u.Clear()
		return true
	}
	if deepestParent.r != nil {
		target.v = deepestParent.r.v
		deepestParent.r = nil
	} else {
		target.v = deepestParent.l.v
		deepestParent.l = nil
	}
	u.sz--
	return true
}

// Clear [Tree.Clear]. Drops the whole node graph.
// Time: O(1); Space: O(1)
func (u *BinaryTree[T]) Clear() {
	u.root = nil
	u.sz = 0
}

// Size [Tree.Size]
func (u *BinaryTree[T]) Size() int {
	return u.sz
}

// Empty [Tree.Empty]
func (u *BinaryTree[T]) Empty() bool {
	return u.sz == 0
}

// depth of v in the subtree rooted at cur recursively, d being the
// depth of cur itself. -1 when v isn't in the subtree. When both
// subtrees report a depth the larger one wins.
func (u *BinaryTree[T]) depth(cur *node[T], v T, d int) int {
	if cur == nil {
		return -1
	} else if cur.v == v {
		return d
	}
	if ld, rd := u.depth(cur.l, v, d+1), u.depth(cur.r, v, d+1); ld < rd {
		return rd
	} else {
		return ld
	}
}

// Depth [Tree.Depth]. Recursive.
// Insert's duplicate rejection normally guarantees at most one
// occurrence of v; if the tree somehow holds several, the deepest one
// wins, the right subtree's result winning ties against the left.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T]) Depth(v T) int {
	if u.root == nil {
		return -1
	}
	if u.root.v == v {
		return 0
	}
	if ld, rd := u.depth(u.root.l, v, 1), u.depth(u.root.r, v, 1); ld < rd {
		return rd
	} else {
		return ld
	}
}

// height of v measured within the subtree rooted at cur recursively.
// Before v is found h counts nothing; once found, every further step
// down grows h, and the maximum over both subtrees is returned. A nil
// reached without having passed v reports -1.
func (u *BinaryTree[T]) height(cur *node[T], v T, h int, found bool) int {
	if cur == nil {
		if found {
			return h
		}
		return -1
	}
	if found {
		h++
	} else if cur.v == v {
		found = true
	}
	if lh, rh := u.height(cur.l, v, h, found), u.height(cur.r, v, h, found); lh < rh {
		return rh
	} else {
		return lh
	}
}

// Height [Tree.Height]. Recursive.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T]) Height(v T) int {
	if u.root == nil {
		return -1
	}
	return u.height(u.root, v, 0, false)
}

// invert the subtree rooted at cur recursively.
func (u *BinaryTree[T]) invert(cur *node[T]) {
	if cur == nil {
		return
	}
	cur.l, cur.r = cur.r, cur.l
	u.invert(cur.l)
	u.invert(cur.r)
}

// Invert swaps every node's left and right children, for the whole
// tree, in place. Recursive. No-op on an empty tree. Inverting twice
// restores the original shape.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T]) Invert() {
	u.invert(u.root)
}

// print the subtree rooted at cur through emit in the given order:
// 'i' inorder, 'r' preorder, 'o' postorder.
func (u *BinaryTree[T]) print(cur *node[T], order byte, emit func(T)) {
	if cur == nil {
		return
	}
	switch order {
	case 'i':
		u.print(cur.l, order, emit)
		emit(cur.v)
		u.print(cur.r, order, emit)
	case 'r':
		emit(cur.v)
		u.print(cur.l, order, emit)
		u.print(cur.r, order, emit)
	case 'o':
		u.print(cur.l, order, emit)
		u.print(cur.r, order, emit)
		emit(cur.v)
	}
}

// render the tree as "[root: <v>]\t(<seq>)" with seq comma separated
// in the given order, or "()" for an empty tree.
func (u *BinaryTree[T]) render(order byte) string {
	if u.root == nil {
		return "()"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[root: %v]\t(", u.root.v)
	first := true
	u.print(u.root, order, func(v T) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	})
	b.WriteByte(')')
	return b.String()
}

// Inorder rendering of the tree: left subtree, node, right subtree.
func (u *BinaryTree[T]) Inorder() string {
	return u.render('i')
}

// Preorder rendering of the tree: node, left subtree, right subtree.
func (u *BinaryTree[T]) Preorder() string {
	return u.render('r')
}

// Postorder rendering of the tree: left subtree, right subtree, node.
func (u *BinaryTree[T]) Postorder() string {
	return u.render('o')
}

// PrintInorder writes the inorder rendering to stdout.
func (u *BinaryTree[T]) PrintInorder() {
	fmt.Println(u.render('i'))
}

// PrintPreorder writes the preorder rendering to stdout.
func (u *BinaryTree[T]) PrintPreorder() {
	fmt.Println(u.render('r'))
}

// PrintPostorder writes the postorder rendering to stdout.
func (u *BinaryTree[T]) PrintPostorder() {
	fmt.Println(u.render('o'))
}

// String is the inorder rendering.
func (u *BinaryTree[T]) String() string {
	return u.render('i')
}
