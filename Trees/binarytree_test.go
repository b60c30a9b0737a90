package Trees

import (
	"math/rand"
	"testing"
)

var _R = rand.New(rand.NewSource(0))

var _ Tree[int] = New[int]()

// levelOrder collects every value in breadth first order, left before right.
func (u *BinaryTree[T]) levelOrder() []T {
	var out []T
	if u.root == nil {
		return out
	}
	for q := []*node[T]{u.root}; len(q) > 0; {
		cur := q[0]
		q = q[1:]
		out = append(out, cur.v)
		if cur.l != nil {
			q = append(q, cur.l)
		}
		if cur.r != nil {
			q = append(q, cur.r)
		}
	}
	return out
}

// complete reports whether the shape matches a complete binary tree:
// in a breadth first scan no node may follow the first missing child.
func (u *BinaryTree[T]) complete() bool {
	if u.root == nil {
		return true
	}
	seenNil := false
	for q := []*node[T]{u.root}; len(q) > 0; {
		cur := q[0]
		q = q[1:]
		if cur == nil {
			seenNil = true
			continue
		}
		if seenNil {
			return false
		}
		q = append(q, cur.l, cur.r)
	}
	return true
}

func eqSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fill(vals ...int) *BinaryTree[int] {
	tree := New[int]()
	for _, v := range vals {
		tree.Insert(v)
	}
	return tree
}

func TestInsertShape(t *testing.T) {
	tree := fill(1, 2, 3, 4, 5)
	if got := tree.levelOrder(); !eqSlices(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("level order is %v, want [1 2 3 4 5]", got)
	}
	if tree.Size() != 5 {
		t.Errorf("size is %d, want 5", tree.Size())
	}
	if d := tree.Depth(5); d != 2 {
		t.Errorf("depth of 5 is %d, want 2", d)
	}
	if h := tree.Height(1); h != 2 {
		t.Errorf("height of 1 is %d, want 2", h)
	}
	if !tree.BFSearch(4) {
		t.Error("bfsearch can't find 4")
	}
	if tree.DFSearch(6) {
		t.Error("dfsearch found non existent 6")
	}
}

func TestInsertDuplicate(t *testing.T) {
	tree := fill(1, 2, 3, 4, 5)
	before := tree.levelOrder()
	for _, v := range []int{1, 3, 5} {
		if tree.Insert(v) {
			t.Errorf("inserted duplicate %d", v)
		}
	}
	if tree.Size() != 5 {
		t.Errorf("size changed to %d after duplicate inserts", tree.Size())
	}
	if !eqSlices(tree.levelOrder(), before) {
		t.Error("structure changed after duplicate inserts")
	}
}

func TestInsertCompleteness(t *testing.T) {
	tree := New[int]()
	for i, v := range _R.Perm(500) {
		if !tree.Insert(v) {
			t.Errorf("failed to insert %d", v)
		}
		if tree.Size() != i+1 {
			t.Errorf("size is %d, want %d", tree.Size(), i+1)
		}
		if !tree.complete() {
			t.Fatalf("tree not complete after %d inserts", i+1)
		}
	}
	if tree.Empty() {
		t.Error("filled tree reports empty")
	}
}

func TestSearchAgreement(t *testing.T) {
	vals := _R.Perm(200)
	tree := fill(vals...)
	for _, v := range vals {
		if !tree.BFSearch(v) {
			t.Errorf("bfsearch can't find %d", v)
		}
		if !tree.DFSearch(v) {
			t.Errorf("dfsearch can't find %d", v)
		}
	}
	for _, v := range []int{-1, 200, 4096} {
		if tree.BFSearch(v) {
			t.Errorf("bfsearch found non existent %d", v)
		}
		if tree.DFSearch(v) {
			t.Errorf("dfsearch found non existent %d", v)
		}
	}
	empty := New[int]()
	if empty.BFSearch(0) || empty.DFSearch(0) {
		t.Error("search found something in an empty tree")
	}
}

func TestRemove(t *testing.T) {
	tree := fill(1, 2, 3, 4, 5)
	if !tree.Remove(2) {
		t.Error("failed to remove 2")
	}
	// the last level-order node with a child is 2 itself; its right
	// child 5 takes over 2's slot.
	if got := tree.levelOrder(); !eqSlices(got, []int{1, 5, 3, 4}) {
		t.Errorf("level order is %v, want [1 5 3 4]", got)
	}
	if tree.Size() != 4 {
		t.Errorf("size is %d, want 4", tree.Size())
	}
	if tree.BFSearch(2) {
		t.Error("removed 2 still found")
	}
	if tree.Remove(42) {
		t.Error("removed non existent 42")
	}
	if tree.Size() != 4 {
		t.Errorf("size changed to %d by failed remove", tree.Size())
	}
}

func TestRemoveSingleNode(t *testing.T) {
	tree := fill(1)
	if !tree.Remove(1) {
		t.Error("failed to remove sole node")
	}
	if !tree.Empty() || tree.Size() != 0 {
		t.Errorf("tree not empty after removing sole node, size %d", tree.Size())
	}
	if tree.Remove(1) {
		t.Error("removed from an empty tree")
	}
}

func TestRemovePreservesCompleteness(t *testing.T) {
	vals := _R.Perm(300)
	tree := fill(vals...)
	for i, v := range vals {
		if !tree.Remove(v) {
			t.Errorf("failed to remove %d", v)
		}
		if tree.BFSearch(v) {
			t.Errorf("removed %d still found", v)
		}
		if tree.Size() != len(vals)-i-1 {
			t.Errorf("size is %d, want %d", tree.Size(), len(vals)-i-1)
		}
		if !tree.complete() {
			t.Fatalf("tree not complete after removing %d", v)
		}
	}
	if !tree.Empty() {
		t.Error("tree not empty after removing everything")
	}
}

func TestClear(t *testing.T) {
	tree := fill(_R.Perm(50)...)
	tree.Clear()
	if !tree.Empty() || tree.Size() != 0 || tree.levelOrder() != nil {
		t.Error("clear left something behind")
	}
}

func TestDepthHeight(t *testing.T) {
	tree := fill(1, 2, 3, 4, 5)
	for v, want := range map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2} {
		if d := tree.Depth(v); d != want {
			t.Errorf("depth of %d is %d, want %d", v, d, want)
		}
	}
	for v, want := range map[int]int{1: 2, 2: 1, 3: 0, 4: 0, 5: 0} {
		if h := tree.Height(v); h != want {
			t.Errorf("height of %d is %d, want %d", v, h, want)
		}
	}
	// absent element and empty tree both report -1; the two cases are
	// deliberately fused and shouldn't be told apart here.
	if tree.Depth(42) != -1 || tree.Height(42) != -1 {
		t.Error("absent element should report -1")
	}
	empty := New[int]()
	if empty.Depth(1) != -1 || empty.Height(1) != -1 {
		t.Error("empty tree should report -1")
	}
}

func TestInvert(t *testing.T) {
	tree := fill(1, 2, 3, 4, 5)
	tree.Invert()
	if got := tree.levelOrder(); !eqSlices(got, []int{1, 3, 2, 5, 4}) {
		t.Errorf("level order after invert is %v, want [1 3 2 5 4]", got)
	}
	tree.Invert()
	if got := tree.levelOrder(); !eqSlices(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("double invert gives %v, want the original [1 2 3 4 5]", got)
	}
	empty := New[int]()
	empty.Invert()
	if !empty.Empty() {
		t.Error("inverting an empty tree did something")
	}
}

func TestCopy(t *testing.T) {
	orig := fill(_R.Perm(100)...)
	want := orig.levelOrder()
	cp := CopyOf(orig)
	if cp.Size() != orig.Size() || !eqSlices(cp.levelOrder(), want) {
		t.Error("copy differs from the source")
	}
	orig.Clear()
	if !eqSlices(cp.levelOrder(), want) {
		t.Error("clearing the source damaged the copy")
	}
	cp.Insert(4096)
	if orig.BFSearch(4096) {
		t.Error("mutating the copy leaked into the source")
	}
}

func TestCopyAssign(t *testing.T) {
	dst := fill(7, 8, 9)
	src := fill(1, 2, 3, 4, 5)
	dst.Copy(src)
	if !eqSlices(dst.levelOrder(), src.levelOrder()) {
		t.Error("copy assignment differs from the source")
	}
	src.Remove(3)
	if !dst.BFSearch(3) {
		t.Error("copy assignment isn't independent of the source")
	}
	want := dst.levelOrder()
	dst.Copy(dst) // self assignment
	if !eqSlices(dst.levelOrder(), want) {
		t.Error("self copy assignment changed the tree")
	}
}

func TestMove(t *testing.T) {
	src := fill(_R.Perm(100)...)
	want := src.levelOrder()
	mv := MoveOf(src)
	if !src.Empty() {
		t.Error("move left the source non empty")
	}
	if mv.Size() != len(want) || !eqSlices(mv.levelOrder(), want) {
		t.Error("move didn't carry the contents over")
	}
}

func TestTake(t *testing.T) {
	src := fill(1, 2, 3, 4, 5)
	want := src.levelOrder()
	dst := fill(7, 8, 9)
	dst.Take(src)
	if !src.Empty() {
		t.Error("take left the source non empty")
	}
	if !eqSlices(dst.levelOrder(), want) {
		t.Error("take didn't carry the contents over")
	}
	dst.Take(dst) // self move is a no-op
	if !eqSlices(dst.levelOrder(), want) {
		t.Error("self take changed the tree")
	}
}

func TestRender(t *testing.T) {
	tree := fill(1, 2, 3, 4, 5)
	if got := tree.Inorder(); got != "[root: 1]\t(4, 2, 5, 1, 3)" {
		t.Errorf("inorder rendering is %q", got)
	}
	if got := tree.Preorder(); got != "[root: 1]\t(1, 2, 4, 5, 3)" {
		t.Errorf("preorder rendering is %q", got)
	}
	if got := tree.Postorder(); got != "[root: 1]\t(4, 5, 2, 3, 1)" {
		t.Errorf("postorder rendering is %q", got)
	}
	if got := tree.String(); got != tree.Inorder() {
		t.Errorf("String is %q, want the inorder rendering", got)
	}
	empty := New[string]()
	if got := empty.Inorder(); got != "()" {
		t.Errorf("empty inorder rendering is %q, want ()", got)
	}
	if got := empty.Postorder(); got != "()" {
		t.Errorf("empty postorder rendering is %q, want ()", got)
	}
}

func TestStringElements(t *testing.T) {
	tree := New[string]()
	for _, s := range []string{"oak", "elm", "fir"} {
		tree.Insert(s)
	}
	if !tree.BFSearch("elm") || tree.DFSearch("yew") {
		t.Error("wrong membership for string elements")
	}
	if got := tree.Preorder(); got != "[root: oak]\t(oak, elm, fir)" {
		t.Errorf("preorder rendering is %q", got)
	}
}
