package Trees

// A node in the BinaryTree.
// A node is exclusively owned by its parent, or by the tree itself for
// the root; no node is ever shared between trees or exposed to callers.
type node[T any] struct {
	v    T
	l, r *node[T]
}
