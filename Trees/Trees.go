package Trees

// Tree represents a tree like structure implemented using nodes.
// The element type is only required to support equality comparison;
// no ordering is imposed on where values live in the tree, so unlike
// a search tree the position of a value carries no meaning about the
// value itself. Methods that look a value up (BFSearch, DFSearch,
// Depth, Height) treat absence as a normal outcome, never an error.
// If an implementation didn't specify anything special, then the
// implemented receivers follow the behaviors defined here. Methods
// implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T comparable] interface {
	//Insert v into the Tree. Returning true if successful, false otherwise.
	//Exact placement depends on implementation.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false otherwise.
	//Exact behavior depends on implementation.
	Remove(v T) bool
	//BFSearch reports whether v is in the tree, scanning level by level.
	BFSearch(v T) bool
	//DFSearch reports whether v is in the tree, scanning depth first.
	//Both searches agree on membership; they differ only in visit order.
	DFSearch(v T) bool
	//Depth is the number of edges from the root to the node holding v.
	//0 for the root, -1 when v isn't in the tree or the tree is empty.
	Depth(v T) int
	//Height is the number of edges from the node holding v down to the
	//deepest node of its subtree. -1 when v isn't in the tree or the
	//tree is empty. Note that "empty tree" and "not found" both yield
	//-1 and are deliberately not distinguished.
	Height(v T) int
	//Size of the tree.
	Size() int
	//Empty is equivalent to Size()==0.
	Empty() bool
	//Clear removes every node.
	Clear()
}
