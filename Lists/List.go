package Lists

import "fmt"

// List is a sequential container with O(1) insertion at both ends and
// O(n) access by position. Receivers taking an index fail with
// *IndexRangeError when the index falls outside the valid range;
// receivers that need at least one element fail with *EmptyListError
// on an empty list. Absence of a value is never an error, only a bad
// position is.
type List[T comparable] interface {
	AddFirst(v T)
	AddLast(v T)
	//InsertAt places v before position i. i may equal Size(), which
	//appends.
	InsertAt(v T, i int) error
	//RemoveAt discards the element at position i.
	RemoveAt(i int) error
	//Pop removes and returns the first element.
	Pop() (T, error)
	//PopAt removes and returns the element at position i.
	PopAt(i int) (T, error)
	//Peek returns the first element without removing it.
	Peek() (T, error)
	//PeekAt returns the element at position i without removing it.
	PeekAt(i int) (T, error)
	//At returns a pointer to the element at position i, through which
	//it can be read or overwritten in place.
	At(i int) (*T, error)
	Size() int
	Empty() bool
	Clear()
}

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "List is Empty: cannot Pop or Peek."
}

type IndexRangeError struct {
	Index, Size int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("index %d is out of range for a List of size %d.", e.Index, e.Size)
}
