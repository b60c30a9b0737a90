package Stacks

// Stack is a LIFO container. Receivers returning (T, error) yield a
// zero T together with a non nil error when the operation needs at
// least one element and the stack is empty.
type Stack[T comparable] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Size() int
	Empty() bool
	Clear()
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop or Peek."
}
