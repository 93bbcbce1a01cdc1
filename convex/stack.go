package convex

import "github.com/pkg/errors"

// ErrStackFull is returned by Push when the stack is already at
// capacity. The rejected record is not written, so the stack contents
// are exactly what they were before the call.
var ErrStackFull = errors.New("stack is full")

// A Stack is a fixed-capacity LIFO. The backing array is allocated
// once at construction and never grows, which is the point: hull
// construction runs against a scratch stack sized up front, and an
// overflow means the caller sized it wrong, not that the stack should
// quietly reallocate. A Stack can be reused across computations but
// must not be shared by two computations in flight.
type Stack[T any] struct {
	items []T
}

// NewStack creates an empty stack holding at most capacity records.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// NewScanStack creates a stack sized to run a hull computation over a
// point set of the given capacity.
func NewScanStack(capacity int) *Stack[FlaggedIndex] {
	return NewStack[FlaggedIndex](capacity)
}

// Clear empties the stack. Storage is retained.
func (s *Stack[T]) Clear() {
	s.items = s.items[:0]
}

// Push places item on top of the stack, or returns ErrStackFull
// without writing anything.
func (s *Stack[T]) Push(item T) error {
	if len(s.items) == cap(s.items) {
		return ErrStackFull
	}
	s.items = append(s.items, item)
	return nil
}

// Pop removes and returns the top record. ok is false if the stack is
// empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}
	item = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// Peek returns the record depth entries below the top without removing
// it. Peek(0) is the top of the stack. ok is false if depth reaches
// past the bottom.
func (s *Stack[T]) Peek(depth int) (item T, ok bool) {
	if depth < 0 || depth >= len(s.items) {
		return item, false
	}
	return s.items[len(s.items)-1-depth], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Cap() int {
	return cap(s.items)
}
