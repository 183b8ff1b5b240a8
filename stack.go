package omegacalc

// stack is a LIFO over a slice. The formatter and the solver each
// create fresh stacks per call; nothing is shared between invocations.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) {
	s.items = append(s.items, v)
}

// top returns the top item without removing it. ok is false when the
// stack is empty.
func (s *stack[T]) top() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

// pop removes and returns the top item. ok is false when the stack is
// empty.
func (s *stack[T]) pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	v = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *stack[T]) len() int {
	return len(s.items)
}
