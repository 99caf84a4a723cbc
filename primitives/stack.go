package primitives

// Stack is a slice-backed LIFO stack of ints.
// The zero value is an empty stack ready for use.
type Stack struct {
	items []int
}

// Push places v on top of the stack.
func (s *Stack) Push(v int) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// The second return value is false when the stack is empty.
func (s *Stack) Pop() (int, bool) {
	n := len(s.items)
	if n == 0 {
		return 0, false
	}
	v := s.items[n-1]
	s.items = s.items[:n-1]

	return v, true
}

// Top returns the top element without removing it.
// The second return value is false when the stack is empty.
func (s *Stack) Top() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}

	return s.items[len(s.items)-1], true
}

// Len reports the number of stacked elements.
func (s *Stack) Len() int { return len(s.items) }

// Clear removes all elements, leaving an empty stack.
func (s *Stack) Clear() { s.items = nil }
