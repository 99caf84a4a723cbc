package primitives

// Queue is a slice-backed FIFO queue of ints.
// The zero value is an empty queue ready for use.
type Queue struct {
	items []int
}

// Enqueue appends v to the back of the queue.
func (q *Queue) Enqueue(v int) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the front element.
// The second return value is false when the queue is empty.
func (q *Queue) Dequeue() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	v := q.items[0]
	q.items = q.items[1:]

	return v, true
}

// Front returns the front element without removing it.
// The second return value is false when the queue is empty.
func (q *Queue) Front() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}

	return q.items[0], true
}

// Len reports the number of queued elements.
func (q *Queue) Len() int { return len(q.items) }

// Clear removes all elements, leaving an empty queue.
func (q *Queue) Clear() { q.items = nil }
