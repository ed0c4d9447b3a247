package machine

import (
	"slices"
)

// Queue is a first-in first-out sequence of integers, used for both the
// inbox and the outbox.
type Queue struct {
	data []int
	head int
}

// Load replaces the queue content with a copy of data.
func (q *Queue) Load(data []int) {
	q.Reset()
	q.data = append(q.data, data...)
}

// Push appends a value at the back.
func (q *Queue) Push(value int) {
	q.data = append(q.data, value)
}

// Pop removes the value at the front.
func (q *Queue) Pop() (value int, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.head++
	}
	return
}

// Peek returns the value at the front without removing it.
func (q *Queue) Peek() (value int, ok bool) {
	if q.Empty() {
		return
	}

	return q.data[q.head], true
}

// Len returns the number of values not yet popped.
func (q *Queue) Len() int {
	return len(q.data) - q.head
}

func (q *Queue) Empty() bool {
	return q.Len() == 0
}

// Values returns a copy of the values not yet popped, in order.
func (q *Queue) Values() []int {
	return slices.Clone(q.data[q.head:])
}

func (q *Queue) Reset() {
	q.head = 0
	if len(q.data) > 0 {
		q.data = q.data[:0]
	}
}
