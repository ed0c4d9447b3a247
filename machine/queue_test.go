package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_Push(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	assert.True(q.Empty())

	q.Push(12)
	assert.False(q.Empty())
	assert.Equal(1, q.Len())
	assert.Equal([]int{12}, q.Values())
}

func TestQueue_Pop(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Push(1)
	q.Push(-2)

	val, ok := q.Pop()
	assert.True(ok)
	assert.Equal(1, val)
	assert.Equal(1, q.Len())

	val, ok = q.Pop()
	assert.True(ok)
	assert.Equal(-2, val)
	assert.True(q.Empty())
}

func TestQueue_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	val, ok := q.Pop()
	assert.False(ok)
	assert.Equal(0, val)
}

func TestQueue_Peek(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Push(5)
	q.Push(6)

	val, ok := q.Peek()
	assert.True(ok)
	assert.Equal(5, val)
	assert.Equal(2, q.Len())
}

func TestQueue_Load(t *testing.T) {
	assert := assert.New(t)

	data := []int{3, 4, 5}

	q := &Queue{}
	q.Push(99)
	q.Pop()
	q.Load(data)
	assert.Equal([]int{3, 4, 5}, q.Values())

	// The queue owns a copy.
	q.Pop()
	q.Push(6)
	assert.Equal([]int{3, 4, 5}, data)
	assert.Equal([]int{4, 5, 6}, q.Values())
}

func TestQueue_Values(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	assert.Nil(q.Values())

	q.Load([]int{1, 2, 3})
	q.Pop()

	values := q.Values()
	assert.Equal([]int{2, 3}, values)

	// Changing the copy leaves the queue alone.
	values[0] = 99
	assert.Equal([]int{2, 3}, q.Values())
	assert.Equal(2, q.Len())

	val, ok := q.Pop()
	assert.True(ok)
	assert.Equal(2, val)
}

func TestQueue_Reset(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Push(1)
	q.Push(2)
	q.Pop()

	q.Reset()
	assert.True(q.Empty())
	assert.Equal(0, q.Len())

	q.Push(3)
	val, ok := q.Pop()
	assert.True(ok)
	assert.Equal(3, val)
}
