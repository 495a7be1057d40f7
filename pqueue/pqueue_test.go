package pqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueuePopsLowestProbabilityFirst(t *testing.T) {
	q := New[string]()
	q.Push("risky", Priority{Probability: 0.8})
	q.Push("safe", Priority{Probability: 0.1})
	q.Push("medium", Priority{Probability: 0.5})

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "safe", v)

	v, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, "medium", v)
}

func TestQueueBreaksTiesByDistanceThenXThenY(t *testing.T) {
	q := New[string]()
	q.Push("far", Priority{Probability: 0.2, DistanceSquared: 10})
	q.Push("near", Priority{Probability: 0.2, DistanceSquared: 1})

	v, _ := q.Pop()
	assert.Equal(t, "near", v)

	q2 := New[string]()
	q2.Push("rightLow", Priority{Probability: 0.2, DistanceSquared: 1, X: 5, Y: 0})
	q2.Push("leftLow", Priority{Probability: 0.2, DistanceSquared: 1, X: 2, Y: 9})
	v2, _ := q2.Pop()
	assert.Equal(t, "leftLow", v2)

	q3 := New[string]()
	q3.Push("lowerRow", Priority{Probability: 0.2, DistanceSquared: 1, X: 2, Y: 7})
	q3.Push("upperRow", Priority{Probability: 0.2, DistanceSquared: 1, X: 2, Y: 3})
	v3, _ := q3.Pop()
	assert.Equal(t, "upperRow", v3)
}

func TestQueueEmptyPopAndPeek(t *testing.T) {
	q := New[int]()
	assert.True(t, q.IsEmpty())
	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
}

func TestQueueLen(t *testing.T) {
	q := New[int]()
	q.Push(1, Priority{Probability: 0.5})
	q.Push(2, Priority{Probability: 0.1})
	assert.Equal(t, 2, q.Len())
	q.Pop()
	assert.Equal(t, 1, q.Len())
}
