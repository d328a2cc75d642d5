package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{name: "zero capacity", capacity: 0},
		{name: "negative capacity", capacity: -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := New[int](tc.capacity)

			assert.Nil(t, r)
			assert.ErrorIs(t, err, ErrInvalidCapacity)
		})
	}
}

func TestRing_SnapshotOrder(t *testing.T) {
	type input struct {
		capacity int
		pushes   []int
	}

	type expected struct {
		snapshot []int
	}

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name:     "empty ring",
			input:    input{capacity: 4, pushes: nil},
			expected: expected{snapshot: []int{}},
		},
		{
			name:     "under capacity keeps insertion order",
			input:    input{capacity: 4, pushes: []int{1, 2, 3}},
			expected: expected{snapshot: []int{1, 2, 3}},
		},
		{
			name:     "exactly at capacity",
			input:    input{capacity: 3, pushes: []int{1, 2, 3}},
			expected: expected{snapshot: []int{1, 2, 3}},
		},
		{
			name:     "overwrites oldest beyond capacity",
			input:    input{capacity: 3, pushes: []int{1, 2, 3, 4, 5}},
			expected: expected{snapshot: []int{3, 4, 5}},
		},
		{
			name:     "capacity one keeps only the last push",
			input:    input{capacity: 1, pushes: []int{1, 2, 3}},
			expected: expected{snapshot: []int{3}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := New[int](tc.input.capacity)
			require.NoError(t, err)

			for _, v := range tc.input.pushes {
				r.Push(v)
			}

			snapshot := r.Snapshot()
			if len(tc.expected.snapshot) == 0 {
				assert.Empty(t, snapshot)
			} else {
				assert.Equal(t, tc.expected.snapshot, snapshot)
			}
			assert.Equal(t, len(tc.expected.snapshot), r.Len())
			assert.Equal(t, tc.input.capacity, r.Cap())
		})
	}
}

func TestRing_OverwriteKeepsMostRecent(t *testing.T) {
	r, err := New[int](8)
	require.NoError(t, err)

	for i := 1; i <= 100; i++ {
		r.Push(i)
	}

	snapshot := r.Snapshot()
	require.Len(t, snapshot, 8)
	assert.Equal(t, []int{93, 94, 95, 96, 97, 98, 99, 100}, snapshot)
}

func TestRing_Last(t *testing.T) {
	r, err := New[string](2)
	require.NoError(t, err)

	_, ok := r.Last()
	assert.False(t, ok, "expected no last item on an empty ring")

	r.Push("a")
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "a", last)

	r.Push("b")
	r.Push("c") // wraps, overwriting "a"
	last, ok = r.Last()
	require.True(t, ok)
	assert.Equal(t, "c", last)
}

func TestRing_SnapshotIsACopy(t *testing.T) {
	r, err := New[int](3)
	require.NoError(t, err)
	r.Push(1)
	r.Push(2)

	snapshot := r.Snapshot()
	snapshot[0] = 99
	r.Push(3)

	assert.Equal(t, []int{1, 2, 3}, r.Snapshot())
	assert.Equal(t, []int{99, 2}, snapshot)
}
