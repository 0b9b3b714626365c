package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderedSet(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected []string
	}{
		{
			name:     "empty set",
			items:    []string{},
			expected: []string{},
		},
		{
			name:     "single item",
			items:    []string{"a"},
			expected: []string{"a"},
		},
		{
			name:     "duplicates keep first position",
			items:    []string{"b", "a", "b", "c", "a"},
			expected: []string{"b", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewOrderedSet(tt.items...).ToSlice())
		})
	}
}

func TestOrderedSet_Add(t *testing.T) {
	s := NewOrderedSet(1, 2)

	assert.Equal(t, 1, s.Add(2, 3, 3))
	assert.Equal(t, 0, s.Add(1))
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
}

func TestOrderedSet_StructElements(t *testing.T) {
	type ref struct {
		url   string
		score float64
	}

	s := NewOrderedSet(ref{"a", 1}, ref{"b", 2}, ref{"a", 1}, ref{"a", 2})
	assert.Equal(t, []ref{{"a", 1}, {"b", 2}, {"a", 2}}, s.ToSlice())
}

func TestOrderedSet_Nil(t *testing.T) {
	var s *OrderedSet[string]
	assert.False(t, s.Contains("a"))
	assert.Zero(t, s.Size())
	assert.Nil(t, s.ToSlice())
	assert.Equal(t, "OrderedSet[]", s.String())
}

func TestOrderedSet_ToSliceIsCopy(t *testing.T) {
	s := NewOrderedSet("a", "b")
	items := s.ToSlice()
	items[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.ToSlice())
}
