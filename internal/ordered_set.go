package internal

import "fmt"

// OrderedSet holds unique elements, remembering the order in which they were first added.
type OrderedSet[T comparable] struct {
	items []T
	index map[T]struct{}
}

// NewOrderedSet creates a new ordered set seeded with the given elements.
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		items: make([]T, 0, len(items)),
		index: make(map[T]struct{}, len(items)),
	}
	s.Add(items...)
	return s
}

// Add inserts elements not already present and returns how many were added.
func (s *OrderedSet[T]) Add(items ...T) int {
	added := 0
	for _, item := range items {
		if _, exists := s.index[item]; exists {
			continue
		}
		s.index[item] = struct{}{}
		s.items = append(s.items, item)
		added++
	}
	return added
}

// Contains reports whether the element is in the set.
func (s *OrderedSet[T]) Contains(item T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[item]
	return ok
}

// Size returns the number of elements in the set.
func (s *OrderedSet[T]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// ToSlice returns a copy of the elements in first-added order.
func (s *OrderedSet[T]) ToSlice() []T {
	if s == nil {
		return nil
	}
	result := make([]T, len(s.items))
	copy(result, s.items)
	return result
}

func (s *OrderedSet[T]) String() string {
	if s == nil {
		return "OrderedSet[]"
	}
	return fmt.Sprintf("OrderedSet%v", s.items)
}
