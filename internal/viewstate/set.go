package viewstate

import (
	"cmp"
	"slices"
)

// Set is a membership set. The zero value is ready to use.
type Set[T comparable] struct {
	m map[T]struct{}
}

// Add inserts v.
func (s *Set[T]) Add(v T) {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	s.m[v] = struct{}{}
}

// Remove deletes v. Removing a missing element is a no-op.
func (s *Set[T]) Remove(v T) { delete(s.m, v) }

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.m[v]
	return ok
}

// Toggle adds v if absent and removes it if present. It returns whether v
// is a member afterwards.
func (s *Set[T]) Toggle(v T) bool {
	if s.Contains(v) {
		s.Remove(v)
		return false
	}
	s.Add(v)
	return true
}

// Len returns the number of members.
func (s *Set[T]) Len() int { return len(s.m) }

// Items returns the members in unspecified order.
func (s *Set[T]) Items() []T {
	out := make([]T, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	return out
}

// Sorted returns the members of s in ascending order.
func Sorted[T cmp.Ordered](s *Set[T]) []T {
	out := s.Items()
	slices.Sort(out)
	return out
}
