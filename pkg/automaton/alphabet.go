package automaton

import orderedmap "github.com/wk8/go-ordered-map/v2"

// orderedSet keeps elements in first-insertion order.
// Sampling iterates Σ through it, which makes generation reproducible for a
// given seed.
type orderedSet[T comparable] struct {
	m *orderedmap.OrderedMap[T, struct{}]
}

func newOrderedSet[T comparable](items ...T) *orderedSet[T] {
	s := &orderedSet[T]{m: orderedmap.New[T, struct{}]()}
	for _, it := range items {
		s.add(it)
	}
	return s
}

// add inserts v and reports whether it was new. Existing elements keep their position.
func (s *orderedSet[T]) add(v T) bool {
	_, present := s.m.Set(v, struct{}{})
	return !present
}

func (s *orderedSet[T]) has(v T) bool {
	_, ok := s.m.Get(v)
	return ok
}

func (s *orderedSet[T]) len() int {
	return s.m.Len()
}

func (s *orderedSet[T]) items() []T {
	out := make([]T, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
