package common

import "iter"

type Set[T comparable] map[T]struct{}

func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, value := range values {
		s[value] = struct{}{}
	}

	return s
}

func CollectSet[T comparable](seq iter.Seq[T]) Set[T] {
	s := make(Set[T])
	for value := range seq {
		s[value] = struct{}{}
	}

	return s
}

func (s Set[T]) Contains(value T) bool {
	_, ok := s[value]
	return ok
}

func (s Set[T]) Remove(value T) bool {
	_, ok := s[value]
	delete(s, value)
	return ok
}
