package model

import (
	"maps"
	"slices"
)

// Ptr returns a pointer to v. It keeps record literals short.
func Ptr[T any](v T) *T {
	return &v
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// equalStrings treats nil and empty lists as the same empty sequence.
func equalStrings(a, b []string) bool {
	return slices.Equal(a, b)
}

func equalPersons(a, b []Person) bool {
	return slices.EqualFunc(a, b, Person.Equal)
}

func equalActors(a, b []Actor) bool {
	return slices.EqualFunc(a, b, Actor.Equal)
}

func equalSeasons(a, b map[int]string) bool {
	return maps.Equal(a, b)
}
