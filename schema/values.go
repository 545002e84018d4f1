package schema

import (
	"maps"
	"slices"

	"cloud.google.com/go/civil"
)

// values holds decoded field values keyed by wire name. Each kind has one
// Go representation:
//
//	KindString      *string
//	KindStringList  []string
//	KindDate        *civil.Date
//	KindFloat       *float64
//	KindNestedList  []any of the nested record type
//	KindNameList    []any of model.Person
//	KindSeasonMap   map[int]string
type values map[string]any

func (v values) str(name string) *string {
	p, _ := v[name].(*string)
	return p
}

func (v values) strs(name string) []string {
	l, _ := v[name].([]string)
	if l == nil {
		return []string{}
	}

	return l
}

func (v values) date(name string) *civil.Date {
	p, _ := v[name].(*civil.Date)
	return p
}

func (v values) float(name string) *float64 {
	p, _ := v[name].(*float64)
	return p
}

func (v values) seasons(name string) map[int]string {
	m, _ := v[name].(map[int]string)
	if m == nil {
		return map[int]string{}
	}

	return m
}

// elems converts a decoded nested list to its record type.
func elems[E any](v values, name string) []E {
	l, _ := v[name].([]any)

	out := make([]E, 0, len(l))
	for _, e := range l {
		if r, ok := e.(E); ok {
			out = append(out, r)
		}
	}

	return out
}

// anys widens a record slice for encoding.
func anys[E any](s []E) []any {
	out := make([]any, len(s))
	for i, e := range s {
		out[i] = e
	}

	return out
}

func sortedKeys[V any](m map[int]V) []int {
	return slices.Sorted(maps.Keys(m))
}
