package normalize

import (
	"maps"

	"cloud.google.com/go/civil"

	"github.com/aliceplex/schema/field"
)

// Apply returns a normalized shallow copy of data. The input map is never
// modified; applying the policy twice gives the same result as applying it
// once.
func Apply(data map[string]any, table field.Table) map[string]any {
	out := make(map[string]any, len(data))
	maps.Copy(out, data)

	for _, d := range table {
		v, ok := out[d.Name]
		if !ok {
			continue
		}

		switch {
		case d.Kind.IsList():
			out[d.Name] = List(v)
		case d.Kind.IsString():
			out[d.Name] = String(Null(v))
		default:
			out[d.Name] = Null(v)
		}
	}

	return out
}

// List normalizes a list value. Null becomes an empty list and null or
// empty-string entries are removed. Values that are not lists are returned
// unchanged so that decoding can report them.
func List(v any) any {
	switch l := v.(type) {
	case nil:
		return []any{}
	case []any:
		out := make([]any, 0, len(l))
		for _, e := range l {
			if isBlank(e) {
				continue
			}

			out = append(out, e)
		}

		return out
	case []string:
		out := make([]string, 0, len(l))
		for _, e := range l {
			if e == "" {
				continue
			}

			out = append(out, e)
		}

		return out
	case []map[string]any:
		out := make([]any, 0, len(l))
		for _, e := range l {
			if e != nil {
				out = append(out, e)
			}
		}

		return out
	case []map[any]any:
		out := make([]any, 0, len(l))
		for _, e := range l {
			if e != nil {
				out = append(out, e)
			}
		}

		return out
	default:
		return v
	}
}

// Null turns nil pointers and nil maps, as handed in by in-process callers,
// into an untyped nil so that they read as null.
func Null(v any) any {
	switch t := v.(type) {
	case *string:
		if t == nil {
			return nil
		}
	case *float64:
		if t == nil {
			return nil
		}
	case *civil.Date:
		if t == nil {
			return nil
		}
	case map[int]string:
		if t == nil {
			return nil
		}
	case map[string]any:
		if t == nil {
			return nil
		}
	case map[any]any:
		if t == nil {
			return nil
		}
	}

	return v
}

// String turns an empty string into null.
func String(v any) any {
	if s, ok := v.(string); ok && s == "" {
		return nil
	}

	return v
}

func isBlank(v any) bool {
	switch e := v.(type) {
	case nil:
		return true
	case string:
		return e == ""
	default:
		return false
	}
}
