package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"cloud.google.com/go/civil"

	"github.com/aliceplex/schema/diagnostic"
)

const (
	msgNotString  = "not a valid string"
	msgNotList    = "not a valid list"
	msgNotDate    = "not a valid date, expected YYYY-MM-DD"
	msgNotNumber  = "not a valid number"
	msgNotMapping = "not a valid mapping"
	msgNotName    = "not a valid name or person"
)

// decodeString reads a string-kind value.
func decodeString(v any) (*string, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}

	return &s, true
}

// decodeStrings reads a list of strings, reporting each bad element.
func decodeStrings(v any, entity, path string, d *diagnostic.Diagnostics) ([]string, bool) {
	switch l := v.(type) {
	case []string:
		return append([]string{}, l...), true
	case []any:
		out := make([]string, 0, len(l))
		ok := true

		for i, e := range l {
			s, isString := e.(string)
			if !isString {
				d.AddError(diagnostic.KindTypeMismatch, msgNotString, entity, diagnostic.Index(path, i))
				ok = false

				continue
			}

			out = append(out, s)
		}

		return out, ok
	default:
		d.AddError(diagnostic.KindTypeMismatch, msgNotList, entity, path)
		return nil, false
	}
}

// decodeDate accepts a parsed date, a timestamp (YAML decodes dates to
// time.Time) or a YYYY-MM-DD string.
func decodeDate(v any) (*civil.Date, bool) {
	var date civil.Date

	switch t := v.(type) {
	case civil.Date:
		date = t
	case *civil.Date:
		if t == nil {
			return nil, true
		}

		date = *t
	case time.Time:
		date = civil.DateOf(t)
	case string:
		parsed, err := civil.ParseDate(t)
		if err != nil {
			return nil, false
		}

		date = parsed
	default:
		return nil, false
	}

	if !date.IsValid() {
		return nil, false
	}

	return &date, true
}

// decodeFloat accepts any Go number and json.Number. Booleans and numeric
// strings are rejected.
func decodeFloat(v any) (*float64, bool) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil, false
		}

		f = parsed
	default:
		return nil, false
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, false
	}

	return &f, true
}

// decodeSeasons reads a season map. JSON documents carry the season numbers
// as string keys, YAML documents as integer keys.
func decodeSeasons(v any, entity, path string, d *diagnostic.Diagnostics) (map[int]string, bool) {
	out := make(map[int]string)
	ok := true

	put := func(k, val any) {
		season, isInt := seasonKey(k)
		if !isInt {
			d.AddError(diagnostic.KindTypeMismatch, fmt.Sprintf("season key %v is not an integer", k), entity, path)
			ok = false

			return
		}

		s, isString := val.(string)
		if !isString {
			d.AddError(diagnostic.KindTypeMismatch,
				fmt.Sprintf("season %d: %s", season, msgNotString), entity, path)
			ok = false

			return
		}

		out[season] = s
	}

	switch m := v.(type) {
	case map[int]string:
		for k, val := range m {
			put(k, val)
		}
	case map[int]any:
		for k, val := range m {
			put(k, val)
		}
	case map[string]any:
		for k, val := range m {
			put(k, val)
		}
	case map[string]string:
		for k, val := range m {
			put(k, val)
		}
	case map[any]any:
		for k, val := range m {
			put(k, val)
		}
	default:
		d.AddError(diagnostic.KindTypeMismatch, msgNotMapping, entity, path)
		return nil, false
	}

	return out, ok
}

func seasonKey(k any) (int, bool) {
	switch n := k.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}

		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}

		return i, true
	default:
		return 0, false
	}
}

// asMapping accepts the mapping shapes produced by encoding/json, yaml.v3
// and in-process callers.
func asMapping(v any) (Mapping, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(Mapping, len(m))
		for k, val := range m {
			out[k] = val
		}

		return out, true
	case map[any]any:
		out := make(Mapping, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}

			out[key] = val
		}

		return out, true
	default:
		return nil, false
	}
}
