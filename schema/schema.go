package schema

import (
	"maps"
	"slices"

	"github.com/aliceplex/schema/diagnostic"
	"github.com/aliceplex/schema/field"
	"github.com/aliceplex/schema/internal/match"
	"github.com/aliceplex/schema/normalize"
)

// Mapping is the wire representation of an entity: field name to string,
// number, boolean, null, list, nested mapping or season map.
type Mapping = map[string]any

// CodeUnknownKey is the info code reported for keys an entity does not declare.
const CodeUnknownKey = "unknown_key"

// Schema converts between records of type T and mappings.
type Schema[T any] struct {
	entity    string
	fields    field.Table
	nested    map[string]elementCodec
	rules     *Rules
	build     func(values) T
	decompose func(T) values
}

func newSchema[T any](
	entity string,
	fields field.Table,
	nested map[string]elementCodec,
	build func(values) T,
	decompose func(T) values,
) *Schema[T] {
	return &Schema[T]{
		entity:    entity,
		fields:    fields,
		nested:    nested,
		build:     build,
		decompose: decompose,
	}
}

// strict returns a copy of s enforcing rules, with the given nested codecs
// replacing the lenient ones.
func (s *Schema[T]) strict(rules Rules, nested map[string]elementCodec) *Schema[T] {
	c := *s
	c.rules = &rules
	c.nested = make(map[string]elementCodec, len(s.nested))
	maps.Copy(c.nested, s.nested)
	maps.Copy(c.nested, nested)

	return &c
}

// Entity returns the entity name, e.g. "show".
func (s *Schema[T]) Entity() string { return s.entity }

// Strict reports whether the schema enforces strict rules.
func (s *Schema[T]) Strict() bool { return s.rules != nil }

// Fields returns the field table of the entity.
func (s *Schema[T]) Fields() field.Table { return slices.Clone(s.fields) }

// Load converts m to a record. On failure it returns a *ValidationError
// describing every violation and the zero record.
func (s *Schema[T]) Load(m Mapping) (T, error) {
	vals, d := s.decode(m)
	if d.HasErrors() {
		var zero T
		return zero, &ValidationError{Entity: s.entity, Diagnostics: d}
	}

	return s.build(vals), nil
}

// Dump converts r to a normalized mapping holding every declared field.
func (s *Schema[T]) Dump(r T) Mapping {
	vals := s.decompose(r)

	out := make(Mapping, len(s.fields))
	for _, fd := range s.fields {
		out[fd.Name] = encodeValue(fd.Kind, vals[fd.Name], s.nested[fd.Name])
	}

	return normalize.Apply(out, s.fields)
}

// Validate runs the load checks on m without building a record. Unknown keys
// are reported as infos.
func (s *Schema[T]) Validate(m Mapping) *diagnostic.Diagnostics {
	_, d := s.decode(m)
	return d
}

// Canonicalize loads m and dumps the result.
func (s *Schema[T]) Canonicalize(m Mapping) (Mapping, error) {
	r, err := s.Load(m)
	if err != nil {
		return nil, err
	}

	return s.Dump(r), nil
}

func (s *Schema[T]) decode(m Mapping) (values, *diagnostic.Diagnostics) {
	data := normalize.Apply(m, s.fields)
	d := &diagnostic.Diagnostics{}

	s.reportUnknown(data, d)

	vals := make(values, len(s.fields))

	for _, fd := range s.fields {
		raw, ok := data[fd.Name]
		if !ok || raw == nil {
			continue
		}

		if v, ok := s.decodeField(fd, raw, d); ok {
			vals[fd.Name] = v
		}
	}

	if s.rules != nil {
		s.rules.check(s.entity, s.fields, data, vals, d)
	}

	return vals, d
}

func (s *Schema[T]) decodeField(fd field.Descriptor, raw any, d *diagnostic.Diagnostics) (any, bool) {
	switch fd.Kind {
	case field.KindString:
		v, ok := decodeString(raw)
		if !ok {
			d.AddError(diagnostic.KindTypeMismatch, msgNotString, s.entity, fd.Name)
		}

		return v, ok
	case field.KindStringList:
		return decodeStrings(raw, s.entity, fd.Name, d)
	case field.KindDate:
		v, ok := decodeDate(raw)
		if !ok {
			d.AddError(diagnostic.KindTypeMismatch, msgNotDate, s.entity, fd.Name)
		}

		return v, ok
	case field.KindFloat:
		v, ok := decodeFloat(raw)
		if !ok {
			d.AddError(diagnostic.KindTypeMismatch, msgNotNumber, s.entity, fd.Name)
		}

		return v, ok
	case field.KindNestedList, field.KindNameList:
		return s.decodeList(fd.Name, raw, d)
	case field.KindSeasonMap:
		return decodeSeasons(raw, s.entity, fd.Name, d)
	default:
		return nil, false
	}
}

func (s *Schema[T]) decodeList(name string, raw any, d *diagnostic.Diagnostics) ([]any, bool) {
	var l []any

	switch t := raw.(type) {
	case []any:
		l = t
	case []string:
		l = anys(t)
	default:
		d.AddError(diagnostic.KindTypeMismatch, msgNotList, s.entity, name)
		return nil, false
	}

	codec := s.nested[name]
	out := make([]any, 0, len(l))

	for i, e := range l {
		if r, ok := codec.decodeElement(e, s.entity, diagnostic.Index(name, i), d); ok {
			out = append(out, r)
		}
	}

	return out, len(out) == len(l)
}

func (s *Schema[T]) reportUnknown(data Mapping, d *diagnostic.Diagnostics) {
	var unknown []string

	for k := range data {
		if !s.fields.Has(k) {
			unknown = append(unknown, k)
		}
	}

	slices.Sort(unknown)

	for _, k := range unknown {
		d.AddInfo(CodeUnknownKey, "unknown field ignored", s.entity, k, match.Suggest(k, s.fields.Names())...)
	}
}
