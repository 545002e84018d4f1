package schema

import (
	"github.com/aliceplex/schema/diagnostic"
	"github.com/aliceplex/schema/model"
)

// elementCodec converts the elements of a nested list field.
type elementCodec interface {
	// decodeElement reads one element found at path. Violations are
	// recorded in d under the parent entity.
	decodeElement(v any, entity, path string, d *diagnostic.Diagnostics) (any, bool)
	encodeElement(v any) any
}

func (s *Schema[T]) decodeElement(v any, entity, path string, d *diagnostic.Diagnostics) (any, bool) {
	m, ok := asMapping(v)
	if !ok {
		d.AddError(diagnostic.KindTypeMismatch, msgNotMapping, entity, path)
		return nil, false
	}

	vals, inner := s.decode(m)
	d.AddNested(inner, entity, path)

	if inner.HasErrors() {
		return nil, false
	}

	return s.build(vals), true
}

func (s *Schema[T]) encodeElement(v any) any {
	r, ok := v.(T)
	if !ok {
		return nil
	}

	return s.Dump(r)
}

// names is the codec of person lists that only carry names, such as
// directors and writers. An element is either a name or a person mapping;
// the record keeps the name only and the wire form is the bare name.
type names struct {
	person *Schema[model.Person]
}

func (n names) decodeElement(v any, entity, path string, d *diagnostic.Diagnostics) (any, bool) {
	if s, ok := v.(string); ok {
		return model.Person{Name: &s}, true
	}

	if _, ok := asMapping(v); !ok {
		d.AddError(diagnostic.KindTypeMismatch, msgNotName, entity, path)
		return nil, false
	}

	p, ok := n.person.decodeElement(v, entity, path, d)
	if !ok {
		return nil, false
	}

	return model.Person{Name: p.(model.Person).Name}, true
}

func (n names) encodeElement(v any) any {
	p, ok := v.(model.Person)
	if !ok || p.Name == nil {
		return nil
	}

	return *p.Name
}
