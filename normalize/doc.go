// Package normalize implements the policy applied to raw field mappings
// before they are decoded and after records are encoded.
//
// For every field declared by an entity:
//   - a list field that is null becomes an empty list;
//   - null and empty-string entries are dropped from list fields;
//   - an empty string in a string field becomes null;
//   - a nil pointer or nil map in a scalar or map field becomes null;
//   - a slice of mappings is widened to a generic list.
//
// Keys that the entity does not declare are left untouched.
package normalize
