package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const unknownStr = "unknown"

// Diagnostics holds every diagnostic produced by one validation pass.
type Diagnostics struct {
	Errors []Diagnostic
	Infos  []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Kind classifies an error diagnostic; zero for warnings and infos.
	Kind Kind
	// Cause is the kind of the innermost violation of a nested failure.
	Cause Kind
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Entity names the entity whose schema reported the diagnostic.
	Entity string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	default:
		return unknownStr
	}
}

// Kind is the violation taxonomy of error diagnostics.
type Kind int

const (
	KindNone Kind = iota
	// KindTypeMismatch: a value cannot be read as its declared kind.
	KindTypeMismatch
	// KindMissingRequired: a required field is absent or null (strict only).
	KindMissingRequired
	// KindConstraintViolation: a list is too short or a number out of range (strict only).
	KindConstraintViolation
	// KindNestedFailure: a violation inside a nested list element.
	KindNestedFailure
)

// String returns the code of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTypeMismatch:
		return "type_mismatch"
	case KindMissingRequired:
		return "missing_required"
	case KindConstraintViolation:
		return "constraint_violation"
	case KindNestedFailure:
		return "nested_failure"
	default:
		return unknownStr
	}
}

// AddError adds an error diagnostic of the given kind.
func (d *Diagnostics) AddError(kind Kind, message, entity, fieldPath string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  SeverityError,
		Kind:      kind,
		Code:      kind.String(),
		Message:   message,
		Entity:    entity,
		FieldPath: fieldPath,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, entity, fieldPath string, suggestions ...string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:    SeverityInfo,
		Code:        code,
		Message:     message,
		Entity:      entity,
		FieldPath:   fieldPath,
		Suggestions: suggestions,
	})
}

// AddNested records the diagnostics of a nested element under prefix.
// Errors become nested failures that keep the innermost kind as Cause.
func (d *Diagnostics) AddNested(inner *Diagnostics, entity, prefix string) {
	if inner == nil {
		return
	}

	for _, e := range inner.Errors {
		cause := e.Kind
		if e.Kind == KindNestedFailure {
			cause = e.Cause
		}

		e.Kind = KindNestedFailure
		e.Cause = cause
		e.Code = KindNestedFailure.String()
		e.Entity = entity
		e.FieldPath = Join(prefix, e.FieldPath)
		d.Errors = append(d.Errors, e)
	}

	for _, i := range inner.Infos {
		i.Entity = entity
		i.FieldPath = Join(prefix, i.FieldPath)
		d.Infos = append(d.Infos, i)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Has reports whether any error is of the given kind, or is a nested
// failure caused by it.
func (d *Diagnostics) Has(kind Kind) bool {
	return d.Count(kind) > 0
}

// Count returns the number of errors of the given kind, counting nested
// failures by their cause as well.
func (d *Diagnostics) Count(kind Kind) int {
	n := 0

	for _, e := range d.Errors {
		if e.Kind == kind || (e.Kind == KindNestedFailure && e.Cause == kind) {
			n++
		}
	}

	return n
}

// Fields groups error messages by field path.
func (d *Diagnostics) Fields() map[string][]string {
	fields := make(map[string][]string, len(d.Errors))
	for _, e := range d.Errors {
		fields[e.FieldPath] = append(fields[e.FieldPath], e.Message)
	}

	return fields
}

// Paths returns the sorted, distinct field paths that have errors.
func (d *Diagnostics) Paths() []string {
	fields := d.Fields()

	paths := make([]string, 0, len(fields))
	for p := range fields {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Entity != "" {
		prefix = append(prefix, "["+d.Entity+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
