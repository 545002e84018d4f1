package schema

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aliceplex/schema/diagnostic"
)

var (
	// ErrValidation matches every *ValidationError with errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrUnknownEntity is returned by Lookup for names it does not know.
	ErrUnknownEntity = errors.New("unknown entity")
)

// ValidationError is the aggregate failure of a load. It carries every
// violation found, not only the first one.
type ValidationError struct {
	Entity      string
	Diagnostics *diagnostic.Diagnostics
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Entity, e.Diagnostics.Error())
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Fields maps each violated field path (e.g. "actors[0].role") to its messages.
func (e *ValidationError) Fields() map[string][]string {
	return e.Diagnostics.Fields()
}

// Roots returns the sorted top-level fields that have at least one violation.
func (e *ValidationError) Roots() []string {
	seen := make(map[string]struct{})

	for _, p := range e.Diagnostics.Paths() {
		seen[diagnostic.Root(p)] = struct{}{}
	}

	roots := make([]string, 0, len(seen))
	for r := range seen {
		roots = append(roots, r)
	}

	sort.Strings(roots)

	return roots
}
