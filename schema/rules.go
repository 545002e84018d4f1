package schema

import (
	"fmt"

	"github.com/aliceplex/schema/diagnostic"
	"github.com/aliceplex/schema/field"
	"github.com/aliceplex/schema/internal/common"
)

// Bounds is an inclusive numeric range.
type Bounds struct {
	Min, Max float64
}

// ratingBounds is the range of every rating field.
var ratingBounds = Bounds{Min: 0, Max: 10}

// Rules are the constraints a strict converter adds to the type checks of
// its lenient counterpart.
type Rules struct {
	// Required fields must be present and non-null.
	Required []string
	// MinLength is the minimum number of elements of a list field.
	MinLength map[string]int
	// Range bounds float fields when they are set.
	Range map[string]Bounds
	// MinKey is the smallest allowed key of a season map.
	MinKey map[string]int
}

// check runs the rules against the normalized input and the values that
// decoded successfully. Fields that failed to decode are only checked for
// presence.
func (r *Rules) check(entity string, table field.Table, data Mapping, vals values, d *diagnostic.Diagnostics) {
	missing := make(map[string]bool, len(r.Required))

	for _, name := range r.Required {
		if v, ok := data[name]; !ok || v == nil {
			missing[name] = true
			d.AddError(diagnostic.KindMissingRequired, "missing required field", entity, name)
		}
	}

	for _, fd := range table {
		v, ok := vals[fd.Name]
		if !ok || missing[fd.Name] {
			continue
		}

		if n, ok := r.MinLength[fd.Name]; ok && length(v) < n {
			d.AddError(diagnostic.KindConstraintViolation,
				fmt.Sprintf("must contain at least %d item(s)", n), entity, fd.Name)
		}

		if b, ok := r.Range[fd.Name]; ok {
			if f, ok := v.(*float64); ok && f != nil && !common.IsInRange(b.Min, *f, b.Max) {
				d.AddError(diagnostic.KindConstraintViolation,
					fmt.Sprintf("must be between %g and %g", b.Min, b.Max), entity, fd.Name)
			}
		}

		if k, ok := r.MinKey[fd.Name]; ok {
			if seasons, ok := v.(map[int]string); ok {
				for _, season := range sortedKeys(seasons) {
					if season < k {
						d.AddError(diagnostic.KindConstraintViolation,
							fmt.Sprintf("season %d: season number must be at least %d", season, k), entity, fd.Name)
					}
				}
			}
		}
	}
}

func length(v any) int {
	switch l := v.(type) {
	case []string:
		return len(l)
	case []any:
		return len(l)
	case map[int]string:
		return len(l)
	default:
		return 0
	}
}
