// Package diagnostic provides the structured violations reported by schema
// loads.
//
// Key capabilities:
//   - Every violation of a load collected in one pass (no fail-fast)
//   - Violation kinds: type mismatch, missing required, constraint, nested
//   - Field paths locating nested list elements, e.g. "actors[0].role"
//   - Informational notes (ignored unknown keys) with suggestions
package diagnostic
