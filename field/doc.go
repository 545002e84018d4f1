// Package field declares the static field descriptor tables that replace
// runtime type inspection: every entity lists its wire field names and their
// kinds once, and both normalization and conversion consult that table.
package field
