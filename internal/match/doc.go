// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking used to suggest known field names for unrecognized keys.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known field names against a key
//   - Suggest: returns the closest known field names
package match
