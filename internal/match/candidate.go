package match

import (
	"sort"
)

// Candidate is a known field name scored against an unrecognized key.
type Candidate struct {
	Name string

	// Normalized Levenshtein similarity (0-1)
	Score float64

	// Metadata for debugging/explanation
	NormalizedKey  string
	NormalizedName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against key.
// Returns candidates sorted by score (descending).
func RankCandidates(key string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	keyNorm := NormalizeIdent(key)

	for _, name := range names {
		nameNorm := NormalizeIdent(name)

		candidates = append(candidates, Candidate{
			Name:           name,
			Score:          LevenshteinNormalized(keyNorm, nameNorm),
			NormalizedKey:  keyNorm,
			NormalizedName: nameNorm,
		})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to DefaultMaxSuggestions known names that look like key.
func Suggest(key string, names []string) []string {
	ranked := RankCandidates(key, names).
		AboveThreshold(DefaultMinScore).
		Top(DefaultMaxSuggestions)

	if len(ranked) == 0 {
		return nil
	}

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Name
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	// Higher score comes first
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}
	// Tie-breaker: alphabetical by name
	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.5
	// DefaultMaxSuggestions caps the number of suggestions per key.
	DefaultMaxSuggestions = 3
)
