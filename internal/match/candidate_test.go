package match

import (
	"sort"
	"testing"
)

var showFields = []string{
	"title", "sort_title", "original_title", "content_rating", "tagline", "studio",
	"aired", "summary", "rating", "genres", "collections", "actors", "season_summary",
}

func TestRankCandidates(t *testing.T) {
	candidates := RankCandidates("SortTitle", showFields)

	if len(candidates) != len(showFields) {
		t.Fatalf("Expected %d candidates, got %d", len(showFields), len(candidates))
	}

	// Best match should be "sort_title" (same name after normalization)
	if candidates[0].Name != "sort_title" {
		t.Errorf("Expected best match to be 'sort_title', got '%s'", candidates[0].Name)
	}

	if candidates[0].Score != 1.0 {
		t.Errorf("Expected exact score for normalized match, got %f", candidates[0].Score)
	}

	if candidates[0].NormalizedKey != "sorttitle" || candidates[0].NormalizedName != "sorttitle" {
		t.Errorf("Unexpected normalized names: %q, %q", candidates[0].NormalizedKey, candidates[0].NormalizedName)
	}
}

func TestCandidateList_Sorting(t *testing.T) {
	candidates := CandidateList{
		{Name: "genres", Score: 0.5},
		{Name: "title", Score: 0.9},
		{Name: "aired", Score: 0.5},
	}

	ranked := RankCandidates("x", nil)
	if len(ranked) != 0 {
		t.Errorf("Expected no candidates for empty names, got %d", len(ranked))
	}

	sort.Sort(candidates)

	want := []string{"title", "aired", "genres"}
	for i, name := range want {
		if candidates[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, candidates[i].Name)
		}
	}
}

func TestCandidateList_Helpers(t *testing.T) {
	candidates := CandidateList{
		{Name: "title", Score: 0.9},
		{Name: "tagline", Score: 0.6},
		{Name: "aired", Score: 0.2},
	}

	if got := candidates.Top(2); len(got) != 2 {
		t.Errorf("Top(2) returned %d candidates", len(got))
	}

	if got := candidates.Top(10); len(got) != 3 {
		t.Errorf("Top(10) returned %d candidates", len(got))
	}

	if got := candidates.AboveThreshold(0.6); len(got) != 2 {
		t.Errorf("AboveThreshold(0.6) returned %d candidates", len(got))
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		key      string
		expected []string
	}{
		{"titel", []string{"title"}},
		{"genre", []string{"genres"}},
		{"seasonSummary", []string{"season_summary"}},
		{"zzzzzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := Suggest(tt.key, showFields)
			if len(result) == 0 || len(tt.expected) == 0 {
				if len(result) != len(tt.expected) {
					t.Fatalf("Suggest(%q) = %v, want %v", tt.key, result, tt.expected)
				}

				return
			}

			if result[0] != tt.expected[0] {
				t.Errorf("Suggest(%q)[0] = %q, want %q", tt.key, result[0], tt.expected[0])
			}
		})
	}
}
