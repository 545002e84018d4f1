package schema

import (
	"github.com/aliceplex/schema/field"
	"github.com/aliceplex/schema/model"
)

var showFields = field.Table{
	{Name: "title", Kind: field.KindString},
	{Name: "sort_title", Kind: field.KindString},
	{Name: "original_title", Kind: field.KindString},
	{Name: "content_rating", Kind: field.KindString},
	{Name: "tagline", Kind: field.KindStringList},
	{Name: "studio", Kind: field.KindStringList},
	{Name: "aired", Kind: field.KindDate},
	{Name: "summary", Kind: field.KindString},
	{Name: "rating", Kind: field.KindFloat},
	{Name: "genres", Kind: field.KindStringList},
	{Name: "collections", Kind: field.KindStringList},
	{Name: "actors", Kind: field.KindNestedList},
	{Name: "season_summary", Kind: field.KindSeasonMap},
}

var (
	// Show converts model.Show.
	Show = newSchema("show", showFields,
		map[string]elementCodec{"actors": Actor},
		buildShow, decomposeShow)

	// ShowStrict is the publishing gate for shows.
	ShowStrict = Show.strict(Rules{
		Required: []string{
			"title", "sort_title", "original_title", "content_rating", "tagline", "studio",
			"aired", "summary", "genres", "collections", "actors", "season_summary",
		},
		MinLength: map[string]int{
			"tagline": 1, "studio": 1, "genres": 1, "collections": 1, "actors": 1,
		},
		Range:  map[string]Bounds{"rating": ratingBounds},
		MinKey: map[string]int{"season_summary": 1},
	}, map[string]elementCodec{"actors": ActorStrict})
)

func buildShow(v values) model.Show {
	return model.Show{
		Title:         v.str("title"),
		SortTitle:     v.str("sort_title"),
		OriginalTitle: v.str("original_title"),
		ContentRating: v.str("content_rating"),
		Tagline:       v.strs("tagline"),
		Studio:        v.strs("studio"),
		Aired:         v.date("aired"),
		Summary:       v.str("summary"),
		Rating:        v.float("rating"),
		Genres:        v.strs("genres"),
		Collections:   v.strs("collections"),
		Actors:        elems[model.Actor](v, "actors"),
		SeasonSummary: v.seasons("season_summary"),
	}
}

func decomposeShow(s model.Show) values {
	return values{
		"title":          s.Title,
		"sort_title":     s.SortTitle,
		"original_title": s.OriginalTitle,
		"content_rating": s.ContentRating,
		"tagline":        s.Tagline,
		"studio":         s.Studio,
		"aired":          s.Aired,
		"summary":        s.Summary,
		"rating":         s.Rating,
		"genres":         s.Genres,
		"collections":    s.Collections,
		"actors":         anys(s.Actors),
		"season_summary": s.SeasonSummary,
	}
}
