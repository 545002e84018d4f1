package schema

import (
	"github.com/aliceplex/schema/field"
	"github.com/aliceplex/schema/model"
)

var movieFields = field.Table{
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
	{Name: "writers", Kind: field.KindNameList},
	{Name: "directors", Kind: field.KindNameList},
}

var (
	// Movie converts model.Movie.
	Movie = newSchema("movie", movieFields,
		map[string]elementCodec{
			"actors":    Actor,
			"writers":   names{person: Person},
			"directors": names{person: Person},
		},
		buildMovie, decomposeMovie)

	// MovieStrict is the publishing gate for movies. A rating is optional
	// but must be in range when set.
	MovieStrict = Movie.strict(Rules{
		Required: []string{
			"title", "sort_title", "original_title", "content_rating", "tagline", "studio",
			"aired", "summary", "genres", "collections", "actors", "writers", "directors",
		},
		MinLength: map[string]int{
			"tagline": 1, "studio": 1, "genres": 1, "collections": 1,
			"actors": 1, "writers": 1, "directors": 1,
		},
		Range: map[string]Bounds{"rating": ratingBounds},
	}, map[string]elementCodec{
		"actors":    ActorStrict,
		"writers":   names{person: PersonStrict},
		"directors": names{person: PersonStrict},
	})
)

func buildMovie(v values) model.Movie {
	return model.Movie{
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
		Writers:       elems[model.Person](v, "writers"),
		Directors:     elems[model.Person](v, "directors"),
	}
}

func decomposeMovie(m model.Movie) values {
	return values{
		"title":          m.Title,
		"sort_title":     m.SortTitle,
		"original_title": m.OriginalTitle,
		"content_rating": m.ContentRating,
		"tagline":        m.Tagline,
		"studio":         m.Studio,
		"aired":          m.Aired,
		"summary":        m.Summary,
		"rating":         m.Rating,
		"genres":         m.Genres,
		"collections":    m.Collections,
		"actors":         anys(m.Actors),
		"writers":        anys(m.Writers),
		"directors":      anys(m.Directors),
	}
}
