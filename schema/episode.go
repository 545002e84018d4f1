package schema

import (
	"github.com/aliceplex/schema/field"
	"github.com/aliceplex/schema/model"
)

var episodeFields = field.Table{
	{Name: "title", Kind: field.KindStringList},
	{Name: "aired", Kind: field.KindDate},
	{Name: "content_rating", Kind: field.KindString},
	{Name: "summary", Kind: field.KindString},
	{Name: "directors", Kind: field.KindNameList},
	{Name: "writers", Kind: field.KindNameList},
	{Name: "rating", Kind: field.KindFloat},
}

var (
	// Episode converts model.Episode. Directors and writers are name lists.
	Episode = newSchema("episode", episodeFields,
		map[string]elementCodec{
			"directors": names{person: Person},
			"writers":   names{person: Person},
		},
		buildEpisode, decomposeEpisode)

	// EpisodeStrict is the publishing gate for episodes. The air date stays
	// optional.
	EpisodeStrict = Episode.strict(Rules{
		Required:  []string{"title", "content_rating", "summary", "directors", "writers"},
		MinLength: map[string]int{"title": 1, "directors": 1, "writers": 1},
		Range:     map[string]Bounds{"rating": ratingBounds},
	}, map[string]elementCodec{
		"directors": names{person: PersonStrict},
		"writers":   names{person: PersonStrict},
	})
)

func buildEpisode(v values) model.Episode {
	return model.Episode{
		Title:         v.strs("title"),
		ContentRating: v.str("content_rating"),
		Aired:         v.date("aired"),
		Summary:       v.str("summary"),
		Directors:     elems[model.Person](v, "directors"),
		Writers:       elems[model.Person](v, "writers"),
		Rating:        v.float("rating"),
	}
}

func decomposeEpisode(e model.Episode) values {
	return values{
		"title":          e.Title,
		"aired":          e.Aired,
		"content_rating": e.ContentRating,
		"summary":        e.Summary,
		"directors":      anys(e.Directors),
		"writers":        anys(e.Writers),
		"rating":         e.Rating,
	}
}
