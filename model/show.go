package model

import "cloud.google.com/go/civil"

// Show is a TV series.
type Show struct {
	Title         *string
	SortTitle     *string
	OriginalTitle *string
	ContentRating *string
	Tagline       []string
	Studio        []string
	Aired         *civil.Date
	Summary       *string
	Rating        *float64
	Genres        []string
	Collections   []string
	Actors        []Actor
	// SeasonSummary maps a season number to its summary.
	SeasonSummary map[int]string
}

// Equal reports whether both shows hold the same field values.
func (s Show) Equal(other Show) bool {
	return equalPtr(s.Title, other.Title) &&
		equalPtr(s.SortTitle, other.SortTitle) &&
		equalPtr(s.OriginalTitle, other.OriginalTitle) &&
		equalPtr(s.ContentRating, other.ContentRating) &&
		equalStrings(s.Tagline, other.Tagline) &&
		equalStrings(s.Studio, other.Studio) &&
		equalPtr(s.Aired, other.Aired) &&
		equalPtr(s.Summary, other.Summary) &&
		equalPtr(s.Rating, other.Rating) &&
		equalStrings(s.Genres, other.Genres) &&
		equalStrings(s.Collections, other.Collections) &&
		equalActors(s.Actors, other.Actors) &&
		equalSeasons(s.SeasonSummary, other.SeasonSummary)
}
