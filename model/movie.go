package model

import "cloud.google.com/go/civil"

// Movie is a feature film.
type Movie struct {
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
	Writers       []Person
	Directors     []Person
}

// Equal reports whether both movies hold the same field values.
func (m Movie) Equal(other Movie) bool {
	return equalPtr(m.Title, other.Title) &&
		equalPtr(m.SortTitle, other.SortTitle) &&
		equalPtr(m.OriginalTitle, other.OriginalTitle) &&
		equalPtr(m.ContentRating, other.ContentRating) &&
		equalStrings(m.Tagline, other.Tagline) &&
		equalStrings(m.Studio, other.Studio) &&
		equalPtr(m.Aired, other.Aired) &&
		equalPtr(m.Summary, other.Summary) &&
		equalPtr(m.Rating, other.Rating) &&
		equalStrings(m.Genres, other.Genres) &&
		equalStrings(m.Collections, other.Collections) &&
		equalActors(m.Actors, other.Actors) &&
		equalPersons(m.Writers, other.Writers) &&
		equalPersons(m.Directors, other.Directors)
}
