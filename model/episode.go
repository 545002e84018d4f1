package model

import "cloud.google.com/go/civil"

// Episode is a single episode of a show. Directors and writers only carry a
// name in this context.
type Episode struct {
	Title         []string
	ContentRating *string
	Aired         *civil.Date
	Summary       *string
	Directors     []Person
	Writers       []Person
	Rating        *float64
}

// Equal reports whether both episodes hold the same field values.
func (e Episode) Equal(other Episode) bool {
	return equalStrings(e.Title, other.Title) &&
		equalPtr(e.ContentRating, other.ContentRating) &&
		equalPtr(e.Aired, other.Aired) &&
		equalPtr(e.Summary, other.Summary) &&
		equalPersons(e.Directors, other.Directors) &&
		equalPersons(e.Writers, other.Writers) &&
		equalPtr(e.Rating, other.Rating)
}
