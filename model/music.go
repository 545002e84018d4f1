package model

import "cloud.google.com/go/civil"

// Artist is a music artist.
type Artist struct {
	Summary     *string
	Similar     []string
	Genres      []string
	Collections []string
}

// Equal reports whether both artists hold the same field values.
func (a Artist) Equal(other Artist) bool {
	return equalPtr(a.Summary, other.Summary) &&
		equalStrings(a.Similar, other.Similar) &&
		equalStrings(a.Genres, other.Genres) &&
		equalStrings(a.Collections, other.Collections)
}

// Album is a music album.
type Album struct {
	Summary     *string
	Aired       *civil.Date
	Genres      []string
	Collections []string
}

// Equal reports whether both albums hold the same field values.
func (a Album) Equal(other Album) bool {
	return equalPtr(a.Summary, other.Summary) &&
		equalPtr(a.Aired, other.Aired) &&
		equalStrings(a.Genres, other.Genres) &&
		equalStrings(a.Collections, other.Collections)
}
