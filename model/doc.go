// Package model holds the media metadata records exchanged with the schema
// package: people, shows, episodes, movies, artists and albums.
//
// Records are plain values. Optional scalars are pointers where nil means
// absent; list fields are slices that a schema load always fills with a
// non-nil (possibly empty) value. Records are never edited in place by this
// module: a change produces a new record.
package model
