// Package schema converts between entity records of package model and plain
// key-value mappings.
//
// Every entity has two converters. The lenient one (Person, Actor, Show,
// Episode, Movie, Artist, Album) only checks that values have the declared
// kind. The strict one (PersonStrict ... AlbumStrict) layers presence,
// list length and numeric range rules on top of the same field table and is
// used to gate data before it is published.
//
// Loading a mapping normalizes a copy of it (see package normalize), checks
// every field, and either returns a fully populated record or a
// *ValidationError listing every violation. Dumping a record never fails.
//
// Converters are immutable and safe for concurrent use.
package schema
