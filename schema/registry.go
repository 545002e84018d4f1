package schema

import (
	"fmt"
	"slices"

	"github.com/aliceplex/schema/diagnostic"
	"github.com/aliceplex/schema/field"
)

// Converter is the record-agnostic view of a schema used by tools that pick
// the entity at run time.
type Converter interface {
	Entity() string
	Strict() bool
	Fields() field.Table
	Validate(m Mapping) *diagnostic.Diagnostics
	Canonicalize(m Mapping) (Mapping, error)
}

type tiers struct {
	lenient, strict Converter
}

var registry = map[string]tiers{
	Person.Entity():  {Person, PersonStrict},
	Actor.Entity():   {Actor, ActorStrict},
	Show.Entity():    {Show, ShowStrict},
	Episode.Entity(): {Episode, EpisodeStrict},
	Movie.Entity():   {Movie, MovieStrict},
	Artist.Entity():  {Artist, ArtistStrict},
	Album.Entity():   {Album, AlbumStrict},
}

// Lookup returns the converter of the named entity and tier.
func Lookup(entity string, strict bool) (Converter, error) {
	t, ok := registry[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}

	if strict {
		return t.strict, nil
	}

	return t.lenient, nil
}

// Entities returns the sorted names of every entity.
func Entities() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}

	slices.Sort(out)

	return out
}
