package model

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestPersonEqual(t *testing.T) {
	assert.True(t, Person{}.Equal(Person{}))
	assert.True(t, Person{Name: Ptr("name")}.Equal(Person{Name: Ptr("name")}))
	assert.False(t, Person{Name: Ptr("name")}.Equal(Person{}))
	assert.False(t, Person{Name: Ptr("a")}.Equal(Person{Name: Ptr("b")}))
}

func TestActorPerson(t *testing.T) {
	a := Actor{Name: Ptr("name"), Photo: Ptr("photo"), Role: Ptr("role")}

	assert.Equal(t, Person{Name: Ptr("name"), Photo: Ptr("photo")}, a.Person())
}

func TestShowEqualTreatsNilAndEmptyListsAlike(t *testing.T) {
	a := Show{}
	b := Show{
		Tagline:       []string{},
		Studio:        []string{},
		Genres:        []string{},
		Collections:   []string{},
		Actors:        []Actor{},
		SeasonSummary: map[int]string{},
	}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestShowEqual(t *testing.T) {
	aired := civil.Date{Year: 2018, Month: 1, Day: 1}
	base := Show{
		Title:         Ptr("title"),
		Aired:         &aired,
		Rating:        Ptr(1.0),
		Genres:        []string{"genre"},
		Actors:        []Actor{{Name: Ptr("name"), Role: Ptr("role")}},
		SeasonSummary: map[int]string{1: "season"},
	}

	same := base
	same.Aired = &civil.Date{Year: 2018, Month: 1, Day: 1}
	assert.True(t, base.Equal(same))

	other := base
	other.Actors = []Actor{{Name: Ptr("name")}}
	assert.False(t, base.Equal(other))

	other = base
	other.SeasonSummary = map[int]string{2: "season"}
	assert.False(t, base.Equal(other))
}

func TestEpisodeAndMovieEqual(t *testing.T) {
	e := Episode{Title: []string{"title"}, Directors: []Person{{Name: Ptr("d")}}}
	assert.True(t, e.Equal(Episode{Title: []string{"title"}, Directors: []Person{{Name: Ptr("d")}}}))
	assert.False(t, e.Equal(Episode{Title: []string{"title"}}))

	m := Movie{Writers: []Person{{Name: Ptr("w")}}}
	assert.True(t, m.Equal(Movie{Writers: []Person{{Name: Ptr("w")}}}))
	assert.False(t, m.Equal(Movie{Writers: []Person{{Name: Ptr("x")}}}))
}

func TestMusicEqual(t *testing.T) {
	assert.True(t, Artist{Similar: []string{"a"}}.Equal(Artist{Similar: []string{"a"}}))
	assert.False(t, Artist{Similar: []string{"a"}}.Equal(Artist{}))
	assert.True(t, Album{}.Equal(Album{Genres: []string{}}))
	assert.False(t, Album{Summary: Ptr("s")}.Equal(Album{}))
}
