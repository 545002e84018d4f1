package codec

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliceplex/schema/model"
	"github.com/aliceplex/schema/schema"
)

const showYAML = `
title: Title
genres:
  - Drama
  - ""
aired: 2018-01-01
rating: 8.5
actors:
  - name: Name
    role: Role
season_summary:
  1: Season 1 Summary
  2: Season 2 Summary
`

func TestParse_YAML(t *testing.T) {
	m, err := Parse([]byte(showYAML))
	require.NoError(t, err)

	show, err := schema.Show.Load(m)
	require.NoError(t, err)

	assert.Equal(t, "Title", *show.Title)
	assert.Equal(t, []string{"Drama"}, show.Genres)
	assert.Equal(t, "2018-01-01", show.Aired.String())
	assert.InDelta(t, 8.5, *show.Rating, 1e-9)
	assert.Equal(t, map[int]string{1: "Season 1 Summary", 2: "Season 2 Summary"}, show.SeasonSummary)
	require.Len(t, show.Actors, 1)
	assert.Equal(t, "Role", *show.Actors[0].Role)
}

func TestParse_JSON(t *testing.T) {
	m, err := Parse([]byte(`{"title": ["Pilot"], "directors": ["A", {"name": "B"}], "rating": 7}`))
	require.NoError(t, err)

	episode, err := schema.Episode.Load(m)
	require.NoError(t, err)

	assert.Equal(t, []string{"Pilot"}, episode.Title)
	assert.True(t, episode.Directors[1].Equal(model.Person{Name: model.Ptr("B")}))
	assert.InDelta(t, 7.0, *episode.Rating, 1e-9)
}

func TestParse_Empty(t *testing.T) {
	m, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, schema.Mapping{}, m)

	m, err = Parse([]byte("# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestParse_NotMapping(t *testing.T) {
	for _, doc := range []string{"- a\n- b\n", "just a string", "42"} {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrNotMapping, doc)
	}

	_, err := Parse([]byte("title: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotMapping)
}

func TestParse_NonStringKeys(t *testing.T) {
	m, err := Parse([]byte("1: one\ntitle: t\n"))
	require.NoError(t, err)
	assert.Equal(t, "one", m["1"])
	assert.Equal(t, "t", m["title"])
}

func TestParseAll(t *testing.T) {
	docs, err := ParseAll([]byte("title: [a]\n---\ntitle: [b]\n"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, []any{"b"}, docs[1]["title"])

	docs, err = ParseAll(nil)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = ParseAll([]byte("title: a\n---\n- b\n"))
	assert.ErrorIs(t, err, ErrNotMapping)
	assert.Contains(t, err.Error(), "document 1")
}

func TestMarshal_FieldOrder(t *testing.T) {
	m := schema.Mapping{
		"zz_extra":    1,
		"collections": []any{},
		"genres":      []any{"Rock"},
		"aired":       "2018-01-01",
		"summary":     "s",
		"aa_extra":    true,
	}

	data, err := Marshal(m, schema.Album.Fields())
	require.NoError(t, err)

	out := string(data)
	order := []string{"summary:", "aired:", "genres:", "collections:", "aa_extra:", "zz_extra:"}

	for i := 1; i < len(order); i++ {
		assert.Less(t, strings.Index(out, order[i-1]), strings.Index(out, order[i]), out)
	}

	back, err := Parse(data)
	require.NoError(t, err)

	album, err := schema.Album.Load(back)
	require.NoError(t, err)
	assert.Equal(t, "2018-01-01", album.Aired.String())
	assert.Equal(t, []string{"Rock"}, album.Genres)
}

func TestMarshal_NullsAndSeasons(t *testing.T) {
	m := schema.Show.Dump(model.Show{SeasonSummary: map[int]string{2: "b", 1: "a"}})

	data, err := Marshal(m, schema.Show.Fields())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "title: null\n")
	assert.Contains(t, out, "genres: []\n")
	assert.Less(t, strings.Index(out, "1: a"), strings.Index(out, "2: b"))

	back, err := Parse(data)
	require.NoError(t, err)

	show, err := schema.Show.Load(back)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "a", 2: "b"}, show.SeasonSummary)
}

func TestWriteFileAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episodes.yaml")

	docs := []schema.Mapping{
		schema.Episode.Dump(model.Episode{Title: []string{"One"}}),
		schema.Episode.Dump(model.Episode{Title: []string{"Two"}}),
	}

	require.NoError(t, WriteFile(docs, schema.Episode.Fields(), path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	for i, want := range []string{"One", "Two"} {
		episode, err := schema.Episode.Load(loaded[i])
		require.NoError(t, err)
		assert.Equal(t, []string{want}, episode.Title)
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalJSON(t *testing.T) {
	show := model.Show{
		Title:         model.Ptr("Tom & Jerry <3"),
		Genres:        []string{"Comedy"},
		Actors:        []model.Actor{{Name: model.Ptr("n"), Role: model.Ptr("r")}},
		SeasonSummary: map[int]string{10: "c", 2: "b", 1: "a"},
	}
	m := schema.Show.Dump(show)

	data, err := MarshalJSON(m, schema.Show.Fields())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw), string(data))

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "{\n  \"title\": \"Tom & Jerry <3\",\n"), out)
	assert.True(t, strings.HasSuffix(out, "}\n"), out)
	assert.Less(t, strings.Index(out, `"title"`), strings.Index(out, `"sort_title"`))
	assert.Less(t, strings.Index(out, `"genres"`), strings.Index(out, `"season_summary"`))
	assert.Less(t, strings.Index(out, `"1": "a"`), strings.Index(out, `"2": "b"`))
	assert.Less(t, strings.Index(out, `"2": "b"`), strings.Index(out, `"10": "c"`))

	back, err := Parse(data)
	require.NoError(t, err)

	loaded, err := schema.Show.Load(back)
	require.NoError(t, err)
	assert.True(t, show.Equal(loaded))
}

func TestWriteFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "album.json")
	doc := schema.Album.Dump(model.Album{Summary: model.Ptr("s"), Genres: []string{"Rock"}})

	require.NoError(t, WriteFile([]schema.Mapping{doc}, schema.Album.Fields(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data), string(data))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "s", loaded[0]["summary"])

	err = WriteFile([]schema.Mapping{doc, doc}, schema.Album.Fields(), path)
	require.ErrorIs(t, err, ErrDocumentCount)

	// The file is left as it was.
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, after)
}
