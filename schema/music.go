package schema

import (
	"github.com/aliceplex/schema/field"
	"github.com/aliceplex/schema/model"
)

var artistFields = field.Table{
	{Name: "summary", Kind: field.KindString},
	{Name: "similar", Kind: field.KindStringList},
	{Name: "genres", Kind: field.KindStringList},
	{Name: "collections", Kind: field.KindStringList},
}

var albumFields = field.Table{
	{Name: "summary", Kind: field.KindString},
	{Name: "aired", Kind: field.KindDate},
	{Name: "genres", Kind: field.KindStringList},
	{Name: "collections", Kind: field.KindStringList},
}

var (
	// Artist converts model.Artist.
	Artist = newSchema("artist", artistFields, nil, buildArtist, decomposeArtist)
	// ArtistStrict is the publishing gate for artists.
	ArtistStrict = Artist.strict(Rules{
		Required:  []string{"summary", "similar", "genres", "collections"},
		MinLength: map[string]int{"similar": 1, "genres": 1, "collections": 1},
	}, nil)

	// Album converts model.Album.
	Album = newSchema("album", albumFields, nil, buildAlbum, decomposeAlbum)
	// AlbumStrict is the publishing gate for albums.
	AlbumStrict = Album.strict(Rules{
		Required:  []string{"summary", "aired", "genres", "collections"},
		MinLength: map[string]int{"genres": 1, "collections": 1},
	}, nil)
)

func buildArtist(v values) model.Artist {
	return model.Artist{
		Summary:     v.str("summary"),
		Similar:     v.strs("similar"),
		Genres:      v.strs("genres"),
		Collections: v.strs("collections"),
	}
}

func decomposeArtist(a model.Artist) values {
	return values{
		"summary":     a.Summary,
		"similar":     a.Similar,
		"genres":      a.Genres,
		"collections": a.Collections,
	}
}

func buildAlbum(v values) model.Album {
	return model.Album{
		Summary:     v.str("summary"),
		Aired:       v.date("aired"),
		Genres:      v.strs("genres"),
		Collections: v.strs("collections"),
	}
}

func decomposeAlbum(a model.Album) values {
	return values{
		"summary":     a.Summary,
		"aired":       a.Aired,
		"genres":      a.Genres,
		"collections": a.Collections,
	}
}
