// Package tagimport drafts Album and Artist documents from the tags of audio
// files. Drafts are lenient mappings: they carry what the tags know and are
// meant to be completed by hand before publishing.
package tagimport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/dhowden/tag"

	"github.com/aliceplex/schema/internal/common"
	"github.com/aliceplex/schema/schema"
)

var audioExts = map[string]struct{}{
	".mp3":  {},
	".m4a":  {},
	".m4b":  {},
	".flac": {},
	".ogg":  {},
	".dsf":  {},
}

// IsAudio reports whether path has a supported audio extension.
func IsAudio(path string) bool {
	_, ok := audioExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ReadDir reads the tags of every audio file directly inside dir, in file
// name order. Files without tags are skipped.
func ReadDir(dir string) ([]tag.Metadata, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var metas []tag.Metadata

	for _, entry := range entries {
		if entry.IsDir() || !IsAudio(entry.Name()) {
			continue
		}

		meta, err := readFile(filepath.Join(dir, entry.Name()))
		if errors.Is(err, tag.ErrNoTagsFound) {
			continue
		}

		if err != nil {
			return nil, err
		}

		metas = append(metas, meta)
	}

	return metas, nil
}

func readFile(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags of %s: %w", path, err)
	}

	return meta, nil
}

// Album drafts an album mapping from the tags of its tracks.
func Album(metas []tag.Metadata) schema.Mapping {
	m := schema.Mapping{
		"genres": toAny(genres(metas)),
	}

	if summary, ok := common.First(comments(metas)); ok {
		m["summary"] = summary
	}

	if year, ok := earliestYear(metas); ok {
		m["aired"] = fmt.Sprintf("%04d-01-01", year)
	}

	return m
}

// Artist drafts an artist mapping from the tags of the artist's tracks.
// Other performers credited on the tracks are listed as similar artists.
func Artist(metas []tag.Metadata) schema.Mapping {
	return schema.Mapping{
		"genres":  toAny(genres(metas)),
		"similar": toAny(featured(metas)),
	}
}

func genres(metas []tag.Metadata) []string {
	var out []string

	for _, meta := range metas {
		for _, g := range splitValues(meta.Genre()) {
			if !isNumericGenre(g) {
				out = append(out, g)
			}
		}
	}

	return common.Unique(out)
}

func comments(metas []tag.Metadata) []string {
	var out []string

	for _, meta := range metas {
		if c := strings.TrimSpace(meta.Comment()); c != "" {
			out = append(out, c)
		}
	}

	return out
}

// featured returns track artists that differ from the album artist.
func featured(metas []tag.Metadata) []string {
	var out []string

	for _, meta := range metas {
		albumArtist := strings.TrimSpace(meta.AlbumArtist())
		if albumArtist == "" {
			continue
		}

		for _, a := range splitValues(meta.Artist()) {
			if !strings.EqualFold(a, albumArtist) {
				out = append(out, a)
			}
		}
	}

	return common.Unique(out)
}

func earliestYear(metas []tag.Metadata) (int, bool) {
	var years []int

	for _, meta := range metas {
		if y := meta.Year(); y > 0 {
			years = append(years, y)
		}
	}

	if len(years) == 0 {
		return 0, false
	}

	return slices.Min(years), true
}

// splitValues splits multi-valued tag text. ID3v2.4 separates values with
// NUL; other taggers commonly use ";".
func splitValues(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == 0
	})

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// isNumericGenre reports ID3v1 genre references such as "(17)" that the tag
// reader could not resolve.
func isNumericGenre(s string) bool {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	_, err := strconv.Atoi(s)

	return err == nil
}

func toAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}

	return out
}
