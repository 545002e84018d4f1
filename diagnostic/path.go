package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a field path: a field name, optionally followed by
// a list index.
type Segment struct {
	Name     string
	Index    int
	HasIndex bool
}

// Join appends name to parent with a dot.
func Join(parent, name string) string {
	switch {
	case parent == "":
		return name
	case name == "":
		return parent
	default:
		return parent + "." + name
	}
}

// Index appends a list index to parent, e.g. "actors[0]".
func Index(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// ParsePath parses a field path such as "title", "genres[2]" or
// "actors[0].name" into its segments.
func ParsePath(path string) ([]Segment, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	var segments []Segment

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		seg := Segment{Name: part}

		if open := strings.IndexByte(part, '['); open >= 0 {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("invalid path %q: unterminated index in %q", path, part)
			}

			idx, err := strconv.Atoi(part[open+1 : len(part)-1])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("invalid path %q: bad index in %q", path, part)
			}

			seg.Name = part[:open]
			seg.Index = idx
			seg.HasIndex = true

			if seg.Name == "" {
				return nil, fmt.Errorf("invalid path %q: index without field name", path)
			}
		}

		if !isValidName(seg.Name) {
			return nil, fmt.Errorf("invalid path %q: invalid field name %q", path, seg.Name)
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

// Root returns the top-level field name of a path. Paths that do not parse
// are returned unchanged.
func Root(path string) string {
	segments, err := ParsePath(path)
	if err != nil {
		return path
	}

	return segments[0].Name
}

// isValidName checks for a wire field name: letters, digits and underscores,
// not starting with a digit.
func isValidName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
