package format

import (
	"maps"
	"regexp"
	"strings"
	"unicode"
)

var (
	trailingSpace     = regexp.MustCompile(`(?m)[^\S\n]+$`)
	leadingSpace      = regexp.MustCompile(`(?m)^[^\S\n]+`)
	continuousNewline = regexp.MustCompile(`\n{3,}`)
	continuousSpace   = regexp.MustCompile(`[^\S\n]+`)
	dots              = regexp.MustCompile(`\.{2,}`)
	endingSpace       = regexp.MustCompile(`([?!。！？])\s+`)

	arrowBrackets = strings.NewReplacer("<", "〈", ">", "〉")
)

// RemoveTrailingSpace removes whitespace at the end of every line and of the text.
func RemoveTrailingSpace(s string) string {
	return strings.TrimRightFunc(trailingSpace.ReplaceAllString(s, ""), unicode.IsSpace)
}

// RemoveLeadingSpace removes spaces at the start of every line.
func RemoveLeadingSpace(s string) string {
	return leadingSpace.ReplaceAllString(s, "")
}

// ReplaceContinuousNewlines keeps at most one blank line between paragraphs.
func ReplaceContinuousNewlines(s string) string {
	return continuousNewline.ReplaceAllString(s, "\n\n")
}

// ReplaceContinuousSpace collapses runs of spaces and tabs into one space.
func ReplaceContinuousSpace(s string) string {
	return continuousSpace.ReplaceAllString(s, " ")
}

// ReplaceTilde replaces ~ with the wave dash 〜.
func ReplaceTilde(s string) string {
	return strings.ReplaceAll(s, "~", "〜")
}

// ReplaceDot turns runs of two or more dots into ellipses, one per started
// group of three dots.
func ReplaceDot(s string) string {
	return dots.ReplaceAllStringFunc(s, func(run string) string {
		return strings.Repeat("…", (len(run)+2)/3)
	})
}

// ReplaceFullStop replaces the fullwidth full stop ． with the middle dot ・.
func ReplaceFullStop(s string) string {
	return strings.ReplaceAll(s, "．", "・")
}

// ReplaceArrowBrackets replaces < and > with 〈 and 〉.
func ReplaceArrowBrackets(s string) string {
	return arrowBrackets.Replace(s)
}

// ReplaceEndingSpace removes whitespace after sentence-ending punctuation.
func ReplaceEndingSpace(s string) string {
	return endingSpace.ReplaceAllString(s, "$1")
}

// RemoveSingleLinebreak removes line breaks that do not separate paragraphs.
func RemoveSingleLinebreak(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			prev := i > 0 && s[i-1] == '\n'
			next := i+1 < len(s) && s[i+1] == '\n'

			if !prev && !next {
				continue
			}
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

// Normalize runs every transform in order.
func Normalize(s string) string {
	for _, f := range pipeline {
		s = f(s)
	}

	return s
}

var pipeline = []func(string) string{
	RemoveTrailingSpace,
	RemoveLeadingSpace,
	ReplaceContinuousNewlines,
	ReplaceContinuousSpace,
	ReplaceTilde,
	ReplaceDot,
	ReplaceFullStop,
	ReplaceArrowBrackets,
	ReplaceEndingSpace,
	RemoveSingleLinebreak,
}

// Fields returns a copy of m whose named fields are normalized. String
// values and the string elements of lists are cleaned; other values are kept.
func Fields(m map[string]any, names ...string) map[string]any {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[string]any)
	}

	for _, name := range names {
		switch v := out[name].(type) {
		case string:
			out[name] = Normalize(v)
		case []any:
			l := make([]any, len(v))
			for i, e := range v {
				if s, ok := e.(string); ok {
					l[i] = Normalize(s)
				} else {
					l[i] = e
				}
			}

			out[name] = l
		case []string:
			l := make([]string, len(v))
			for i, e := range v {
				l[i] = Normalize(e)
			}

			out[name] = l
		}
	}

	return out
}
