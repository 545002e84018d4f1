// Package format cleans free-form prose such as summaries and taglines:
// whitespace is trimmed and collapsed, and ASCII punctuation is replaced by
// its typographic CJK counterpart.
//
// The conversion engine never calls this package. Callers apply it to text
// fields before loading or after dumping.
package format
