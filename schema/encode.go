package schema

import (
	"maps"

	"cloud.google.com/go/civil"

	"github.com/aliceplex/schema/field"
)

// encodeValue turns a decoded value into its wire form. Nested list
// elements go through codec.
func encodeValue(kind field.KindEnum, v any, codec elementCodec) any {
	switch kind {
	case field.KindString:
		if p, _ := v.(*string); p != nil {
			return *p
		}
	case field.KindStringList:
		l, _ := v.([]string)
		out := make([]any, len(l))

		for i, s := range l {
			out[i] = s
		}

		return out
	case field.KindDate:
		if p, _ := v.(*civil.Date); p != nil {
			return p.String()
		}
	case field.KindFloat:
		if p, _ := v.(*float64); p != nil {
			return *p
		}
	case field.KindNestedList, field.KindNameList:
		l, _ := v.([]any)
		out := make([]any, len(l))

		for i, e := range l {
			out[i] = codec.encodeElement(e)
		}

		return out
	case field.KindSeasonMap:
		m, _ := v.(map[int]string)
		out := make(map[int]string, len(m))
		maps.Copy(out, m)

		return out
	}

	return nil
}
