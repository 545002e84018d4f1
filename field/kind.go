package field

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the declared kind of an entity field. It drives normalization
// and the per-field decoding and encoding of the schema package.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindString     // optional string
	KindStringList // ordered list of strings
	KindDate       // optional calendar date, YYYY-MM-DD on the wire
	KindFloat      // optional decimal number
	KindNestedList // ordered list of nested entities (e.g. actors)
	KindNameList   // ordered list of persons projected to their name
	KindSeasonMap  // season number to summary

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsList reports whether the kind is an ordered list on the wire.
func (k KindEnum) IsList() bool {
	switch k {
	default:
		return false
	case KindStringList, KindNestedList, KindNameList:
		return true
	}
}

// IsString reports whether the kind holds a single string value.
func (k KindEnum) IsString() bool {
	return k == KindString
}

// IsValid reports whether k is one of the declared kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}
