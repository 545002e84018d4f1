package field

// Descriptor declares one wire field of an entity.
type Descriptor struct {
	Name string
	Kind KindEnum
}

// Table is the ordered field declaration of an entity. The order is the
// emission order of documents written from it.
type Table []Descriptor

// Lookup returns the descriptor with the given wire name.
func (t Table) Lookup(name string) (Descriptor, bool) {
	for _, d := range t {
		if d.Name == name {
			return d, true
		}
	}

	return Descriptor{}, false
}

// Has reports whether the table declares the given wire name.
func (t Table) Has(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Names returns the wire names in declaration order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, d := range t {
		names = append(names, d.Name)
	}

	return names
}
