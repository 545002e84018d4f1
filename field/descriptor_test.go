package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	table := Table{
		{Name: "summary", Kind: KindString},
		{Name: "genres", Kind: KindStringList},
		{Name: "collections", Kind: KindStringList},
	}

	d, ok := table.Lookup("genres")
	assert.True(t, ok)
	assert.Equal(t, KindStringList, d.Kind)

	_, ok = table.Lookup("missing")
	assert.False(t, ok)

	assert.True(t, table.Has("summary"))
	assert.False(t, table.Has("Summary"))
	assert.Equal(t, []string{"summary", "genres", "collections"}, table.Names())
}

func TestKindIsValid(t *testing.T) {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		assert.True(t, k.IsValid(), k.String())
	}

	assert.False(t, KindEnum(0).IsValid())
	assert.False(t, KindEnum(KindTotal).IsValid())
}
