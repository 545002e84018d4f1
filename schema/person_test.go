package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliceplex/schema/diagnostic"
	"github.com/aliceplex/schema/model"
)

func TestPerson_Load(t *testing.T) {
	p, err := Person.Load(Mapping{"name": "name", "photo": "photo"})
	require.NoError(t, err)
	assertRecord(t, model.Person{Name: model.Ptr("name"), Photo: model.Ptr("photo")}, p)

	p, err = Person.Load(Mapping{"name": "", "photo": nil})
	require.NoError(t, err)
	assertRecord(t, model.Person{}, p)

	p, err = Person.Load(Mapping{})
	require.NoError(t, err)
	assertRecord(t, model.Person{}, p)
}

func TestPerson_Dump(t *testing.T) {
	assert.Equal(t, Mapping{"name": "name", "photo": "photo"},
		Person.Dump(model.Person{Name: model.Ptr("name"), Photo: model.Ptr("photo")}))
	assert.Equal(t, Mapping{"name": nil, "photo": nil}, Person.Dump(model.Person{}))
	assert.Equal(t, Mapping{"name": nil, "photo": nil}, Person.Dump(model.Person{Name: model.Ptr("")}))
}

func TestPersonStrict_Load(t *testing.T) {
	p, err := PersonStrict.Load(Mapping{"name": "name"})
	require.NoError(t, err)
	assertRecord(t, model.Person{Name: model.Ptr("name")}, p)

	for _, in := range []Mapping{{}, {"name": nil}, {"name": ""}, {"photo": "photo"}} {
		_, err := PersonStrict.Load(in)
		verr := validationError(t, err)
		assert.Equal(t, []string{"name"}, verr.Diagnostics.Paths())
		assert.True(t, verr.Diagnostics.Has(diagnostic.KindMissingRequired))
	}
}

func TestActor_Load(t *testing.T) {
	a, err := Actor.Load(Mapping{"name": "name", "photo": "photo", "role": "role"})
	require.NoError(t, err)
	assertRecord(t, model.Actor{Name: model.Ptr("name"), Photo: model.Ptr("photo"), Role: model.Ptr("role")}, a)

	a, err = Actor.Load(Mapping{"name": nil, "photo": nil, "role": nil})
	require.NoError(t, err)
	assertRecord(t, model.Actor{}, a)
}

func TestActor_Dump(t *testing.T) {
	assert.Equal(t, Mapping{"name": "name", "photo": "photo", "role": "role"},
		Actor.Dump(model.Actor{Name: model.Ptr("name"), Photo: model.Ptr("photo"), Role: model.Ptr("role")}))
	assert.Equal(t, Mapping{"name": nil, "photo": nil, "role": nil}, ActorStrict.Dump(model.Actor{}))
}

func TestActorStrict_Load(t *testing.T) {
	a, err := ActorStrict.Load(Mapping{"name": "name", "role": "role"})
	require.NoError(t, err)
	assertRecord(t, model.Actor{Name: model.Ptr("name"), Role: model.Ptr("role")}, a)

	_, err = ActorStrict.Load(Mapping{"name": nil, "photo": nil, "role": nil})
	verr := validationError(t, err)
	assert.Equal(t, []string{"name", "role"}, verr.Diagnostics.Paths())

	_, err = ActorStrict.Load(Mapping{})
	assert.ErrorIs(t, err, ErrValidation)
}
