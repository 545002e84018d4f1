package schema

import (
	"github.com/aliceplex/schema/field"
	"github.com/aliceplex/schema/model"
)

var personFields = field.Table{
	{Name: "name", Kind: field.KindString},
	{Name: "photo", Kind: field.KindString},
}

var actorFields = field.Table{
	{Name: "name", Kind: field.KindString},
	{Name: "photo", Kind: field.KindString},
	{Name: "role", Kind: field.KindString},
}

var (
	// Person converts model.Person.
	Person = newSchema("person", personFields, nil, buildPerson, decomposePerson)
	// PersonStrict additionally requires a name.
	PersonStrict = Person.strict(Rules{Required: []string{"name"}}, nil)

	// Actor converts model.Actor.
	Actor = newSchema("actor", actorFields, nil, buildActor, decomposeActor)
	// ActorStrict additionally requires a name and a role.
	ActorStrict = Actor.strict(Rules{Required: []string{"name", "role"}}, nil)
)

func buildPerson(v values) model.Person {
	return model.Person{
		Name:  v.str("name"),
		Photo: v.str("photo"),
	}
}

func decomposePerson(p model.Person) values {
	return values{
		"name":  p.Name,
		"photo": p.Photo,
	}
}

func buildActor(v values) model.Actor {
	return model.Actor{
		Name:  v.str("name"),
		Photo: v.str("photo"),
		Role:  v.str("role"),
	}
}

func decomposeActor(a model.Actor) values {
	return values{
		"name":  a.Name,
		"photo": a.Photo,
		"role":  a.Role,
	}
}
