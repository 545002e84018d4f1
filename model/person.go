package model

// Person is the base identity shared by cast and crew entries.
type Person struct {
	Name  *string
	Photo *string
}

// Equal reports whether both persons hold the same field values.
func (p Person) Equal(other Person) bool {
	return equalPtr(p.Name, other.Name) && equalPtr(p.Photo, other.Photo)
}

// Actor is a Person playing a role in a show or a movie.
type Actor struct {
	Name  *string
	Photo *string
	Role  *string
}

// Person returns the identity part of the actor.
func (a Actor) Person() Person {
	return Person{Name: a.Name, Photo: a.Photo}
}

// Equal reports whether both actors hold the same field values.
func (a Actor) Equal(other Actor) bool {
	return equalPtr(a.Name, other.Name) &&
		equalPtr(a.Photo, other.Photo) &&
		equalPtr(a.Role, other.Role)
}
