package types

// Favorite records that a user marked one person or one planet.
// PersonID and PlanetID are the stored references; Person and Planet are
// populated by the store when reading.
type Favorite struct {
	ID       int64
	UserID   int64
	PersonID *int64
	PlanetID *int64

	Person *Person
	Planet *Planet
}

// NewPersonFavorite returns an unsaved favorite of a person.
func NewPersonFavorite(userID, personID int64) *Favorite {
	return &Favorite{UserID: userID, PersonID: &personID}
}

// NewPlanetFavorite returns an unsaved favorite of a planet.
func NewPlanetFavorite(userID, planetID int64) *Favorite {
	return &Favorite{UserID: userID, PlanetID: &planetID}
}

// Validate checks the owner is set and exactly one target is referenced.
func (f *Favorite) Validate() error {
	if f.UserID <= 0 {
		return ErrInvalidID
	}
	if (f.PersonID == nil) == (f.PlanetID == nil) {
		return ErrInvalidFavorite
	}
	return nil
}

// Serialize returns the response shape of the favorite. The linked person
// and planet are serialized in place, or nil when absent.
func (f *Favorite) Serialize() map[string]any {
	var person, planet any
	if f.Person != nil {
		person = f.Person.Serialize()
	}
	if f.Planet != nil {
		planet = f.Planet.Serialize()
	}
	return map[string]any{
		"id":      f.ID,
		"user_id": f.UserID,
		"people":  person,
		"planet":  planet,
	}
}
