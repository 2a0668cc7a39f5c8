package types

// Planet is a world that users can mark as a favorite.
type Planet struct {
	ID      int64
	Name    string
	Climate *string
	Terrain *string
}

// Validate returns ErrInvalidName if the name is empty and a LengthError
// when a field exceeds its column width.
func (p *Planet) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	return firstErr(
		checkLen("name", p.Name, MaxNameLen),
		checkOptionalLen("climate", p.Climate, MaxColorLen),
		checkOptionalLen("terrain", p.Terrain, MaxColorLen),
	)
}

// Serialize returns the response shape of the planet.
func (p *Planet) Serialize() map[string]any {
	return map[string]any{
		"id":      p.ID,
		"name":    p.Name,
		"climate": optional(p.Climate),
		"terrain": optional(p.Terrain),
	}
}
