package types

// Person is a character that users can mark as a favorite.
type Person struct {
	ID        int64
	Name      string
	HairColor *string
	EyeColor  *string
}

// Validate returns ErrInvalidName if the name is empty and a LengthError
// when a field exceeds its column width.
func (p *Person) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	return firstErr(
		checkLen("name", p.Name, MaxNameLen),
		checkOptionalLen("hair_color", p.HairColor, MaxColorLen),
		checkOptionalLen("eye_color", p.EyeColor, MaxColorLen),
	)
}

// Serialize returns the response shape of the person. Unset colors are nil.
func (p *Person) Serialize() map[string]any {
	return map[string]any{
		"id":         p.ID,
		"name":       p.Name,
		"hair_color": optional(p.HairColor),
		"eye_color":  optional(p.EyeColor),
	}
}

// optional unwraps s so that an unset value serializes as JSON null.
func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
