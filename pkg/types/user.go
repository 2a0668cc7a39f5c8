package types

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// User is an account that owns favorites. Password holds a bcrypt hash and
// is never serialized.
type User struct {
	ID       int64
	Email    string
	Password string
	IsActive bool
}

// SetPassword replaces the stored password with the bcrypt hash of plain.
func (u *User) SetPassword(plain string) error {
	if plain == "" {
		return ErrInvalidData
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	u.Password = string(hash)
	return nil
}

// Validate returns ErrInvalidEmail when the email is empty, a LengthError
// when it is too long, and ErrInvalidData when no password hash is set.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if err := checkLen("email", u.Email, MaxEmailLen); err != nil {
		return err
	}
	if u.Password == "" {
		return ErrInvalidData
	}
	return nil
}

// Serialize returns the public response shape of the user.
func (u *User) Serialize() map[string]any {
	return map[string]any{
		"id":    u.ID,
		"email": u.Email,
	}
}
