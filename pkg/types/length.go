package types

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Column widths of the text fields, counted in characters.
const (
	MaxNameLen  = 100
	MaxColorLen = 50
	MaxEmailLen = 120
)

// ErrFieldTooLong matches every LengthError.
var ErrFieldTooLong = errors.New("field too long")

// LengthError reports a text field longer than its column allows.
type LengthError struct {
	Field string
	Max   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s must be at most %d characters", e.Field, e.Max)
}

func (e *LengthError) Is(target error) bool { return target == ErrFieldTooLong }

// checkLen returns a LengthError when s has more than limit characters.
func checkLen(field, s string, limit int) error {
	if utf8.RuneCountInString(s) > limit {
		return &LengthError{Field: field, Max: limit}
	}
	return nil
}

// checkOptionalLen is checkLen for nullable fields.
func checkOptionalLen(field string, s *string, limit int) error {
	if s == nil {
		return nil
	}
	return checkLen(field, *s, limit)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
