package models

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NameMaxLength is the maximum number of characters in a hierarchy name.
const NameMaxLength = 50

// NormalizeName trims whitespace and converts the name to NFC so that
// visually identical names compare equal in the unique indexes.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// validateName checks an already normalized name.
func validateName(name string) error {
	if name == "" {
		return FieldError{Field: "name", Err: ErrNameEmpty}
	}

	if utf8.RuneCountInString(name) > NameMaxLength {
		return FieldError{Field: "name", Err: ErrNameTooLong}
	}

	return nil
}
