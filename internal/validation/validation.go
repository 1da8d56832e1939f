package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"learnread/internal/models"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateChildName checks a child's display name. Names are Cyrillic
// as often as not, so lengths are counted in runes.
func ValidateChildName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ValidationError{Field: "name", Message: "name is required"}
	}
	n := utf8.RuneCountInString(name)
	if n < 2 {
		return "", ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	if n > 30 {
		return "", ValidationError{Field: "name", Message: "name must be at most 30 characters"}
	}
	return name, nil
}

// ValidateCharacter checks the companion character choice.
func ValidateCharacter(character string) (models.Character, error) {
	c := models.Character(character)
	if !models.ValidCharacter(c) {
		return "", ValidationError{Field: "character", Message: "unknown character"}
	}
	return c, nil
}
