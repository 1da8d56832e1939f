package validation

import (
	"strings"
	"testing"

	"learnread/internal/models"
)

func TestValidateChildName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid cyrillic", "Мила", "Мила", false},
		{"valid latin", "Anna", "Anna", false},
		{"trims whitespace", "  Ваня  ", "Ваня", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"single rune", "М", "", true},
		{"two cyrillic runes pass", "Ия", "Ия", false},
		{"too long", strings.Repeat("а", 31), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateChildName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCharacter(t *testing.T) {
	for _, c := range models.Characters {
		if _, err := ValidateCharacter(string(c)); err != nil {
			t.Errorf("ValidateCharacter(%q): %v", c, err)
		}
	}
	if _, err := ValidateCharacter("dragon"); err == nil {
		t.Error("Unknown character should be rejected")
	}
	if _, err := ValidateCharacter(""); err == nil {
		t.Error("Empty character should be rejected")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Field: "name", Message: "name is required"}
	if err.Error() != "name: name is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}
