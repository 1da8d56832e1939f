package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrWrongPIN is returned when a PIN check fails.
var ErrWrongPIN = errors.New("wrong parent PIN")

// ParentGate guards parent-only actions (progress reset, reports)
// behind a PIN. The configured PIN is hashed at startup so the clear
// text never sits in memory longer than necessary. An empty PIN leaves
// the gate open.
type ParentGate struct {
	hash    []byte
	enabled bool
}

// NewParentGate creates a gate for the configured PIN.
func NewParentGate(pin string) (*ParentGate, error) {
	if pin == "" {
		return &ParentGate{enabled: false}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash parent PIN: %w", err)
	}
	return &ParentGate{hash: hash, enabled: true}, nil
}

// Enabled reports whether a PIN is configured.
func (g *ParentGate) Enabled() bool {
	return g.enabled
}

// Check verifies a PIN attempt. With no PIN configured it always
// passes.
func (g *ParentGate) Check(pin string) error {
	if !g.enabled {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(pin)); err != nil {
		return ErrWrongPIN
	}
	return nil
}
