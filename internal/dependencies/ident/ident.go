package ident

import (
	"crypto/rand"
	"encoding/hex"

	"batepapo/internal/model"
)

// Generator produces store identifiers for new messages.
// Mockable so tests can use predictable ids.
type Generator interface {
	NewMessageID() model.MessageID
}

// RandomGenerator generates ids from crypto/rand
type RandomGenerator struct{}

// New creates a new RandomGenerator
func New() *RandomGenerator {
	return &RandomGenerator{}
}

// NewMessageID returns a fresh 24-character hexadecimal id
func (g *RandomGenerator) NewMessageID() model.MessageID {
	buf := make([]byte, model.MessageIDLength/2)
	// rand.Read never fails per its contract
	_, _ = rand.Read(buf)
	return model.MessageID(hex.EncodeToString(buf))
}
