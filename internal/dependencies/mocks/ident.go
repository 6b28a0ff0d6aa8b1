package mocks

import (
	"fmt"

	"batepapo/internal/dependencies/ident"
	"batepapo/internal/model"
)

// MockIdent is a mock id generator for testing
type MockIdent struct {
	// Queued is a queue of ids to return from NewMessageID
	Queued []model.MessageID
	index  int

	// counter backs the sequential fallback when the queue is empty
	counter int
}

// Ensure MockIdent implements Generator
var _ ident.Generator = (*MockIdent)(nil)

// NewMockIdent creates a new MockIdent
func NewMockIdent() *MockIdent {
	return &MockIdent{}
}

// NewMessageID returns the next queued id, or a deterministic sequential
// 24-hex id if nothing is queued
func (g *MockIdent) NewMessageID() model.MessageID {
	if g.index < len(g.Queued) {
		id := g.Queued[g.index]
		g.index++
		return id
	}
	g.counter++
	return model.MessageID(fmt.Sprintf("%024x", g.counter))
}

// QueueID adds ids to the result queue
func (g *MockIdent) QueueID(ids ...model.MessageID) {
	g.Queued = append(g.Queued, ids...)
}

// Reset clears queued ids and the sequential counter
func (g *MockIdent) Reset() {
	g.Queued = nil
	g.index = 0
	g.counter = 0
}
