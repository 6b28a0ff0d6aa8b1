package storage

import (
	"context"

	"batepapo/internal/model"
)

// Storage defines the interface for data persistence. Implementations must
// be safe for concurrent use: request handlers and the presence sweeper
// share the same store with no outer locking.
//
// Messages are kept in insertion order; ListMessages returns them in the
// order they were inserted regardless of edits.
type Storage interface {
	// Participant operations
	SaveParticipant(ctx context.Context, p *model.Participant) error
	GetParticipant(ctx context.Context, name string) (*model.Participant, error)
	ListParticipants(ctx context.Context) ([]*model.Participant, error)
	DeleteParticipant(ctx context.Context, name string) error

	// Message operations
	InsertMessage(ctx context.Context, m *model.Message) error
	GetMessage(ctx context.Context, id model.MessageID) (*model.Message, error)
	ListMessages(ctx context.Context) ([]*model.Message, error)
	UpdateMessage(ctx context.Context, m *model.Message) error
	DeleteMessage(ctx context.Context, id model.MessageID) error
}
