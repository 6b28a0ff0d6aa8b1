package memory

import (
	"context"
	"sync"

	"batepapo/internal/model"
	"batepapo/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Message insertion order is tracked in a separate slice so edits never
// reorder the log.
type Storage struct {
	mu sync.RWMutex

	participants map[string]*model.Participant
	messages     map[model.MessageID]*model.Message
	order        []model.MessageID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		participants: make(map[string]*model.Participant),
		messages:     make(map[model.MessageID]*model.Message),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Participant operations

func (s *Storage) SaveParticipant(ctx context.Context, p *model.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.participants[p.Name] = &cp
	return nil
}

func (s *Storage) GetParticipant(ctx context.Context, name string) (*model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[name]
	if !ok {
		return nil, model.ErrParticipantNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Storage) ListParticipants(ctx context.Context) ([]*model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Participant, 0, len(s.participants))
	for _, p := range s.participants {
		cp := *p
		result = append(result, &cp)
	}
	return result, nil
}

func (s *Storage) DeleteParticipant(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.participants, name)
	return nil
}

// Message operations

func (s *Storage) InsertMessage(ctx context.Context, m *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *m
	s.messages[m.ID] = &cp
	s.order = append(s.order, m.ID)
	return nil
}

func (s *Storage) GetMessage(ctx context.Context, id model.MessageID) (*model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.messages[id]
	if !ok {
		return nil, model.ErrMessageNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *Storage) ListMessages(ctx context.Context) ([]*model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Message, 0, len(s.order))
	for _, id := range s.order {
		if m, ok := s.messages[id]; ok {
			cp := *m
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (s *Storage) UpdateMessage(ctx context.Context, m *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[m.ID]; !ok {
		return model.ErrMessageNotFound
	}
	cp := *m
	s.messages[m.ID] = &cp
	return nil
}

func (s *Storage) DeleteMessage(ctx context.Context, id model.MessageID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[id]; !ok {
		return model.ErrMessageNotFound
	}
	delete(s.messages, id)
	for i, mid := range s.order {
		if mid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
