package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"batepapo/internal/model"
	"batepapo/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Documents are stored as JSON values under per-entity keys; a SET indexes
// participant names and a LIST keeps message ids in insertion order.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Participant operations

func (s *Storage) SaveParticipant(ctx context.Context, p *model.Participant) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	// Pipeline the document write and the index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, participantKey(p.Name), data, 0)
	pipe.SAdd(ctx, participantsIndexKey(), p.Name)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetParticipant(ctx context.Context, name string) (*model.Participant, error) {
	data, err := s.client.Get(ctx, participantKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, err
	}

	var p model.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) ListParticipants(ctx context.Context) ([]*model.Participant, error) {
	names, err := s.client.SMembers(ctx, participantsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return []*model.Participant{}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = participantKey(name)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	participants := make([]*model.Participant, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // index can briefly outlive a deleted document
		}
		var p model.Participant
		if err := json.Unmarshal([]byte(val.(string)), &p); err != nil {
			continue
		}
		participants = append(participants, &p)
	}

	return participants, nil
}

func (s *Storage) DeleteParticipant(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, participantKey(name))
	pipe.SRem(ctx, participantsIndexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

// Message operations

func (s *Storage) InsertMessage(ctx context.Context, m *model.Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, messageKey(m.ID), data, 0)
	pipe.RPush(ctx, messagesIndexKey(), string(m.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMessage(ctx context.Context, id model.MessageID) (*model.Message, error) {
	data, err := s.client.Get(ctx, messageKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMessageNotFound
		}
		return nil, err
	}

	var m model.Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) ListMessages(ctx context.Context) ([]*model.Message, error) {
	ids, err := s.client.LRange(ctx, messagesIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.Message{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = messageKey(model.MessageID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]*model.Message, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var m model.Message
		if err := json.Unmarshal([]byte(val.(string)), &m); err != nil {
			continue
		}
		messages = append(messages, &m)
	}

	return messages, nil
}

func (s *Storage) UpdateMessage(ctx context.Context, m *model.Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	// Overwrite the document only if it still exists; the index entry is
	// untouched so the message keeps its position in the log
	ok, err := s.client.SetXX(ctx, messageKey(m.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrMessageNotFound
	}
	return nil
}

func (s *Storage) DeleteMessage(ctx context.Context, id model.MessageID) error {
	deleted, err := s.client.Del(ctx, messageKey(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return model.ErrMessageNotFound
	}
	return s.client.LRem(ctx, messagesIndexKey(), 1, string(id)).Err()
}
