package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"batepapo/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Participant tests

func (s *StorageSuite) TestSaveAndGetParticipant() {
	p := &model.Participant{Name: "alice", LastSeen: time.Now()}

	err := s.storage.SaveParticipant(s.ctx, p)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetParticipant(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Name)
	s.WithinDuration(p.LastSeen, retrieved.LastSeen, time.Millisecond)
}

func (s *StorageSuite) TestGetParticipantNotFound() {
	_, err := s.storage.GetParticipant(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrParticipantNotFound)
}

func (s *StorageSuite) TestSaveParticipantOverwrites() {
	first := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveParticipant(s.ctx, &model.Participant{Name: "alice", LastSeen: first})
	_ = s.storage.SaveParticipant(s.ctx, &model.Participant{Name: "alice", LastSeen: first.Add(time.Minute)})

	retrieved, err := s.storage.GetParticipant(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(first.Add(time.Minute), retrieved.LastSeen)

	list, err := s.storage.ListParticipants(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *StorageSuite) TestListParticipants() {
	_ = s.storage.SaveParticipant(s.ctx, &model.Participant{Name: "alice"})
	_ = s.storage.SaveParticipant(s.ctx, &model.Participant{Name: "bob"})

	list, err := s.storage.ListParticipants(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func (s *StorageSuite) TestDeleteParticipant() {
	_ = s.storage.SaveParticipant(s.ctx, &model.Participant{Name: "alice"})

	err := s.storage.DeleteParticipant(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.storage.GetParticipant(s.ctx, "alice")
	s.ErrorIs(err, model.ErrParticipantNotFound)
}

func (s *StorageSuite) TestDeleteParticipantIsIdempotent() {
	s.NoError(s.storage.DeleteParticipant(s.ctx, "nobody"))
}

func (s *StorageSuite) TestMutatingReturnedParticipantDoesNotAffectStore() {
	_ = s.storage.SaveParticipant(s.ctx, &model.Participant{Name: "alice"})

	p, _ := s.storage.GetParticipant(s.ctx, "alice")
	p.Name = "mallory"

	_, err := s.storage.GetParticipant(s.ctx, "alice")
	s.NoError(err)
}

// Message tests

func (s *StorageSuite) message(id, from, text string) *model.Message {
	return &model.Message{
		ID:   model.MessageID(id),
		From: from,
		To:   model.Broadcast,
		Text: text,
		Kind: model.KindPublic,
		Time: "12:00:00",
	}
}

func (s *StorageSuite) TestInsertAndGetMessage() {
	m := s.message("000000000000000000000001", "alice", "hi")

	err := s.storage.InsertMessage(s.ctx, m)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMessage(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal("hi", retrieved.Text)
}

func (s *StorageSuite) TestGetMessageNotFound() {
	_, err := s.storage.GetMessage(s.ctx, "ffffffffffffffffffffffff")
	s.ErrorIs(err, model.ErrMessageNotFound)
}

func (s *StorageSuite) TestListMessagesKeepsInsertionOrder() {
	for i, text := range []string{"first", "second", "third"} {
		id := model.MessageID(fmt.Sprintf("%024d", i+1))
		_ = s.storage.InsertMessage(s.ctx, &model.Message{ID: id, From: "alice", To: model.Broadcast, Text: text, Kind: model.KindPublic})
	}

	list, err := s.storage.ListMessages(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("first", list[0].Text)
	s.Equal("second", list[1].Text)
	s.Equal("third", list[2].Text)
}

func (s *StorageSuite) TestUpdateMessageKeepsPosition() {
	_ = s.storage.InsertMessage(s.ctx, s.message("000000000000000000000001", "alice", "one"))
	_ = s.storage.InsertMessage(s.ctx, s.message("000000000000000000000002", "alice", "two"))

	edited := s.message("000000000000000000000001", "alice", "edited")
	err := s.storage.UpdateMessage(s.ctx, edited)
	s.Require().NoError(err)

	list, _ := s.storage.ListMessages(s.ctx)
	s.Require().Len(list, 2)
	s.Equal("edited", list[0].Text)
	s.Equal("two", list[1].Text)
}

func (s *StorageSuite) TestUpdateMissingMessage() {
	err := s.storage.UpdateMessage(s.ctx, s.message("ffffffffffffffffffffffff", "alice", "x"))
	s.ErrorIs(err, model.ErrMessageNotFound)
}

func (s *StorageSuite) TestDeleteMessage() {
	_ = s.storage.InsertMessage(s.ctx, s.message("000000000000000000000001", "alice", "one"))
	_ = s.storage.InsertMessage(s.ctx, s.message("000000000000000000000002", "alice", "two"))

	err := s.storage.DeleteMessage(s.ctx, "000000000000000000000001")
	s.Require().NoError(err)

	_, err = s.storage.GetMessage(s.ctx, "000000000000000000000001")
	s.ErrorIs(err, model.ErrMessageNotFound)

	list, _ := s.storage.ListMessages(s.ctx)
	s.Require().Len(list, 1)
	s.Equal("two", list[0].Text)
}

func (s *StorageSuite) TestDeleteMissingMessage() {
	err := s.storage.DeleteMessage(s.ctx, "ffffffffffffffffffffffff")
	s.ErrorIs(err, model.ErrMessageNotFound)
}
