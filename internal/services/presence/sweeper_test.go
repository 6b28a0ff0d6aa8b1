package presence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"batepapo/internal/dependencies/mocks"
	"batepapo/internal/model"
	"batepapo/internal/storage"
	"batepapo/internal/storage/memory"
	"batepapo/internal/testutil"
)

type SweeperSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	ident   *mocks.MockIdent
	sweeper *Sweeper
	ctx     context.Context
}

func TestSweeperSuite(t *testing.T) {
	suite.Run(t, new(SweeperSuite))
}

func (s *SweeperSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ident = mocks.NewMockIdent()
	s.sweeper = New(s.storage, s.clock, s.ident, DefaultInterval, DefaultTimeout, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *SweeperSuite) save(name string) {
	err := s.storage.SaveParticipant(s.ctx, &model.Participant{
		Name:     name,
		LastSeen: s.clock.Now(),
	})
	s.Require().NoError(err)
}

func (s *SweeperSuite) TestSweepEvictsStaleParticipant() {
	s.save("alice")
	s.clock.Advance(11 * time.Second)

	s.sweeper.sweep(s.ctx)

	_, err := s.storage.GetParticipant(s.ctx, "alice")
	s.ErrorIs(err, model.ErrParticipantNotFound)
}

func (s *SweeperSuite) TestSweepAppendsDepartureNotice() {
	s.save("alice")
	s.clock.Advance(11 * time.Second)

	s.sweeper.sweep(s.ctx)

	messages, err := s.storage.ListMessages(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(messages, 1)

	notice := messages[0]
	s.Equal("alice", notice.From)
	s.Equal(model.Broadcast, notice.To)
	s.Equal(model.DepartureText, notice.Text)
	s.Equal(model.KindStatus, notice.Kind)
	s.Equal("12:00:11", notice.Time)
}

func (s *SweeperSuite) TestSweepLeavesFreshParticipants() {
	s.save("alice")
	s.clock.Advance(5 * time.Second)
	s.save("bob")
	s.clock.Advance(6 * time.Second)

	// alice is 11s silent, bob only 6s
	s.sweeper.sweep(s.ctx)

	_, err := s.storage.GetParticipant(s.ctx, "alice")
	s.ErrorIs(err, model.ErrParticipantNotFound)
	_, err = s.storage.GetParticipant(s.ctx, "bob")
	s.NoError(err)
}

func (s *SweeperSuite) TestSweepExactlyAtTimeoutIsNotStale() {
	s.save("alice")
	s.clock.Advance(10 * time.Second)

	s.sweeper.sweep(s.ctx)

	_, err := s.storage.GetParticipant(s.ctx, "alice")
	s.NoError(err)
}

func (s *SweeperSuite) TestRepeatedSweepsNoticeOnlyOnce() {
	s.save("alice")
	s.clock.Advance(11 * time.Second)

	s.sweeper.sweep(s.ctx)
	s.sweeper.sweep(s.ctx)
	s.sweeper.sweep(s.ctx)

	messages, _ := s.storage.ListMessages(s.ctx)
	s.Len(messages, 1)
}

func (s *SweeperSuite) TestRunStopsOnContextCancel() {
	ctx, cancel := context.WithCancel(s.ctx)

	done := make(chan struct{})
	go func() {
		s.sweeper.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("sweeper did not stop after cancellation")
	}
}

// failingStorage wraps a working store but refuses participant deletions,
// to exercise the keep-going path.
type failingStorage struct {
	storage.Storage
	deleteErr error
}

func (f *failingStorage) DeleteParticipant(_ context.Context, _ string) error {
	return f.deleteErr
}

func (s *SweeperSuite) TestSweepContinuesPastEvictionFailure() {
	s.save("alice")
	s.clock.Advance(11 * time.Second)

	broken := &failingStorage{Storage: s.storage, deleteErr: errors.New("store down")}
	sweeper := New(broken, s.clock, s.ident, DefaultInterval, DefaultTimeout, testutil.NopLogger())

	s.NotPanics(func() {
		sweeper.sweep(s.ctx)
	})

	// Eviction failed, so no departure notice was written
	messages, _ := s.storage.ListMessages(s.ctx)
	s.Empty(messages)
}
