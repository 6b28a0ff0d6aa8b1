package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisibleToPublicAndStatus(t *testing.T) {
	public := &Message{From: "alice", To: Broadcast, Kind: KindPublic}
	status := &Message{From: "alice", To: Broadcast, Kind: KindStatus}

	for _, viewer := range []string{"alice", "bob", ""} {
		assert.True(t, public.VisibleTo(viewer))
		assert.True(t, status.VisibleTo(viewer))
	}
}

func TestVisibleToPrivate(t *testing.T) {
	private := &Message{From: "alice", To: "bob", Kind: KindPrivate}

	assert.True(t, private.VisibleTo("alice"))
	assert.True(t, private.VisibleTo("bob"))
	assert.False(t, private.VisibleTo("carol"))
	assert.False(t, private.VisibleTo(""))
}

func TestNewStatusMessage(t *testing.T) {
	at := time.Date(2024, 1, 1, 9, 30, 15, 0, time.UTC)
	m := NewStatusMessage("00112233445566778899aabb", "alice", ArrivalText, at)

	assert.Equal(t, "alice", m.From)
	assert.Equal(t, Broadcast, m.To)
	assert.Equal(t, KindStatus, m.Kind)
	assert.Equal(t, ArrivalText, m.Text)
	assert.Equal(t, "09:30:15", m.Time)
}

func TestParticipantStale(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	p := &Participant{Name: "alice", LastSeen: now.Add(-11 * time.Second)}

	assert.True(t, p.Stale(now, 10*time.Second))
	assert.False(t, p.Stale(now, 15*time.Second))

	// Exactly at the threshold is not yet stale
	edge := &Participant{Name: "bob", LastSeen: now.Add(-10 * time.Second)}
	assert.False(t, edge.Stale(now, 10*time.Second))
}
