package model

import "time"

// MessageID uniquely identifies a message in the store
type MessageID string

// Kind classifies a chat message
type Kind string

const (
	// KindStatus is a system-generated join/leave notice
	KindStatus Kind = "status"
	// KindPublic is a broadcast visible to everyone
	KindPublic Kind = "message"
	// KindPrivate is visible only to its sender and named recipient
	KindPrivate Kind = "private_message"
)

// Broadcast is the reserved recipient meaning "all participants"
const Broadcast = "Todos"

// Room notice texts for arrival and departure status messages
const (
	ArrivalText   = "entra na sala..."
	DepartureText = "sai da sala..."
)

// DisplayTimeLayout renders timestamps as HH:mm:ss for clients.
// It is display-only; ordering always uses store insertion order.
const DisplayTimeLayout = "15:04:05"

// Message is one chat event. From is server-trusted (set from the asserted
// identity after sanitization) and immutable, as is ID. Edits may replace
// To, Text and Kind only.
type Message struct {
	ID   MessageID `json:"id"`
	From string    `json:"from"`
	To   string    `json:"to"`
	Text string    `json:"text"`
	Kind Kind      `json:"kind"`
	Time string    `json:"time"`
}

// VisibleTo reports whether the viewer may see this message. Public and
// status messages are visible to everyone, including anonymous viewers;
// private messages only to their sender and recipient.
func (m *Message) VisibleTo(viewer string) bool {
	if m.Kind != KindPrivate {
		return true
	}
	return viewer != "" && (m.From == viewer || m.To == viewer)
}

// NewStatusMessage builds a join/leave notice attributed to name
func NewStatusMessage(id MessageID, name, text string, at time.Time) *Message {
	return &Message{
		ID:   id,
		From: name,
		To:   Broadcast,
		Text: text,
		Kind: KindStatus,
		Time: at.Format(DisplayTimeLayout),
	}
}
