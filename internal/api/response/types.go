package response

import (
	"batepapo/internal/model"
)

// Participant represents a participant in API responses.
// LastSeen is milliseconds since epoch.
type Participant struct {
	Name     string `json:"name"`
	LastSeen int64  `json:"lastSeen"`
}

// ParticipantFromModel converts a model.Participant
func ParticipantFromModel(p *model.Participant) Participant {
	return Participant{
		Name:     p.Name,
		LastSeen: p.LastSeen.UnixMilli(),
	}
}

// ParticipantsFromModel converts a slice of participants
func ParticipantsFromModel(ps []*model.Participant) []Participant {
	result := make([]Participant, len(ps))
	for i, p := range ps {
		result[i] = ParticipantFromModel(p)
	}
	return result
}

// Message represents a message in API responses
type Message struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	Time string `json:"time"`
}

// MessageFromModel converts a model.Message
func MessageFromModel(m *model.Message) Message {
	return Message{
		ID:   string(m.ID),
		From: m.From,
		To:   m.To,
		Text: m.Text,
		Type: string(m.Kind),
		Time: m.Time,
	}
}

// MessagesFromModel converts a slice of messages
func MessagesFromModel(ms []*model.Message) []Message {
	result := make([]Message, len(ms))
	for i, m := range ms {
		result[i] = MessageFromModel(m)
	}
	return result
}
