package model

import "time"

// Participant is an active chat identity. The sanitized display name is the
// primary key: two participants can never share a name, and every message
// references its sender by name.
type Participant struct {
	Name     string    `json:"name"`
	LastSeen time.Time `json:"lastSeen"`
}

// Stale reports whether the participant has been silent for longer than the
// given timeout at the given instant.
func (p *Participant) Stale(now time.Time, timeout time.Duration) bool {
	return now.Sub(p.LastSeen) > timeout
}
