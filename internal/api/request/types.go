package request

// RegisterRequest is the request body for registering a participant
type RegisterRequest struct {
	Name string `json:"name"`
}

// MessageRequest is the request body for posting or editing a message.
// The sender comes from the identity header, never from the body.
type MessageRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
}
