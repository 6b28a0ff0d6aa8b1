package redis

import (
	"fmt"

	"batepapo/internal/model"
)

// Key prefix for all chat data
const keyPrefix = "chat"

// participantKey returns the Redis key for a Participant document
func participantKey(name string) string {
	return fmt.Sprintf("%s:participant:%s", keyPrefix, name)
}

// participantsIndexKey returns the Redis key for the SET of participant names
func participantsIndexKey() string {
	return fmt.Sprintf("%s:idx:participants", keyPrefix)
}

// messageKey returns the Redis key for a Message document
func messageKey(id model.MessageID) string {
	return fmt.Sprintf("%s:message:%s", keyPrefix, id)
}

// messagesIndexKey returns the Redis key for the LIST of message ids.
// A list rather than a set so insertion order is the listing order.
func messagesIndexKey() string {
	return fmt.Sprintf("%s:idx:messages", keyPrefix)
}
