package model

// MessageIDLength is the length of a message id: 12 random bytes hex-encoded
const MessageIDLength = 24

// ValidMessageID reports whether s has the store's identifier format,
// a 24-character hexadecimal string. Malformed ids are rejected before any
// store lookup.
func ValidMessageID(s string) bool {
	if len(s) != MessageIDLength {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
