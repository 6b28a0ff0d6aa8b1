// Package sanitize strips markup from free-text input before it is stored
// or used as a participant identity.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy drops every HTML element and attribute
var policy = bluemonday.StrictPolicy()

// Clean removes all markup from s, decodes any entities the sanitizer
// escaped, and trims surrounding whitespace.
func Clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
