package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeText strips any HTML markup from user-supplied plain-text input.
// Client addresses and case notes/titles come straight from browser forms,
// so markup is removed rather than escaped on the way out.
func SanitizeText(input string) string {
	cleaned := sanitizePolicy.Sanitize(input)
	// StrictPolicy entity-escapes remaining text; these fields are stored
	// and rendered as plain text, so unescape back.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
