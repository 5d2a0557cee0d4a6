package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "King Fahd Road, Riyadh", "King Fahd Road, Riyadh"},
		{"tags stripped", "<b>Main</b> Street", "Main Street"},
		{"script removed entirely", "<script>alert(1)</script>Eve", "Eve"},
		{"whitespace trimmed", "  hello  ", "hello"},
		{"entities survive as text", "Smith & Sons", "Smith & Sons"},
		{"quotes survive as text", `the "brief"`, `the "brief"`},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeText(tt.input))
		})
	}
}
