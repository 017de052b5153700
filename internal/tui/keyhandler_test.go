package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSearchInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "weekly contest", "weekly contest"},
		{"surrounding whitespace", "  round 999  ", "round 999"},
		{"newlines and tabs", "round\n999\tdiv", "round 999 div"},
		{"collapsed spaces", "round    999", "round 999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeSearchInput(tt.input))
		})
	}
}

func TestGetHelpForCurrentView(t *testing.T) {
	app := newTestApp(t)

	app.view = ViewContests
	help := app.keyHandler.GetHelpForCurrentView()
	assert.NotEmpty(t, help)
	assert.Contains(t, help[0], "switch")

	app.view = ViewHelp
	help = app.keyHandler.GetHelpForCurrentView()
	assert.Equal(t, []string{"esc: back"}, help)
}
