package media

import (
	"runtime"
	"testing"
)

func TestFindCommand(t *testing.T) {
	tests := []struct {
		name     string
		commands []string
		validate func(result string) bool
	}{
		{
			name:     "empty list returns empty",
			commands: []string{},
			validate: func(result string) bool {
				return result == ""
			},
		},
		{
			name:     "non-existent commands return empty",
			commands: []string{"nonexistent1", "nonexistent2", "nonexistent3"},
			validate: func(result string) bool {
				return result == ""
			},
		},
		{
			name:     "falls through to an existing command",
			commands: []string{"nonexistent1", "sh"},
			validate: func(result string) bool {
				// sh exists everywhere except Windows
				return result == "sh" || runtime.GOOS == "windows"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := findCommand(tt.commands...)
			if !tt.validate(result) {
				t.Errorf("findCommand(%v) = %q", tt.commands, result)
			}
		})
	}
}

func TestLauncher_OpenWithoutOpener(t *testing.T) {
	l := &Launcher{registry: &BrowserRegistry{browsers: map[string]BrowserDefinition{}}}
	if err := l.Open("https://codeforces.com/contest/1999"); err == nil {
		t.Error("expected error when no opener is configured")
	}
}
