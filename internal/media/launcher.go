// Package media opens contest pages and solution videos in the user's
// browser. The opener is resolved once at startup from per-OS candidates.
package media

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/contesthub/contesthub/internal/config"
)

type Launcher struct {
	opener   string
	registry *BrowserRegistry
}

func NewLauncher(cfg *config.Config) *Launcher {
	registry, err := NewBrowserRegistry()
	if err != nil {
		// Continue without definitions; openers still run bare.
		registry = &BrowserRegistry{browsers: make(map[string]BrowserDefinition)}
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = cfg.Browser.Darwin
	case "linux":
		candidates = cfg.Browser.Linux
	case "windows":
		candidates = cfg.Browser.Windows
	}

	opener := findCommand(candidates...)
	if opener == "" {
		opener = cfg.Browser.DefaultOpener
	}

	return &Launcher{opener: opener, registry: registry}
}

// Open launches the URL in the resolved browser and returns without waiting.
func (l *Launcher) Open(url string) error {
	if l.opener == "" {
		return fmt.Errorf("no application found to open URL")
	}

	cmd, err := l.registry.GetCommand(l.opener, url)
	if err != nil {
		cmd = exec.Command(l.opener, url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", l.opener, err)
	}

	// Reap the process so it doesn't linger as a zombie.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

func findCommand(commands ...string) string {
	for _, cmd := range commands {
		if _, err := exec.LookPath(cmd); err == nil {
			return cmd
		}
	}
	return ""
}
