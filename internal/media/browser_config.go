package media

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

//go:embed browsers.toml
var browsersTOML []byte

// BrowserDefinition describes how an opener command is invoked. Command, when
// set, replaces the registry key as the executable; args are inserted before
// the URL.
type BrowserDefinition struct {
	Description string   `toml:"description"`
	Platforms   []string `toml:"platforms"`
	Command     string   `toml:"command,omitempty"`
	Args        []string `toml:"args,omitempty"`
}

type browsersConfig struct {
	Browsers map[string]BrowserDefinition `toml:"browsers"`
}

// BrowserRegistry resolves opener names to runnable commands.
type BrowserRegistry struct {
	browsers map[string]BrowserDefinition
}

// NewBrowserRegistry creates a registry from the embedded TOML, then merges
// any user overrides found in the config directory.
func NewBrowserRegistry() (*BrowserRegistry, error) {
	var config browsersConfig
	if err := toml.Unmarshal(browsersTOML, &config); err != nil {
		return nil, fmt.Errorf("parsing browsers.toml: %w", err)
	}

	registry := &BrowserRegistry{browsers: config.Browsers}
	registry.loadUserConfig()
	return registry, nil
}

func (r *BrowserRegistry) loadUserConfig() {
	configPaths := []string{
		"~/.config/contesthub/browsers.toml",
		"./browsers.toml",
	}

	for _, path := range configPaths {
		if len(path) >= 2 && path[:2] == "~/" {
			if home, err := os.UserHomeDir(); err == nil {
				path = filepath.Join(home, path[2:])
			}
		}

		if data, err := os.ReadFile(path); err == nil {
			var userConfig browsersConfig
			if err := toml.Unmarshal(data, &userConfig); err == nil {
				for name, def := range userConfig.Browsers {
					r.browsers[name] = def
				}
			}
		}
	}
}

// GetCommand builds the command that opens url with the named browser. An
// unknown name is invoked directly with the URL as its only argument.
func (r *BrowserRegistry) GetCommand(name, url string) (*exec.Cmd, error) {
	browser, exists := r.browsers[name]
	if !exists {
		return exec.Command(name, url), nil
	}

	supported := false
	for _, p := range browser.Platforms {
		if p == runtime.GOOS {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("%s not supported on %s", name, runtime.GOOS)
	}

	executable := name
	if browser.Command != "" {
		executable = browser.Command
	}

	args := append([]string{}, browser.Args...)
	args = append(args, url)
	return exec.Command(executable, args...), nil
}
