package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Codeforces CodeforcesConfig `mapstructure:"codeforces"`
	Clist      ClistConfig      `mapstructure:"clist"`
	YouTube    YouTubeConfig    `mapstructure:"youtube"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	UI         UIConfig         `mapstructure:"ui"`
	Browser    BrowserConfig    `mapstructure:"browser"`
	Keys       KeyConfig        `mapstructure:"keys"`
	Log        LogConfig        `mapstructure:"log"`
}

type CodeforcesConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type ClistConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Username string `mapstructure:"username"`
	// APIKey authenticates the upcoming-contests query. PastAPIKey, when
	// set, is used for the recently-finished query instead; the original
	// deployment shipped two distinct keys.
	APIKey     string        `mapstructure:"api_key"`
	PastAPIKey string        `mapstructure:"past_api_key"`
	Window     time.Duration `mapstructure:"window"`
	Limit      int           `mapstructure:"limit"`
}

// PastKey returns the key for the recently-finished query, falling back to
// the primary key when no secondary key is configured.
func (c ClistConfig) PastKey() string {
	if c.PastAPIKey != "" {
		return c.PastAPIKey
	}
	return c.APIKey
}

type YouTubeConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	MaxResults int    `mapstructure:"max_results"`
	// Playlists maps a lower-cased platform name to the solution playlist
	// for that platform. Platforms without an entry fall back to a generic
	// video search.
	Playlists map[string]string `mapstructure:"playlists"`
}

type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors"`
	// CountdownTick controls how often countdowns are recomputed. Minute
	// granularity matches the display format.
	CountdownTick time.Duration `mapstructure:"countdown_tick"`
	// StatusTimeout is how long transient status messages stay visible.
	StatusTimeout time.Duration `mapstructure:"status_timeout"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

type BrowserConfig struct {
	// Openers lists candidate commands per OS; the first one found on PATH
	// wins. DefaultOpener is the final fallback.
	Darwin        []string `mapstructure:"darwin"`
	Linux         []string `mapstructure:"linux"`
	Windows       []string `mapstructure:"windows"`
	DefaultOpener string   `mapstructure:"default_opener"`
}

type KeyConfig struct {
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Quit          string `mapstructure:"quit"`
	Refresh       string `mapstructure:"refresh"`
	Search        string `mapstructure:"search"`
	Bookmark      string `mapstructure:"bookmark"`
	BookmarksOnly string `mapstructure:"bookmarks_only"`
	Open          string `mapstructure:"open"`
	Solution      string `mapstructure:"solution"`
	SwitchBucket  string `mapstructure:"switch_bucket"`
	Help          string `mapstructure:"help"`
	Back          string `mapstructure:"back"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	logPath := filepath.Join(homeDir, ".contesthub", "contesthub.log")

	return &Config{
		Codeforces: CodeforcesConfig{
			BaseURL: "https://codeforces.com/api",
		},
		Clist: ClistConfig{
			BaseURL: "https://clist.by/api/v2",
			Window:  30 * 24 * time.Hour,
			Limit:   100,
		},
		YouTube: YouTubeConfig{
			BaseURL:    "https://www.googleapis.com/youtube/v3",
			MaxResults: 50,
			Playlists: map[string]string{
				"codeforces": "PLcXpkI9A-RZLUfBSNp-YQBCOezZKbDSgB",
			},
		},
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "contesthub/1.0 (github.com/contesthub/contesthub)",
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#5B8DEF",
				Secondary: "#4ECDC4",
				Accent:    "#FFE66D",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#EF4444",
				Success:   "#10B981",
			},
			CountdownTick: time.Minute,
			StatusTimeout: 4 * time.Second,
		},
		Browser: BrowserConfig{
			Darwin:        []string{"open"},
			Linux:         []string{"xdg-open", "sensible-browser", "x-www-browser"},
			Windows:       []string{"start"},
			DefaultOpener: getDefaultOpener(),
		},
		Keys: KeyConfig{
			Bindings: KeyBindings{
				Quit:          "q",
				Refresh:       "r",
				Search:        "/",
				Bookmark:      "b",
				BookmarksOnly: "B",
				Open:          "enter",
				Solution:      "w",
				SwitchBucket:  "tab",
				Help:          "?",
				Back:          "esc",
			},
		},
		Log: LogConfig{
			Level: "info",
			File:  logPath,
		},
	}
}

func getDefaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "linux":
		return "xdg-open"
	case "windows":
		return "start"
	default:
		return "open"
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("codeforces", cfg.Codeforces)
	v.SetDefault("clist", cfg.Clist)
	v.SetDefault("youtube", cfg.YouTube)
	v.SetDefault("http", cfg.HTTP)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("browser", cfg.Browser)
	v.SetDefault("keys", cfg.Keys)
	v.SetDefault("log", cfg.Log)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "contesthub")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// Credentials are expected from the environment in most setups and must
	// never be committed to a config file that ships anywhere.
	v.SetEnvPrefix("CONTESTHUB")
	v.AutomaticEnv()
	_ = v.BindEnv("clist.username", "CONTESTHUB_CLIST_USERNAME")
	_ = v.BindEnv("clist.api_key", "CONTESTHUB_CLIST_API_KEY")
	_ = v.BindEnv("clist.past_api_key", "CONTESTHUB_CLIST_PAST_API_KEY")
	_ = v.BindEnv("youtube.api_key", "CONTESTHUB_YOUTUBE_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	config.Log.File = expandPath(config.Log.File)

	return &config, nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Convert durations to strings for TOML readability
	clistCfg := map[string]interface{}{
		"base_url":     config.Clist.BaseURL,
		"username":     config.Clist.Username,
		"api_key":      config.Clist.APIKey,
		"past_api_key": config.Clist.PastAPIKey,
		"window":       config.Clist.Window.String(),
		"limit":        config.Clist.Limit,
	}

	httpCfg := map[string]interface{}{
		"timeout":    config.HTTP.Timeout.String(),
		"user_agent": config.HTTP.UserAgent,
	}

	uiCfg := map[string]interface{}{
		"colors":         config.UI.Colors,
		"countdown_tick": config.UI.CountdownTick.String(),
		"status_timeout": config.UI.StatusTimeout.String(),
	}

	v.Set("codeforces", config.Codeforces)
	v.Set("clist", clistCfg)
	v.Set("youtube", config.YouTube)
	v.Set("http", httpCfg)
	v.Set("ui", uiCfg)
	v.Set("browser", config.Browser)
	v.Set("keys", config.Keys)
	v.Set("log", config.Log)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	cfg := defaultConfig()
	// A generated file should show the expected shape without leaking
	// whatever credentials happen to be in the environment.
	cfg.Clist.Username = ""
	cfg.Clist.APIKey = ""
	cfg.YouTube.APIKey = ""
	return Save(cfg, path)
}
