package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.HTTP = HTTPConfig{
		Timeout:   5 * time.Second,
		UserAgent: "contesthub-test/1.0",
	}
	cfg.Clist.Username = "tester"
	cfg.Clist.APIKey = "test-key"
	cfg.YouTube.APIKey = "test-key"
	cfg.Log.Level = "off"
	cfg.Log.File = ""
	return cfg
}
