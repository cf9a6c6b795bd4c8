/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

// parseConfig runs the command's flag and config resolution without serving.
func parseConfig(t *testing.T, args ...string) (*Config, error) {
	t.Helper()

	cfg := &Config{}
	cmd := newCmd(cfg)
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	cmd.SetArgs(append([]string{}, args...))

	return cfg, cmd.Execute()
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(t)
	if err != nil {
		t.Fatalf("Execute() = %v", err)
	}

	if cfg.port != 8080 || cfg.bind != "0.0.0.0" {
		t.Errorf("listen = %s:%d", cfg.bind, cfg.port)
	}
	if cfg.guesses != 6 || cfg.placeholder != "-" {
		t.Errorf("guesses %d placeholder %q", cfg.guesses, cfg.placeholder)
	}
	if !slices.Equal(cfg.rooms, []string{"Alpha", "Bravo", "Charlie", "Delta"}) {
		t.Errorf("rooms = %v", cfg.rooms)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("HANGMAN_PORT", "9090")
	t.Setenv("HANGMAN_ROOMS", "Red,Blue")
	t.Setenv("HANGMAN_UTC_OFFSET", "-5")

	cfg, err := parseConfig(t)
	if err != nil {
		t.Fatalf("Execute() = %v", err)
	}

	if cfg.port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.port)
	}
	if !slices.Equal(cfg.rooms, []string{"Red", "Blue"}) {
		t.Errorf("rooms = %v", cfg.rooms)
	}
	if cfg.utcOffset != -5 {
		t.Errorf("utc offset = %g", cfg.utcOffset)
	}
}

func TestConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("HANGMAN_PORT", "9090")

	cfg, err := parseConfig(t, "--port", "7070")
	if err != nil {
		t.Fatalf("Execute() = %v", err)
	}

	if cfg.port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.port)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.json")
	data := `{"guesses": 8, "placeholder": "*", "rooms": ["One", "Two"], "log-file": "game.log"}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HANGMAN_GUESSES", "3")

	cfg, err := parseConfig(t, "--config", path)
	if err != nil {
		t.Fatalf("Execute() = %v", err)
	}

	if cfg.guesses != 3 {
		t.Errorf("guesses = %d, want env value 3", cfg.guesses)
	}
	if cfg.placeholder != "*" || cfg.logFile != "game.log" {
		t.Errorf("placeholder %q log file %q", cfg.placeholder, cfg.logFile)
	}
	if !slices.Equal(cfg.rooms, []string{"One", "Two"}) {
		t.Errorf("rooms = %v", cfg.rooms)
	}
}

func TestConfigFileMissing(t *testing.T) {
	if _, err := parseConfig(t, "--config", filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing config file accepted")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{port: 8080, guesses: 6, placeholder: "-", rooms: []string{"Alpha"}}
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"port zero", func(c *Config) { c.port = 0 }},
		{"port too high", func(c *Config) { c.port = 70000 }},
		{"tls cert only", func(c *Config) { c.tlsCert = "cert.pem" }},
		{"offset", func(c *Config) { c.utcOffset = 15 }},
		{"no guesses", func(c *Config) { c.guesses = 0 }},
		{"empty placeholder", func(c *Config) { c.placeholder = "" }},
		{"long placeholder", func(c *Config) { c.placeholder = "--" }},
		{"letter placeholder", func(c *Config) { c.placeholder = "x" }},
		{"no rooms", func(c *Config) { c.rooms = nil }},
		{"bad room", func(c *Config) { c.rooms = []string{"a/b"} }},
		{"duplicate room", func(c *Config) { c.rooms = []string{"Alpha", "Alpha"} }},
	}

	if err := valid().validate(); err != nil {
		t.Fatalf("baseline config invalid: %v", err)
	}

	for _, tt := range tests {
		cfg := valid()
		tt.modify(cfg)

		if err := cfg.validate(); err == nil {
			t.Errorf("%s: validate() succeeded", tt.name)
		}
	}
}

func TestConfigLocation(t *testing.T) {
	cfg := &Config{utcOffset: 5.5}

	_, offset := time.Now().In(cfg.location()).Zone()
	if offset != 19800 {
		t.Errorf("offset = %d, want 19800", offset)
	}
}

func TestConfigSettings(t *testing.T) {
	cfg := &Config{placeholder: "_", guesses: 4}

	s := cfg.settings()
	if s.Placeholder != '_' || s.InitialGuesses != 4 || s.Logf == nil {
		t.Errorf("settings = %+v", s)
	}
}

func TestEnsureSecret(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ensureSecret(); err != nil {
		t.Fatal(err)
	}
	if len(cfg.secret) != 64 {
		t.Errorf("secret length = %d", len(cfg.secret))
	}

	cfg = &Config{secret: "kept"}
	_ = cfg.ensureSecret()
	if cfg.secret != "kept" {
		t.Errorf("configured secret replaced")
	}
}
