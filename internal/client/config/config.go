package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"
)

// UI front ends.
const (
	UIRepl = "repl"
	UITui  = "tui"
)

// Config holds runtime settings for the textfix client.
//
// Fields:
//   - ServerURL: base URL of the correction backend.
//   - DataDir: directory for the local database and log file.
//   - ExportDir: where transcript exports are written.
//   - RequestTimeout: per-request deadline for API calls.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - UI: front end, "repl" or "tui".
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL           string
	DataDir             string
	ExportDir           string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	UI                  string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.DataDir = "~/.textfix"
	c.ExportDir = "exports"
	c.RequestTimeout = 30 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.UI = UIRepl
	c.LogLevel = "info"
}

// DatabasePath is the sqlite file inside dataDir.
func (c *Config) DatabasePath(dataDir string) string {
	return filepath.Join(dataDir, "textfix.db")
}

// LogPath is the client log file inside dataDir. Stdout is reserved for
// the interactive front end.
func (c *Config) LogPath(dataDir string) string {
	return filepath.Join(dataDir, "textfix.log")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	if c.UI != UIRepl && c.UI != UITui {
		return fmt.Errorf("unknown ui %q, expected %q or %q", c.UI, UIRepl, UITui)
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server url %q", c.ServerURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval)
	}
	return nil
}
