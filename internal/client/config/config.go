package config

import "time"

// Config holds runtime settings for the tdfs CLI.
type Config struct {
	ServerEndpointAddr string
	UserID             string
	UserToken          string
	RequestTimeout     time.Duration
	// LocalDB is the SQLite file of the local upload journal.
	LocalDB string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 30 * time.Second
	c.LocalDB = "tdfs.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
