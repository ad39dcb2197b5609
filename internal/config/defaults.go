package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultDBPort          = 5432
	DefaultDBSSLMode       = "prefer"
	DefaultMaxConns        = 10
	DefaultMinConns        = 2
	DefaultServerPort      = 8080
	DefaultUploadMaxBytes  = 64 << 20 // 64 MiB survey file cap
	DefaultShutdownTimeout = 10 * time.Second
	DefaultWindow          = 30
	DefaultTopProducts     = 4
	DefaultBins            = 30
	DefaultRankSize        = 5
)

func (c *Config) applyDefaults() {
	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.UploadMaxBytes == 0 {
		c.Server.UploadMaxBytes = DefaultUploadMaxBytes
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	// Analytics defaults
	if c.Analytics.Window == 0 {
		c.Analytics.Window = DefaultWindow
	}
	if c.Analytics.TopProducts == 0 {
		c.Analytics.TopProducts = DefaultTopProducts
	}
	if c.Analytics.Bins == 0 {
		c.Analytics.Bins = DefaultBins
	}
	if c.Analytics.RankSize == 0 {
		c.Analytics.RankSize = DefaultRankSize
	}
}
