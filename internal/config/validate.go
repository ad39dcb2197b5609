package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.Name == "" {
		return errors.New("database.name is required")
	}
	if c.Database.User == "" {
		return errors.New("database.user is required")
	}
	if c.Database.Password == "" {
		return errors.New("database.password is required")
	}
	if c.Database.MaxConns < 1 {
		return errors.New("database.max_conns must be >= 1")
	}
	if c.Database.MinConns < 0 {
		return errors.New("database.min_conns must be >= 0")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) cannot exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.UploadMaxBytes < 1 {
		return errors.New("server.upload_max_bytes must be >= 1")
	}

	if c.Analytics.Window < 1 {
		return errors.New("analytics.window must be >= 1")
	}
	if c.Analytics.TopProducts < 1 {
		return errors.New("analytics.top_products must be >= 1")
	}
	if c.Analytics.Bins < 1 {
		return errors.New("analytics.bins must be >= 1")
	}
	if c.Analytics.RankSize < 1 {
		return errors.New("analytics.rank_size must be >= 1")
	}

	return nil
}
