package config

import "time"

// Config is the root configuration for the analyzer.
type Config struct {
	Database  DBConfig        `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// DBConfig holds the PostgreSQL connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	UploadMaxBytes  int64         `yaml:"upload_max_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// AnalyticsConfig holds aggregation parameters.
type AnalyticsConfig struct {
	Window      int `yaml:"window"`       // moving-average window (samples)
	TopProducts int `yaml:"top_products"` // product series on the dashboard
	Bins        int `yaml:"bins"`         // histogram bin count
	RankSize    int `yaml:"rank_size"`    // states per geographic ranking
}
