// Package config loads and validates YAML configuration for the analyzer
// binaries. Values of the form ${VAR} are expanded from the environment
// before parsing.
package config
