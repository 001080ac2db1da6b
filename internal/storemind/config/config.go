package config

import (
	"github.com/retailmesh/storemind/internal/storemind/options"
)

// Config is the running configuration structure of the storemind service.
type Config struct {
	*options.Options
}

// CreateConfigFromOptions creates a running configuration instance based
func CreateConfigFromOptions(opts *options.Options) (*Config, error) {
	return &Config{opts}, nil
}
