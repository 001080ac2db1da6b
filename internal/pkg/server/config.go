package server

import (
	"net"
	"strconv"
)

// Config is a structure used to configure a GenericAPIServer. Its members
// are sorted roughly in order of importance for composers.
type Config struct {
	InsecureServing *InsecureServingInfo
	Mode            string
	Middlewares     []string
	Healthz         bool
	EnableProfiling bool
}

// InsecureServingInfo holds configuration of the insecure http server.
type InsecureServingInfo struct {
	Address string
}

// NewConfig returns a Config struct with the default values.
func NewConfig() *Config {
	return &Config{
		Mode:            "release",
		Middlewares:     []string{"recovery", "requestid", "cors"},
		Healthz:         true,
		EnableProfiling: false,
		InsecureServing: &InsecureServingInfo{
			Address: net.JoinHostPort("127.0.0.1", strconv.Itoa(8080)),
		},
	}
}

// CompletedConfig is the completed configuration for GenericAPIServer.
type CompletedConfig struct {
	*Config
}

// Complete fills in any fields not set that are required to have valid
// data and can be derived from other fields.
func (c *Config) Complete() CompletedConfig {
	return CompletedConfig{c}
}

// New returns a new instance of GenericAPIServer from the given config.
func (c CompletedConfig) New() (*GenericAPIServer, error) {
	s := &GenericAPIServer{
		InsecureServingInfo: c.InsecureServing,
		mode:                c.Mode,
		healthz:             c.Healthz,
		enableProfiling:     c.EnableProfiling,
		middlewares:         c.Middlewares,
	}

	initGenericAPIServer(s)

	return s, nil
}
