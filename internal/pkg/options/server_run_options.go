package options

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/retailmesh/storemind/internal/pkg/server"
)

// ServerRunOptions contains the options while running the generic http
// api server.
type ServerRunOptions struct {
	// BindAddress is the IP address on which to serve.
	BindAddress string `json:"bind_address" mapstructure:"bind_address"`
	// BindPort is the port on which to serve.
	BindPort int `json:"bind_port" mapstructure:"bind_port"`
	// Mode is the gin run mode: debug, test or release.
	Mode string `json:"mode" mapstructure:"mode"`
	// Healthz controls installation of the /healthz route.
	Healthz bool `json:"healthz" mapstructure:"healthz"`
	// EnableProfiling controls installation of the pprof routes.
	EnableProfiling bool `json:"profiling" mapstructure:"profiling"`
	// Middlewares lists the generic middlewares to install, by name.
	Middlewares []string `json:"middlewares" mapstructure:"middlewares"`
}

// NewServerRunOptions creates a ServerRunOptions with default values.
func NewServerRunOptions() *ServerRunOptions {
	defaults := server.NewConfig()

	return &ServerRunOptions{
		BindAddress:     "127.0.0.1",
		BindPort:        8080,
		Mode:            defaults.Mode,
		Healthz:         defaults.Healthz,
		EnableProfiling: defaults.EnableProfiling,
		Middlewares:     defaults.Middlewares,
	}
}

// ApplyTo applies the run options to the given generic server config.
func (o *ServerRunOptions) ApplyTo(c *server.Config) error {
	c.Mode = o.Mode
	c.Healthz = o.Healthz
	c.EnableProfiling = o.EnableProfiling
	c.Middlewares = o.Middlewares
	c.InsecureServing = &server.InsecureServingInfo{
		Address: net.JoinHostPort(o.BindAddress, strconv.Itoa(o.BindPort)),
	}

	return nil
}

// Validate checks the ServerRunOptions for correctness.
func (o *ServerRunOptions) Validate() []error {
	var errs []error

	if o.BindPort < 1 || o.BindPort > 65535 {
		errs = append(errs, fmt.Errorf("serving.bind_port %d must be between 1 and 65535", o.BindPort))
	}
	switch o.Mode {
	case "debug", "test", "release":
	default:
		errs = append(errs, fmt.Errorf("serving.mode %q must be one of debug, test, release", o.Mode))
	}

	return errs
}

// AddFlags adds the ServerRunOptions flags to the given flag set.
func (o *ServerRunOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BindAddress, "serving.bind-address", o.BindAddress,
		"The IP address on which to serve the REST endpoints.")
	fs.IntVar(&o.BindPort, "serving.bind-port", o.BindPort,
		"The port on which to serve the REST endpoints.")
	fs.StringVar(&o.Mode, "serving.mode", o.Mode,
		"Start the server in the specified mode, one of: debug, test, release.")
	fs.BoolVar(&o.Healthz, "serving.healthz", o.Healthz,
		"Install the /healthz route.")
	fs.BoolVar(&o.EnableProfiling, "serving.profiling", o.EnableProfiling,
		"Install the pprof routes under /debug/pprof.")
	fs.StringSliceVar(&o.Middlewares, "serving.middlewares", o.Middlewares,
		"List of generic middlewares to install, comma separated.")
}
