package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// MCP transport names accepted by --mcp.transport.
const (
	MCPTransportStdio = "stdio"
	MCPTransportHTTP  = "http"
)

// MCPOptions holds options for the outward-facing MCP tool transport.
type MCPOptions struct {
	// Transport selects how the MCP server is exposed: "stdio" serves
	// the process stdin/stdout pair, "http" serves streamable HTTP.
	Transport string `json:"transport" mapstructure:"transport"`
	// Addr is the listen address for the http transport.
	Addr string `json:"addr" mapstructure:"addr"`
}

// NewMCPOptions creates a default MCPOptions instance.
func NewMCPOptions() *MCPOptions {
	return &MCPOptions{
		Transport: MCPTransportHTTP,
		Addr:      "127.0.0.1:11811",
	}
}

// Validate checks the MCPOptions for correctness.
func (o *MCPOptions) Validate() []error {
	var errs []error

	switch o.Transport {
	case MCPTransportStdio, MCPTransportHTTP:
	default:
		errs = append(errs, fmt.Errorf("mcp.transport %q must be one of %s, %s",
			o.Transport, MCPTransportStdio, MCPTransportHTTP))
	}
	if o.Transport == MCPTransportHTTP && o.Addr == "" {
		errs = append(errs, fmt.Errorf("mcp.addr is required for the http transport"))
	}

	return errs
}

// AddFlags adds the MCPOptions flags to the given flag set.
func (o *MCPOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Transport, "mcp.transport", o.Transport,
		"MCP transport to expose, one of: stdio, http.")
	fs.StringVar(&o.Addr, "mcp.addr", o.Addr,
		"Listen address for the MCP http transport.")
}
