// Package mcp adapts the composed tool set onto the Model Context
// Protocol. It is the process's outward-facing tool transport: the
// composer installs descriptors through RegisterTool, and Run exposes
// them over stdio or streamable HTTP.
package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	genericoptions "github.com/retailmesh/storemind/internal/pkg/options"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin"
	"github.com/retailmesh/storemind/pkg/logger"
	jsonutil "github.com/retailmesh/storemind/pkg/utils/json"
)

// Config is the mcp module configuration.
type Config struct {
	// Name and Version identify the server to MCP clients.
	Name    string
	Version string
	// Transport is "stdio" or "http".
	Transport string
	// Addr is the listen address for the http transport.
	Addr string
}

// CompletedConfig is a Config with defaults filled in.
type CompletedConfig struct {
	*Config
}

// Complete fills in any fields not set that are required to have valid
// data.
func (c *Config) Complete() CompletedConfig {
	if c.Name == "" {
		c.Name = "storemind"
	}
	if c.Version == "" {
		c.Version = "0.0.0"
	}
	if c.Transport == "" {
		c.Transport = genericoptions.MCPTransportHTTP
	}
	return CompletedConfig{c}
}

// New creates the mcp module from the completed configuration.
func (c CompletedConfig) New() (*Module, error) {
	switch c.Transport {
	case genericoptions.MCPTransportStdio, genericoptions.MCPTransportHTTP:
	default:
		return nil, fmt.Errorf("unknown mcp transport %q", c.Transport)
	}

	s := server.NewMCPServer(
		c.Name,
		c.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	return &Module{
		cfg:   c.Config,
		mcp:   s,
		names: make(map[string]string),
	}, nil
}

// Module is the MCP tool transport.
type Module struct {
	cfg *Config
	mcp *server.MCPServer

	mu sync.Mutex
	// names maps registered tool name to owning provider id.
	names map[string]string

	httpSrv *server.StreamableHTTPServer
}

var _ plugin.ToolTransport = (*Module)(nil)

// RegisterTool installs one tool descriptor on the MCP server. A name
// collision is logged and the later registration wins, mirroring the
// server's own replace semantics.
func (m *Module) RegisterTool(d plugin.ToolDescriptor) {
	m.mu.Lock()
	if prev, ok := m.names[d.Name]; ok {
		logger.Warn("[MCP] tool %q from provider %q replaces the one from provider %q",
			d.Name, d.ProviderID, prev)
	}
	m.names[d.Name] = d.ProviderID
	m.mu.Unlock()

	m.mcp.AddTool(buildTool(d.Definition), adaptHandler(d))
}

// ToolCount returns the number of distinct tool names registered.
func (m *Module) ToolCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.names)
}

// Run serves the configured transport. It blocks until the transport
// shuts down or fails.
func (m *Module) Run() error {
	switch m.cfg.Transport {
	case genericoptions.MCPTransportStdio:
		logger.Info("[MCP] serving %d tools on stdio", m.ToolCount())
		return server.ServeStdio(m.mcp)
	default:
		logger.Info("[MCP] serving %d tools on %s", m.ToolCount(), m.cfg.Addr)
		m.mu.Lock()
		m.httpSrv = server.NewStreamableHTTPServer(m.mcp)
		srv := m.httpSrv
		m.mu.Unlock()
		return srv.Start(m.cfg.Addr)
	}
}

// Close shuts the http transport down. Stdio needs no teardown.
func (m *Module) Close() error {
	m.mu.Lock()
	srv := m.httpSrv
	m.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(context.Background())
}

// buildTool converts a tool definition into the MCP tool schema.
func buildTool(def plugin.ToolDefinition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, p := range def.Parameters {
		var propOpts []mcp.PropertyOption
		if p.Description != "" {
			propOpts = append(propOpts, mcp.Description(p.Description))
		}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}

		switch p.Type {
		case "number":
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		case "boolean":
			opts = append(opts, mcp.WithBoolean(p.Name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(def.Name, opts...)
}

// adaptHandler wraps a provider tool handler into the MCP handler shape.
// Handler errors come back as tool errors, not protocol errors, so a
// misbehaving tool never tears down the session.
func adaptHandler(d plugin.ToolDescriptor) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := d.Definition.Handler(ctx, req.GetArguments())
		if err != nil {
			logger.Warn("[MCP] tool %q (provider %q) failed: %v", d.Name, d.ProviderID, err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := jsonutil.MarshalString(result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(payload), nil
	}
}
