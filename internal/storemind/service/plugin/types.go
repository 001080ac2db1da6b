package plugin

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Metadata is the immutable identity of a provider.
type Metadata struct {
	// ID is the globally unique provider id. Must be non-empty;
	// DNS-compatible (lowercase, hyphens, no spaces).
	ID string
	// Name is the human readable provider name.
	Name string
	// Version is the provider version string.
	Version string
	// Description is a brief description of what the provider exposes.
	Description string
	// Author identifies who maintains the provider.
	Author string
	// RoutePrefix namespaces the provider's REST routes. Advisory: the
	// routing layer applies it, the core only carries it.
	RoutePrefix string
}

// Validate checks the metadata invariants.
func (m Metadata) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("provider metadata has an empty id")
	}
	return nil
}

// Provider is the capability contract every plugin implements. A
// provider is instantiated once by discovery, registered once into the
// registry and initialized once by the composer; it is never destroyed
// or reconfigured during the process lifetime.
type Provider interface {
	// Metadata returns the provider's immutable identity.
	Metadata() Metadata

	// ConfigureServices registers the provider's service contributions
	// into the shared container. Called exactly once, before any tool is
	// installed into the transport, for every provider.
	ConfigureServices(c *Container) error

	// Tools enumerates the tool operations this provider exposes, in the
	// provider's own declared order.
	Tools() []ToolDefinition

	// Controller returns the REST controller module this provider wants
	// bound, or nil for a tool-only provider. The module is a label plus
	// registrar, never an owned resource; providers may share one.
	Controller() *ControllerModule

	// Init completes provider setup. Called after ConfigureServices has
	// run for all providers, so cross-provider dependencies can be
	// resolved from the container here.
	Init(ctx context.Context) error
}

// ProviderFactory default-constructs a provider instance.
type ProviderFactory func() (Provider, error)

// ControllerModule is the routing layer's "application part": a named
// route registrar. The binder mounts each distinct module name exactly
// once, so a module shared by several providers is attached a single
// time and its registrar is expected to install every route the module
// owns.
type ControllerModule struct {
	// Name identifies the module. Binding is deduplicated on it.
	Name string
	// Register installs the module's routes into the given group.
	Register func(rg *gin.RouterGroup)
}
