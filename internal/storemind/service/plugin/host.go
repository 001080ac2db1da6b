package plugin

import (
	"context"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/retailmesh/storemind/pkg/logger"
)

// Phase is the startup state of the plugin subsystem.
type Phase int

const (
	PhaseUnstarted Phase = iota
	PhaseDiscovering
	PhaseComposing
	PhaseBindingRoutes
	PhaseReady
)

var phaseNames = map[Phase]string{
	PhaseUnstarted:     "Unstarted",
	PhaseDiscovering:   "Discovering",
	PhaseComposing:     "Composing",
	PhaseBindingRoutes: "BindingRoutes",
	PhaseReady:         "Ready",
}

// String returns the human-readable name of the phase.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Host drives the one-shot startup pipeline of the plugin subsystem:
// discovery, registry population, composition and controller binding,
// in that order, exactly once per process. Transitions are
// one-directional and there is no failed terminal state — per-provider
// failures are absorbed along the way, so the host always reaches Ready,
// possibly with zero providers.
//
// Construction timeouts are intentionally unbounded; Bootstrap takes a
// context so a caller can impose a deadline later.
type Host struct {
	discoverer *Discoverer
	registry   *Registry
	composer   *Composer
	binder     *Binder
	container  *Container

	mu       sync.RWMutex
	phase    Phase
	tools    []ToolDescriptor
	bound    int
}

// HostConfig holds the configuration for creating a Host.
type HostConfig struct {
	// Modules is the in-tree module list to discover providers from.
	Modules *InTreeRegistry
	// Transport receives the aggregated tool set. May be nil.
	Transport ToolTransport
	// Container is the shared service container. Created when nil.
	Container *Container
}

// CompletedHostConfig is the validated and completed host configuration.
type CompletedHostConfig struct {
	*HostConfig
}

// Complete fills in any fields not set that are required to have valid
// data and can be derived from other fields.
func (c *HostConfig) Complete() CompletedHostConfig {
	if c.Modules == nil {
		c.Modules = NewInTreeRegistry()
	}
	if c.Container == nil {
		c.Container = NewContainer()
	}
	return CompletedHostConfig{c}
}

// New creates a new Host from the completed configuration.
func (c CompletedHostConfig) New() *Host {
	return &Host{
		discoverer: NewDiscoverer(c.Modules),
		registry:   NewRegistry(),
		composer:   NewComposer(c.Transport),
		binder:     NewBinder(),
		container:  c.Container,
		phase:      PhaseUnstarted,
	}
}

// Bootstrap runs the whole pipeline. Calling it a second time is a usage
// error. A nil routes group skips binding (headless/tool-only hosting).
func (h *Host) Bootstrap(ctx context.Context, routes *gin.RouterGroup) error {
	h.mu.Lock()
	if h.phase != PhaseUnstarted {
		h.mu.Unlock()
		return fmt.Errorf("plugin host already started (phase %s)", h.phase)
	}
	h.phase = PhaseDiscovering
	h.mu.Unlock()

	providers := h.discoverer.Discover()
	for _, p := range providers {
		h.registry.Register(p)
	}

	h.setPhase(PhaseComposing)
	tools := h.composer.Compose(ctx, h.registry, h.container)

	h.setPhase(PhaseBindingRoutes)
	bound := 0
	if routes != nil {
		bound = h.binder.Bind(h.registry.List(), routes)
	}

	h.mu.Lock()
	h.tools = tools
	h.bound = bound
	h.phase = PhaseReady
	h.mu.Unlock()

	logger.Info("[Plugin] host ready: %d providers, %d tools, %d controller modules",
		h.registry.Len(), len(tools), bound)
	return nil
}

func (h *Host) setPhase(p Phase) {
	h.mu.Lock()
	h.phase = p
	h.mu.Unlock()
}

// Phase returns the current startup phase.
func (h *Host) Phase() Phase {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.phase
}

// Registry returns the underlying provider registry.
func (h *Host) Registry() *Registry {
	return h.registry
}

// Container returns the shared service container.
func (h *Host) Container() *Container {
	return h.container
}

// Tools returns a copy of the aggregated tool set installed at
// composition time. Empty before Ready.
func (h *Host) Tools() []ToolDescriptor {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]ToolDescriptor, len(h.tools))
	copy(result, h.tools)
	return result
}

// BoundControllers returns the number of controller modules bound.
func (h *Host) BoundControllers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.bound
}
