package plugin

import (
	"context"
	"fmt"

	"github.com/retailmesh/storemind/pkg/logger"
)

// Composer wires registered providers into the runtime: it drives each
// provider's ConfigureServices hook against the shared container, then
// initializes the survivors, then installs the aggregated tool set into
// the outward-facing transport.
//
// Composition is two-phase by contract: service configuration completes
// for all providers before any tool is registered with the transport,
// because a tool implementation may depend on a service contributed by a
// different provider. Collapsing the phases would reintroduce
// order-dependent missing-dependency failures.
type Composer struct {
	transport ToolTransport
}

// NewComposer creates a Composer installing tools into the given
// transport. A nil transport aggregates without installing, which is
// what the tests use.
func NewComposer(transport ToolTransport) *Composer {
	return &Composer{transport: transport}
}

// Compose runs both phases over the registry in insertion order and
// returns the final aggregated tool set. A provider whose hook fails or
// panics is logged and dropped — its tools never reach the transport —
// without affecting any other provider.
func (cp *Composer) Compose(ctx context.Context, reg *Registry, c *Container) []ToolDescriptor {
	providers := reg.List()
	dropped := make(map[string]bool)

	// Phase 1: configure every provider against the shared container.
	for _, p := range providers {
		id := p.Metadata().ID
		if err := configureProvider(p, c); err != nil {
			logger.Warn("[Plugin] provider %q service configuration failed, dropping its contribution: %v", id, err)
			dropped[id] = true
		}
	}

	// Initialize survivors. Cross-provider dependencies resolve here,
	// after every ConfigureServices hook has run.
	for _, p := range providers {
		id := p.Metadata().ID
		if dropped[id] {
			continue
		}
		if err := initProvider(ctx, p); err != nil {
			logger.Warn("[Plugin] provider %q initialization failed, dropping its contribution: %v", id, err)
			dropped[id] = true
		}
	}

	// Phase 2: flatten and install the tool set.
	var tools []ToolDescriptor
	for _, d := range reg.AllToolOperations() {
		if dropped[d.ProviderID] {
			continue
		}
		tools = append(tools, d)
		if cp.transport != nil {
			cp.transport.RegisterTool(d)
		}
	}

	logger.Info("[Plugin] composition complete: %d providers configured, %d dropped, %d tools installed",
		len(providers)-len(dropped), len(dropped), len(tools))
	return tools
}

func configureProvider(p Provider, c *Container) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ConfigureServices panicked: %v", r)
		}
	}()
	return p.ConfigureServices(c)
}

func initProvider(ctx context.Context, p Provider) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Init panicked: %v", r)
		}
	}()
	return p.Init(ctx)
}
