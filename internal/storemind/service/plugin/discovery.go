package plugin

import (
	"fmt"

	"github.com/retailmesh/storemind/pkg/logger"
)

// Discoverer locates every available provider by walking the in-tree
// module list: module by module, factory by factory, in declaration
// order. Discovery is sequential on purpose: registry population must be
// deterministic, since insertion order drives later enumeration order
// and tie-breaking on duplicate ids.
//
// Discovery has no side effects beyond logging; registry population is a
// separate explicit step, keeping the two independently testable.
type Discoverer struct {
	modules *InTreeRegistry
}

// NewDiscoverer creates a Discoverer over the given module registry.
func NewDiscoverer(modules *InTreeRegistry) *Discoverer {
	return &Discoverer{modules: modules}
}

// Discover constructs every provider the modules contribute, in
// first-discovered order. A module whose probe fails is skipped whole
// with a logged warning; a factory that fails or panics is skipped with
// a logged warning. Neither is ever fatal to the pass.
func (d *Discoverer) Discover() []Provider {
	var providers []Provider

	for _, module := range d.modules.Modules() {
		if module.Probe != nil {
			if err := module.Probe(); err != nil {
				logger.Warn("[Plugin] module %q is not usable, skipping: %v", module.Name, err)
				continue
			}
		}

		for i, factory := range module.Factories {
			p, err := construct(factory)
			if err != nil {
				logger.Warn("[Plugin] module %q: provider %d failed to construct, skipping: %v",
					module.Name, i, err)
				continue
			}
			providers = append(providers, p)
		}
	}

	logger.Info("[Plugin] discovery pass complete: %d providers from %d modules",
		len(providers), d.modules.Len())
	return providers
}

// construct invokes a factory, converting panics into errors so a
// misbehaving provider cannot abort the discovery pass.
func construct(factory ProviderFactory) (p Provider, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("factory panicked: %v", r)
		}
	}()

	p, err = factory()
	if err == nil && p == nil {
		err = fmt.Errorf("factory returned a nil provider")
	}
	return p, err
}
