package plugin

import (
	"sync"

	"github.com/retailmesh/storemind/pkg/logger"
)

// Registry is the authoritative collection of accepted providers: a
// mapping from provider id to provider, insertion-ordered for
// deterministic enumeration. It is populated once during the discovery
// phase and treated as frozen afterwards; it never shrinks.
//
// Thread-safe: mutations are guarded by a mutex, so reads after the
// Ready transition may come from any number of request handlers.
type Registry struct {
	mu sync.RWMutex

	// providers holds accepted providers, keyed by provider id.
	providers map[string]Provider

	// order preserves the registration order of provider ids.
	order []string
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register appends a provider to the registry. A provider whose id is
// empty or already present is rejected with a logged warning and the
// registry is left unchanged; duplicate registration is an expected,
// recoverable event, not an error, so no error is returned. The first
// registered provider wins.
//
// Returns true when the provider was accepted.
func (r *Registry) Register(p Provider) bool {
	meta := p.Metadata()
	if err := meta.Validate(); err != nil {
		logger.Warn("[Plugin] rejecting provider %q: %v", meta.Name, err)
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[meta.ID]; exists {
		logger.Warn("[Plugin] provider id %q already registered, rejecting duplicate %q", meta.ID, meta.Name)
		return false
	}

	r.providers[meta.ID] = p
	r.order = append(r.order, meta.ID)
	return true
}

// Get returns the provider registered under the given id.
func (r *Registry) Get(id string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	return p, ok
}

// List returns a read-only snapshot of the providers in insertion order.
func (r *Registry) List() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Provider, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.providers[id])
	}
	return result
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// AllToolOperations flattens every provider's tool enumeration into
// descriptors, in registry order and, within each provider, in the
// provider's own declared order. The projection is recomputed from
// registry state on every call, so it can be re-enumerated at any time
// and two calls without an intervening registration are equal.
func (r *Registry) AllToolOperations() []ToolDescriptor {
	providers := r.List()

	var descriptors []ToolDescriptor
	for _, p := range providers {
		id := p.Metadata().ID
		for _, def := range p.Tools() {
			descriptors = append(descriptors, ToolDescriptor{
				ProviderID: id,
				Name:       def.Name,
				Definition: def,
			})
		}
	}
	return descriptors
}
