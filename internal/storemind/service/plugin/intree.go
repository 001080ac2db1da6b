package plugin

// InTreeRegistry is the list of code modules the discoverer scans. Each
// plugin package registers its provider factories here at wiring time,
// so the host never needs compile-time knowledge of which providers
// exist beyond linking the modules in.
//
// Modules keep the per-package grouping of providers: discovery
// enumerates modules first, then factories within a module, which fixes
// the first-discovered order.
type InTreeRegistry struct {
	modules []ModuleEntry
}

// ModuleEntry is one linked-in plugin module.
type ModuleEntry struct {
	// Name identifies the module in logs.
	Name string
	// Probe verifies the module is usable (e.g. its driver is present).
	// A nil probe always passes; a failing probe skips the whole module.
	Probe func() error
	// Factories default-construct the module's providers, in the
	// module's declared order.
	Factories []ProviderFactory
}

// NewInTreeRegistry creates an empty in-tree module registry.
func NewInTreeRegistry() *InTreeRegistry {
	return &InTreeRegistry{}
}

// AddModule appends a module with its provider factories.
func (r *InTreeRegistry) AddModule(name string, probe func() error, factories ...ProviderFactory) {
	r.modules = append(r.modules, ModuleEntry{
		Name:      name,
		Probe:     probe,
		Factories: factories,
	})
}

// Modules returns the registered modules in registration order.
func (r *InTreeRegistry) Modules() []ModuleEntry {
	return r.modules
}

// Len returns the number of registered modules.
func (r *InTreeRegistry) Len() int {
	return len(r.modules)
}
