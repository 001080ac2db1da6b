// Package builtin wires the linked-in providers into an in-tree module
// registry, honoring the per-provider enable switches and store
// configuration.
package builtin

import (
	genericoptions "github.com/retailmesh/storemind/internal/pkg/options"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin/builtin/forecast"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin/builtin/inventory"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin/builtin/sales"
	"github.com/retailmesh/storemind/pkg/logger"
)

// NewInTreeRegistry builds the module registry for the built-in
// providers. Disabled providers are simply not added, which keeps the
// discovered order stable for whatever remains: sales, inventory,
// forecast.
func NewInTreeRegistry(plugins *genericoptions.PluginsOptions, stores *genericoptions.StoreOptions) *plugin.InTreeRegistry {
	r := plugin.NewInTreeRegistry()

	if plugins.EntryEnabled(sales.ProviderID) {
		cfg := &sales.Config{
			StoreType: stores.Type,
			DBPath:    pathOverride(plugins.EntryConfig(sales.ProviderID), "db_path", stores.SalesDBPath),
		}
		r.AddModule("retail-sales", nil, func() (plugin.Provider, error) {
			return sales.New(cfg)
		})
	} else {
		logger.Info("[Builtin] sales provider disabled by configuration")
	}

	if plugins.EntryEnabled(inventory.ProviderID) {
		cfg := &inventory.Config{
			StoreType: stores.Type,
			DBPath:    pathOverride(plugins.EntryConfig(inventory.ProviderID), "db_path", stores.InventoryDBPath),
		}
		r.AddModule("retail-inventory", nil, func() (plugin.Provider, error) {
			return inventory.New(cfg)
		})
	} else {
		logger.Info("[Builtin] inventory provider disabled by configuration")
	}

	if plugins.EntryEnabled(forecast.ProviderID) {
		r.AddModule("retail-forecast", nil, func() (plugin.Provider, error) {
			return forecast.New()
		})
	} else {
		logger.Info("[Builtin] forecast provider disabled by configuration")
	}

	return r
}

// pathOverride picks the per-plugin db_path override when present,
// falling back to the store-wide default.
func pathOverride(cfg map[string]interface{}, key, fallback string) string {
	if raw, ok := cfg[key]; ok {
		if s, ok := raw.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}
