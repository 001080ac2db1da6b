package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// PluginsOptions holds the top-level configuration for the plugin system.
type PluginsOptions struct {
	// Enabled controls whether the plugin system is enabled. With it off
	// the process still starts, serving an empty tool set.
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	// Entries holds per-plugin configuration, keyed by provider id
	// (e.g. "sales", "inventory", "forecast").
	Entries map[string]PluginEntryConfig `json:"entries" mapstructure:"entries"`
}

// PluginEntryConfig holds per-plugin configuration.
type PluginEntryConfig struct {
	// Enabled disables a single provider when set to false. A nil value
	// means enabled.
	Enabled *bool `json:"enabled,omitempty" mapstructure:"enabled"`
	// Config carries provider-specific settings, passed through opaque.
	Config map[string]interface{} `json:"config,omitempty" mapstructure:"config"`
}

// NewPluginsOptions returns a new instance of PluginsOptions.
func NewPluginsOptions() *PluginsOptions {
	return &PluginsOptions{
		Enabled: true,
		Entries: make(map[string]PluginEntryConfig),
	}
}

// EntryEnabled reports whether the provider with the given id is enabled.
func (o *PluginsOptions) EntryEnabled(id string) bool {
	if o == nil || !o.Enabled {
		return false
	}
	entry, ok := o.Entries[id]
	if !ok || entry.Enabled == nil {
		return true
	}
	return *entry.Enabled
}

// EntryConfig returns the opaque config map for the given provider id.
func (o *PluginsOptions) EntryConfig(id string) map[string]interface{} {
	if o == nil {
		return nil
	}
	return o.Entries[id].Config
}

// Validate checks PluginsOptions fields.
func (o *PluginsOptions) Validate() []error {
	var errs []error

	for id := range o.Entries {
		if id == "" {
			errs = append(errs, fmt.Errorf("plugins.entries contains an empty provider id"))
		}
	}

	return errs
}

// AddFlags adds the PluginsOptions flags to the given flag set.
func (o *PluginsOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Enabled, "plugins.enabled", o.Enabled,
		"Enable the plugin system. When disabled the server starts with an empty tool set.")
}
