package options

import (
	genericoptions "github.com/retailmesh/storemind/internal/pkg/options"
	"github.com/retailmesh/storemind/internal/pkg/server"
	"github.com/retailmesh/storemind/pkg/utils/cliflag"
	"github.com/retailmesh/storemind/pkg/utils/json"
)

type Options struct {
	GenericServerRunOptions *genericoptions.ServerRunOptions `json:"serving"  mapstructure:"serving"`
	MCPOptions              *genericoptions.MCPOptions       `json:"mcp"      mapstructure:"mcp"`
	PluginOptions           *genericoptions.PluginsOptions   `json:"plugins"  mapstructure:"plugins"`
	StoreOptions            *genericoptions.StoreOptions     `json:"store"    mapstructure:"store"`
}

func NewOptions() *Options {
	return &Options{
		GenericServerRunOptions: genericoptions.NewServerRunOptions(),
		MCPOptions:              genericoptions.NewMCPOptions(),
		PluginOptions:           genericoptions.NewPluginsOptions(),
		StoreOptions:            genericoptions.NewStoreOptions(),
	}
}

func (o *Options) Flags() (fss cliflag.NamedFlagSets) {
	o.GenericServerRunOptions.AddFlags(fss.FlagSet("serving"))
	o.MCPOptions.AddFlags(fss.FlagSet("mcp"))
	o.PluginOptions.AddFlags(fss.FlagSet("plugins"))
	o.StoreOptions.AddFlags(fss.FlagSet("store"))
	return fss
}

// ApplyTo applies the run options to the method receiver and returns self.
func (o *Options) ApplyTo(c *server.Config) error {
	return o.GenericServerRunOptions.ApplyTo(c)
}

// Validate checks all the option groups.
func (o *Options) Validate() []error {
	var errs []error

	errs = append(errs, o.GenericServerRunOptions.Validate()...)
	errs = append(errs, o.MCPOptions.Validate()...)
	errs = append(errs, o.PluginOptions.Validate()...)
	errs = append(errs, o.StoreOptions.Validate()...)

	return errs
}

// Complete set default Options.
func (o *Options) Complete() error {
	return nil
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}
