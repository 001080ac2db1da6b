// Package sales is the built-in provider for the sales history: two
// tool operations, the shared retail-v1 controller module, and the
// SalesService container binding.
package sales

import (
	"context"
	"fmt"

	"github.com/retailmesh/storemind/internal/storemind/handler/v1"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin"
	"github.com/retailmesh/storemind/internal/storemind/service/retail"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/store"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/store/boltdb"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/store/inmemory"
)

// ProviderID is the unique id of the sales provider.
const ProviderID = "sales"

// Config configures the sales provider.
type Config struct {
	// StoreType is the backend family: "memory" or "file".
	StoreType string
	// DBPath is the BoltDB file used by the file backend.
	DBPath string
}

// Provider implements plugin.Provider for the sales history.
type Provider struct {
	cfg       *Config
	container *plugin.Container
	store     store.SalesStore
	svc       retail.SalesService
}

var _ plugin.Provider = (*Provider)(nil)

// New creates the sales provider.
func New(cfg *Config) (*Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("sales provider requires a config")
	}
	return &Provider{cfg: cfg}, nil
}

// Metadata returns the provider identity.
func (p *Provider) Metadata() plugin.Metadata {
	return plugin.Metadata{
		ID:          ProviderID,
		Name:        "Sales Reporting",
		Version:     "1.0.0",
		Description: "Sales history queries over the retail estate",
		Author:      "storemind",
		RoutePrefix: "retail",
	}
}

// ConfigureServices opens the sales store, seeds it when empty and binds
// the SalesService into the container.
func (p *Provider) ConfigureServices(c *plugin.Container) error {
	var (
		s   store.SalesStore
		err error
	)
	switch p.cfg.StoreType {
	case "file":
		s, err = boltdb.Open(p.cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open sales store: %w", err)
		}
	default:
		s = inmemory.NewSalesStore()
	}

	ctx := context.Background()
	existing, err := s.List(ctx)
	if err != nil {
		s.Close()
		return fmt.Errorf("read sales store: %w", err)
	}
	if len(existing) == 0 {
		if err := s.Seed(ctx, retail.DefaultSalesRecords()); err != nil {
			s.Close()
			return fmt.Errorf("seed sales store: %w", err)
		}
	}

	svc := retail.NewSalesService(s)
	if err := c.Register(retail.SalesServiceKey, svc); err != nil {
		s.Close()
		return err
	}

	p.store = s
	p.svc = svc
	p.container = c
	return nil
}

// Tools enumerates the sales tool operations.
func (p *Provider) Tools() []plugin.ToolDefinition {
	return []plugin.ToolDefinition{
		{
			Name:        "sales_get_all",
			Description: "Return the full sales history across every store.",
			Handler: func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
				return p.svc.GetAll(ctx)
			},
		},
		{
			Name:        "sales_by_store",
			Description: "Return the sales history of a single store.",
			Parameters: []plugin.ParameterDef{
				{Name: "store", Type: "string", Description: "Store name, e.g. downtown", Required: true},
			},
			Handler: func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
				storeName, _ := params["store"].(string)
				if storeName == "" {
					return nil, fmt.Errorf("parameter %q is required", "store")
				}
				return p.svc.ByStore(ctx, storeName)
			},
		},
	}
}

// Controller exposes the shared retail-v1 module. Nil until services are
// configured, so a dropped provider stays unbound.
func (p *Provider) Controller() *plugin.ControllerModule {
	if p.container == nil {
		return nil
	}
	return &plugin.ControllerModule{
		Name:     v1.ModuleName,
		Register: v1.InstallRetailRoutes(p.container),
	}
}

// Init verifies the backing store is reachable.
func (p *Provider) Init(ctx context.Context) error {
	if p.store == nil {
		return fmt.Errorf("sales provider not configured")
	}
	return p.store.Ping(ctx)
}

// Close releases the backing store.
func (p *Provider) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}
