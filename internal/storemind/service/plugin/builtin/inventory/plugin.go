// Package inventory is the built-in provider for stock positions. It
// contributes tool operations only; Controller returns nil.
package inventory

import (
	"context"
	"fmt"

	"github.com/retailmesh/storemind/internal/storemind/service/plugin"
	"github.com/retailmesh/storemind/internal/storemind/service/retail"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/store"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/store/inmemory"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/store/sqlite"
)

// ProviderID is the unique id of the inventory provider.
const ProviderID = "inventory"

// Config configures the inventory provider.
type Config struct {
	// StoreType is the backend family: "memory" or "file".
	StoreType string
	// DBPath is the SQLite file used by the file backend.
	DBPath string
}

// Provider implements plugin.Provider for stock positions.
type Provider struct {
	cfg   *Config
	store store.InventoryStore
	svc   retail.InventoryService
}

var _ plugin.Provider = (*Provider)(nil)

// New creates the inventory provider.
func New(cfg *Config) (*Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("inventory provider requires a config")
	}
	return &Provider{cfg: cfg}, nil
}

// Metadata returns the provider identity.
func (p *Provider) Metadata() plugin.Metadata {
	return plugin.Metadata{
		ID:          ProviderID,
		Name:        "Inventory Tracking",
		Version:     "1.0.0",
		Description: "Stock positions and low-stock alerts",
		Author:      "storemind",
	}
}

// ConfigureServices opens the inventory store, seeds it when empty and
// binds the InventoryService into the container.
func (p *Provider) ConfigureServices(c *plugin.Container) error {
	var (
		s   store.InventoryStore
		err error
	)
	switch p.cfg.StoreType {
	case "file":
		s, err = sqlite.Open(p.cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open inventory store: %w", err)
		}
	default:
		s = inmemory.NewInventoryStore()
	}

	ctx := context.Background()
	existing, err := s.List(ctx)
	if err != nil {
		s.Close()
		return fmt.Errorf("read inventory store: %w", err)
	}
	if len(existing) == 0 {
		if err := s.Seed(ctx, retail.DefaultInventoryItems()); err != nil {
			s.Close()
			return fmt.Errorf("seed inventory store: %w", err)
		}
	}

	svc := retail.NewInventoryService(s)
	if err := c.Register(retail.InventoryServiceKey, svc); err != nil {
		s.Close()
		return err
	}

	p.store = s
	p.svc = svc
	return nil
}

// Tools enumerates the inventory tool operations.
func (p *Provider) Tools() []plugin.ToolDefinition {
	return []plugin.ToolDefinition{
		{
			Name:        "inventory_get_all",
			Description: "Return the current stock position of every SKU.",
			Handler: func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
				return p.svc.GetAll(ctx)
			},
		},
		{
			Name:        "inventory_low_stock",
			Description: "Return the SKUs at or below their reorder point.",
			Handler: func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
				return p.svc.LowStock(ctx)
			},
		},
	}
}

// Controller returns nil: the inventory surface is tool-only.
func (p *Provider) Controller() *plugin.ControllerModule {
	return nil
}

// Init verifies the backing store is reachable.
func (p *Provider) Init(ctx context.Context) error {
	if p.store == nil {
		return fmt.Errorf("inventory provider not configured")
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
