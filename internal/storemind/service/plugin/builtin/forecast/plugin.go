// Package forecast is the built-in provider for demand forecasting. It
// depends on the sales provider's service: ConfigureServices binds a
// deferred ForecastService, and Init resolves the SalesService from the
// container once every provider has had its configure turn.
package forecast

import (
	"context"
	"fmt"
	"sync"

	"github.com/retailmesh/storemind/internal/storemind/handler/v1"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin"
	"github.com/retailmesh/storemind/internal/storemind/service/retail"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
)

// ProviderID is the unique id of the forecast provider.
const ProviderID = "forecast"

// Provider implements plugin.Provider for demand forecasting.
type Provider struct {
	container *plugin.Container
	svc       *deferredForecast
}

var _ plugin.Provider = (*Provider)(nil)

// New creates the forecast provider.
func New() (*Provider, error) {
	return &Provider{svc: &deferredForecast{}}, nil
}

// Metadata returns the provider identity.
func (p *Provider) Metadata() plugin.Metadata {
	return plugin.Metadata{
		ID:          ProviderID,
		Name:        "Demand Forecasting",
		Version:     "1.0.0",
		Description: "Demand forecasts derived from the sales history",
		Author:      "storemind",
		RoutePrefix: "retail",
	}
}

// ConfigureServices binds the deferred ForecastService. The sales
// dependency is not resolved here: the sales provider may not have
// configured yet.
func (p *Provider) ConfigureServices(c *plugin.Container) error {
	if err := c.Register(retail.ForecastServiceKey, p.svc); err != nil {
		return err
	}
	p.container = c
	return nil
}

// Tools enumerates the forecast tool operations.
func (p *Provider) Tools() []plugin.ToolDefinition {
	return []plugin.ToolDefinition{
		{
			Name:        "forecast_demand",
			Description: "Forecast demand for a store and product over the coming days.",
			Parameters: []plugin.ParameterDef{
				{Name: "store", Type: "string", Description: "Store name, e.g. downtown", Required: true},
				{Name: "product", Type: "string", Description: "Product name, e.g. espresso-maker", Required: true},
				{Name: "days", Type: "number", Description: "Forecast horizon in days, default 7"},
			},
			Handler: func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
				storeName, _ := params["store"].(string)
				product, _ := params["product"].(string)
				if storeName == "" || product == "" {
					return nil, fmt.Errorf("parameters %q and %q are required", "store", "product")
				}

				days := retail.DefaultForecastDays
				if raw, ok := params["days"].(float64); ok {
					if raw <= 0 {
						return nil, fmt.Errorf("parameter %q must be positive, got %v", "days", raw)
					}
					days = int(raw)
				}

				return p.svc.Demand(ctx, storeName, product, days)
			},
		},
	}
}

// Controller exposes the shared retail-v1 module, the same module the
// sales provider carries. The binder attaches it once.
func (p *Provider) Controller() *plugin.ControllerModule {
	if p.container == nil {
		return nil
	}
	return &plugin.ControllerModule{
		Name:     v1.ModuleName,
		Register: v1.InstallRetailRoutes(p.container),
	}
}

// Init resolves the SalesService from the container and completes the
// deferred forecast. Every provider has configured by now, so a missing
// sales service means the sales provider is disabled or was dropped.
func (p *Provider) Init(ctx context.Context) error {
	if p.container == nil {
		return fmt.Errorf("forecast provider not configured")
	}

	raw, ok := p.container.Resolve(retail.SalesServiceKey)
	if !ok {
		return fmt.Errorf("service %q not bound, forecasting needs the sales provider", retail.SalesServiceKey)
	}
	sales, ok := raw.(retail.SalesService)
	if !ok {
		return fmt.Errorf("service %q has unexpected type %T", retail.SalesServiceKey, raw)
	}

	p.svc.complete(retail.NewForecastService(sales))
	return nil
}

// deferredForecast is a ForecastService shell whose inner service is
// supplied during Init. Calls before completion fail cleanly.
type deferredForecast struct {
	mu    sync.RWMutex
	inner retail.ForecastService
}

var _ retail.ForecastService = (*deferredForecast)(nil)

func (d *deferredForecast) complete(inner retail.ForecastService) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inner = inner
}

func (d *deferredForecast) resolve() (retail.ForecastService, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.inner == nil {
		return nil, fmt.Errorf("forecast service not initialized")
	}
	return d.inner, nil
}

func (d *deferredForecast) GetAll(ctx context.Context) ([]entity.ForecastPoint, error) {
	svc, err := d.resolve()
	if err != nil {
		return nil, err
	}
	return svc.GetAll(ctx)
}

func (d *deferredForecast) Demand(ctx context.Context, storeName, product string, days int) ([]entity.ForecastPoint, error) {
	svc, err := d.resolve()
	if err != nil {
		return nil, err
	}
	return svc.Demand(ctx, storeName, product, days)
}

func (d *deferredForecast) IsHealthy(ctx context.Context) bool {
	svc, err := d.resolve()
	if err != nil {
		return false
	}
	return svc.IsHealthy(ctx)
}
