// Package retail holds the domain data services the plugin providers
// contribute to the shared container. Each service exposes GetAll plus
// IsHealthy; tool handlers and REST controllers consume them through the
// container keys below.
package retail

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/store"
)

// Container keys under which the providers bind their services.
const (
	SalesServiceKey     = "retail.sales"
	InventoryServiceKey = "retail.inventory"
	ForecastServiceKey  = "retail.forecast"
)

// SalesService exposes the sales history.
type SalesService interface {
	// GetAll returns all sales records.
	GetAll(ctx context.Context) ([]entity.SalesRecord, error)
	// ByStore returns the sales records of a single store.
	ByStore(ctx context.Context, storeName string) ([]entity.SalesRecord, error)
	// IsHealthy reports whether the backing store is reachable.
	IsHealthy(ctx context.Context) bool
}

// InventoryService exposes the current stock positions.
type InventoryService interface {
	// GetAll returns all inventory items.
	GetAll(ctx context.Context) ([]entity.InventoryItem, error)
	// LowStock returns the items at or below their reorder point.
	LowStock(ctx context.Context) ([]entity.InventoryItem, error)
	// IsHealthy reports whether the backing store is reachable.
	IsHealthy(ctx context.Context) bool
}

// ForecastService predicts demand from the sales history.
type ForecastService interface {
	// GetAll returns a default seven day forecast for every store and
	// product pair present in the sales history.
	GetAll(ctx context.Context) ([]entity.ForecastPoint, error)
	// Demand forecasts the given store/product pair for days ahead.
	Demand(ctx context.Context, storeName, product string, days int) ([]entity.ForecastPoint, error)
	// IsHealthy reports whether the underlying sales data is reachable.
	IsHealthy(ctx context.Context) bool
}

// --- Sales ---

type salesService struct {
	store store.SalesStore
}

// NewSalesService creates a SalesService over the given store.
func NewSalesService(s store.SalesStore) SalesService {
	return &salesService{store: s}
}

func (s *salesService) GetAll(ctx context.Context) ([]entity.SalesRecord, error) {
	return s.store.List(ctx)
}

func (s *salesService) ByStore(ctx context.Context, storeName string) ([]entity.SalesRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.SalesRecord, 0, len(records))
	for _, r := range records {
		if strings.EqualFold(r.Store, storeName) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *salesService) IsHealthy(ctx context.Context) bool {
	return s.store.Ping(ctx) == nil
}

// --- Inventory ---

type inventoryService struct {
	store store.InventoryStore
}

// NewInventoryService creates an InventoryService over the given store.
func NewInventoryService(s store.InventoryStore) InventoryService {
	return &inventoryService{store: s}
}

func (s *inventoryService) GetAll(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.store.List(ctx)
}

func (s *inventoryService) LowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.LowStock() {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *inventoryService) IsHealthy(ctx context.Context) bool {
	return s.store.Ping(ctx) == nil
}

// --- Forecast ---

// DefaultForecastDays is the horizon used by ForecastService.GetAll.
const DefaultForecastDays = 7

type forecastService struct {
	sales SalesService
	now   func() time.Time
}

// NewForecastService creates a ForecastService deriving demand from the
// given sales history.
func NewForecastService(sales SalesService) ForecastService {
	return &forecastService{sales: sales, now: time.Now}
}

func (s *forecastService) GetAll(ctx context.Context) ([]entity.ForecastPoint, error) {
	records, err := s.sales.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	type pair struct{ store, product string }
	seen := make(map[pair]bool)
	var pairs []pair
	for _, r := range records {
		p := pair{r.Store, r.Product}
		if !seen[p] {
			seen[p] = true
			pairs = append(pairs, p)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].store != pairs[j].store {
			return pairs[i].store < pairs[j].store
		}
		return pairs[i].product < pairs[j].product
	})

	var points []entity.ForecastPoint
	for _, p := range pairs {
		forecast, err := s.Demand(ctx, p.store, p.product, DefaultForecastDays)
		if err != nil {
			return nil, err
		}
		points = append(points, forecast...)
	}
	return points, nil
}

// Demand forecasts with a flat daily average over the pair's history.
func (s *forecastService) Demand(ctx context.Context, storeName, product string, days int) ([]entity.ForecastPoint, error) {
	if days <= 0 {
		return nil, fmt.Errorf("forecast horizon must be positive, got %d", days)
	}

	records, err := s.sales.ByStore(ctx, storeName)
	if err != nil {
		return nil, err
	}

	total := 0
	distinctDays := make(map[string]bool)
	for _, r := range records {
		if !strings.EqualFold(r.Product, product) {
			continue
		}
		total += r.Quantity
		distinctDays[r.Date.Format("2006-01-02")] = true
	}

	daily := 0.0
	if len(distinctDays) > 0 {
		daily = float64(total) / float64(len(distinctDays))
	}

	start := s.now().Truncate(24 * time.Hour)
	points := make([]entity.ForecastPoint, 0, days)
	for i := 1; i <= days; i++ {
		points = append(points, entity.ForecastPoint{
			Store:          storeName,
			Product:        product,
			Date:           start.AddDate(0, 0, i),
			PredictedUnits: daily,
		})
	}
	return points, nil
}

func (s *forecastService) IsHealthy(ctx context.Context) bool {
	return s.sales.IsHealthy(ctx)
}
