package retail

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/store/inmemory"
)

func seededSalesService(t *testing.T) SalesService {
	t.Helper()

	s := inmemory.NewSalesStore()
	require.NoError(t, s.Seed(context.Background(), DefaultSalesRecords()))
	return NewSalesService(s)
}

func TestSalesServiceGetAll(t *testing.T) {
	svc := seededSalesService(t)

	records, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, len(DefaultSalesRecords()))
}

func TestSalesServiceByStoreIsCaseInsensitive(t *testing.T) {
	svc := seededSalesService(t)

	records, err := svc.ByStore(context.Background(), "Downtown")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, "downtown", r.Store)
	}
}

func TestSalesServiceByStoreUnknownStore(t *testing.T) {
	svc := seededSalesService(t)

	records, err := svc.ByStore(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInventoryServiceLowStock(t *testing.T) {
	s := inmemory.NewInventoryStore()
	require.NoError(t, s.Seed(context.Background(), DefaultInventoryItems()))
	svc := NewInventoryService(s)

	items, err := svc.LowStock(context.Background())
	require.NoError(t, err)

	var skus []string
	for _, item := range items {
		skus = append(skus, item.SKU)
	}
	assert.ElementsMatch(t, []string{"EM-100-HB", "GR-220-DT", "KG-310-UT"}, skus)
}

func fixedForecastService(t *testing.T, records []entity.SalesRecord, now time.Time) ForecastService {
	t.Helper()

	s := inmemory.NewSalesStore()
	require.NoError(t, s.Seed(context.Background(), records))

	svc := NewForecastService(NewSalesService(s)).(*forecastService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestForecastDemandUsesDailyAverage(t *testing.T) {
	now := time.Date(2026, time.August, 10, 15, 0, 0, 0, time.UTC)
	records := []entity.SalesRecord{
		{ID: "r1", Store: "downtown", Product: "espresso-maker", Quantity: 4, Date: day(0)},
		{ID: "r2", Store: "downtown", Product: "espresso-maker", Quantity: 2, Date: day(1)},
		// Same day as r2: quantities on one day accumulate.
		{ID: "r3", Store: "downtown", Product: "espresso-maker", Quantity: 6, Date: day(1)},
		// Other product, must not influence the average.
		{ID: "r4", Store: "downtown", Product: "grinder-pro", Quantity: 100, Date: day(0)},
	}

	svc := fixedForecastService(t, records, now)

	points, err := svc.Demand(context.Background(), "downtown", "espresso-maker", 3)
	require.NoError(t, err)
	require.Len(t, points, 3)

	// 12 units over 2 distinct days.
	for i, p := range points {
		assert.Equal(t, "downtown", p.Store)
		assert.Equal(t, "espresso-maker", p.Product)
		assert.InDelta(t, 6.0, p.PredictedUnits, 1e-9)
		assert.Equal(t, now.Truncate(24*time.Hour).AddDate(0, 0, i+1), p.Date)
	}
}

func TestForecastDemandNoHistoryPredictsZero(t *testing.T) {
	svc := fixedForecastService(t, DefaultSalesRecords(), time.Now())

	points, err := svc.Demand(context.Background(), "downtown", "kettle-gooseneck", 2)
	require.NoError(t, err)
	require.Len(t, points, 2)
	for _, p := range points {
		assert.Zero(t, p.PredictedUnits)
	}
}

func TestForecastDemandRejectsNonPositiveHorizon(t *testing.T) {
	svc := fixedForecastService(t, DefaultSalesRecords(), time.Now())

	_, err := svc.Demand(context.Background(), "downtown", "espresso-maker", 0)
	assert.Error(t, err)

	_, err = svc.Demand(context.Background(), "downtown", "espresso-maker", -1)
	assert.Error(t, err)
}

func TestForecastGetAllCoversEveryPair(t *testing.T) {
	svc := fixedForecastService(t, DefaultSalesRecords(), time.Now())

	points, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	// Seven distinct store/product pairs in the sample data, seven days
	// each.
	assert.Len(t, points, 7*DefaultForecastDays)
}
