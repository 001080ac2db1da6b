package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailmesh/storemind/internal/storemind/service/plugin"
	"github.com/retailmesh/storemind/internal/storemind/service/retail"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
	"github.com/retailmesh/storemind/pkg/utils/json"
)

type fakeSalesService struct {
	records []entity.SalesRecord
	healthy bool
}

func (f *fakeSalesService) GetAll(context.Context) ([]entity.SalesRecord, error) {
	return f.records, nil
}

func (f *fakeSalesService) ByStore(_ context.Context, storeName string) ([]entity.SalesRecord, error) {
	var result []entity.SalesRecord
	for _, r := range f.records {
		if r.Store == storeName {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeSalesService) IsHealthy(context.Context) bool { return f.healthy }

type fakeForecastService struct {
	healthy bool
}

func (f *fakeForecastService) GetAll(context.Context) ([]entity.ForecastPoint, error) {
	return nil, nil
}

func (f *fakeForecastService) Demand(_ context.Context, storeName, product string, days int) ([]entity.ForecastPoint, error) {
	points := make([]entity.ForecastPoint, days)
	for i := range points {
		points[i] = entity.ForecastPoint{Store: storeName, Product: product, PredictedUnits: 2.5}
	}
	return points, nil
}

func (f *fakeForecastService) IsHealthy(context.Context) bool { return f.healthy }

func newModuleRouter(t *testing.T, c *plugin.Container) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	InstallRetailRoutes(c)(engine.Group("/api/retail"))
	return engine
}

func doGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestSalesRoutes(t *testing.T) {
	c := plugin.NewContainer()
	c.MustRegister(retail.SalesServiceKey, retail.SalesService(&fakeSalesService{
		healthy: true,
		records: []entity.SalesRecord{
			{ID: "s-1", Store: "downtown", Product: "espresso-maker", Quantity: 4,
				Date: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "s-2", Store: "uptown", Product: "grinder-pro", Quantity: 2,
				Date: time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)},
		},
	}))
	engine := newModuleRouter(t, c)

	w := doGet(engine, "/api/retail/sales")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []SalesRecordResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "2026-08-01T00:00:00Z", resp.Data[0].Date)

	w = doGet(engine, "/api/retail/sales?store=uptown")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "uptown", resp.Data[0].Store)
}

func TestForecastDemandRoute(t *testing.T) {
	c := plugin.NewContainer()
	c.MustRegister(retail.ForecastServiceKey, retail.ForecastService(&fakeForecastService{healthy: true}))
	engine := newModuleRouter(t, c)

	w := doGet(engine, "/api/retail/forecast/downtown/espresso-maker?days=3")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []ForecastPointResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}

func TestForecastDemandRejectsBadHorizon(t *testing.T) {
	c := plugin.NewContainer()
	c.MustRegister(retail.ForecastServiceKey, retail.ForecastService(&fakeForecastService{healthy: true}))
	engine := newModuleRouter(t, c)

	w := doGet(engine, "/api/retail/forecast/downtown/espresso-maker?days=zero")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMissingServiceSkipsItsRoutes(t *testing.T) {
	c := plugin.NewContainer()
	c.MustRegister(retail.SalesServiceKey, retail.SalesService(&fakeSalesService{healthy: true}))
	engine := newModuleRouter(t, c)

	assert.Equal(t, http.StatusOK, doGet(engine, "/api/retail/sales").Code)
	assert.Equal(t, http.StatusNotFound, doGet(engine, "/api/retail/forecast").Code)
}

func TestHealthAggregatesBoundServices(t *testing.T) {
	c := plugin.NewContainer()
	c.MustRegister(retail.SalesServiceKey, retail.SalesService(&fakeSalesService{healthy: true}))
	c.MustRegister(retail.ForecastServiceKey, retail.ForecastService(&fakeForecastService{healthy: false}))
	engine := newModuleRouter(t, c)

	w := doGet(engine, "/api/retail/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Healthy)
	assert.True(t, resp.Services["sales"])
	assert.False(t, resp.Services["forecast"])
}
