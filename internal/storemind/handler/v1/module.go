package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/retailmesh/storemind/internal/pkg/core"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin"
	"github.com/retailmesh/storemind/internal/storemind/service/retail"
	"github.com/retailmesh/storemind/pkg/logger"
)

// ModuleName identifies this handler package as a controller module.
// Providers sharing the module expose the same name, so the binder
// attaches the whole package once no matter how many providers carry it.
const ModuleName = "retail-v1"

// InstallRetailRoutes returns the module registrar. It resolves the
// retail services from the container at bind time — after composition —
// and installs routes only for the services actually bound, so a
// provider dropped during composition silently takes its routes with it.
func InstallRetailRoutes(c *plugin.Container) func(rg *gin.RouterGroup) {
	return func(rg *gin.RouterGroup) {
		var (
			salesSvc    retail.SalesService
			forecastSvc retail.ForecastService
		)

		if svc, ok := c.Resolve(retail.SalesServiceKey); ok {
			if s, ok := svc.(retail.SalesService); ok {
				salesSvc = s
				rg.GET("/sales", NewSalesHandler(s).List)
			}
		} else {
			logger.Warn("[Retail] sales service not bound, /sales routes skipped")
		}

		if svc, ok := c.Resolve(retail.ForecastServiceKey); ok {
			if s, ok := svc.(retail.ForecastService); ok {
				forecastSvc = s
				h := NewForecastHandler(s)
				rg.GET("/forecast", h.List)
				rg.GET("/forecast/:store/:product", h.Demand)
			}
		} else {
			logger.Warn("[Retail] forecast service not bound, /forecast routes skipped")
		}

		rg.GET("/health", healthHandler(salesSvc, forecastSvc))
	}
}

// healthHandler reports per-service health for the bound services.
func healthHandler(sales retail.SalesService, forecast retail.ForecastService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := HealthResponse{Healthy: true, Services: map[string]bool{}}

		if sales != nil {
			ok := sales.IsHealthy(c.Request.Context())
			resp.Services["sales"] = ok
			resp.Healthy = resp.Healthy && ok
		}
		if forecast != nil {
			ok := forecast.IsHealthy(c.Request.Context())
			resp.Services["forecast"] = ok
			resp.Healthy = resp.Healthy && ok
		}

		core.WriteResponse(c, nil, resp)
	}
}
