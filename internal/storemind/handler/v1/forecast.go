package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/retailmesh/storemind/internal/pkg/core"
	"github.com/retailmesh/storemind/internal/storemind/service/retail"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
	"github.com/retailmesh/storemind/pkg/errorx"
)

// ForecastHandler handles the forecast REST endpoints.
type ForecastHandler struct {
	svc retail.ForecastService
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(svc retail.ForecastService) *ForecastHandler {
	return &ForecastHandler{svc: svc}
}

// List handles GET /forecast: the default horizon for every store and
// product pair.
func (h *ForecastHandler) List(c *gin.Context) {
	points, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrForecastList, "build forecast"), nil)
		return
	}

	core.WriteResponse(c, nil, gin.H{"data": toForecastResponses(points)})
}

// Demand handles GET /forecast/:store/:product?days=N.
func (h *ForecastHandler) Demand(c *gin.Context) {
	storeName := c.Param("store")
	product := c.Param("product")

	days := retail.DefaultForecastDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			core.WriteResponse(c, errorx.NewC(ErrForecastDemand, "days %q must be a positive integer", raw), nil)
			return
		}
		days = parsed
	}

	points, err := h.svc.Demand(c.Request.Context(), storeName, product, days)
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrForecastDemand, "forecast %s/%s", storeName, product), nil)
		return
	}

	core.WriteResponse(c, nil, gin.H{"data": toForecastResponses(points)})
}

func toForecastResponses(points []entity.ForecastPoint) []ForecastPointResponse {
	resp := make([]ForecastPointResponse, 0, len(points))
	for _, p := range points {
		var fp ForecastPointResponse
		_ = copier.Copy(&fp, &p)
		fp.Date = FormatTime(p.Date)
		resp = append(resp, fp)
	}
	return resp
}
