package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/retailmesh/storemind/internal/pkg/core"
	"github.com/retailmesh/storemind/internal/storemind/service/retail"
	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
	"github.com/retailmesh/storemind/pkg/errorx"
)

// SalesHandler handles the sales REST endpoints.
type SalesHandler struct {
	svc retail.SalesService
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(svc retail.SalesService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// List handles GET /sales. An optional ?store= filter narrows the
// result to a single store.
func (h *SalesHandler) List(c *gin.Context) {
	var (
		records []entity.SalesRecord
		err     error
	)
	if storeName := c.Query("store"); storeName != "" {
		records, err = h.svc.ByStore(c.Request.Context(), storeName)
	} else {
		records, err = h.svc.GetAll(c.Request.Context())
	}
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrSalesList, "list sales records"), nil)
		return
	}

	resp := make([]SalesRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, toSalesResponse(r))
	}
	core.WriteResponse(c, nil, gin.H{"data": resp})
}

func toSalesResponse(r entity.SalesRecord) SalesRecordResponse {
	var resp SalesRecordResponse
	_ = copier.Copy(&resp, &r)
	resp.Date = FormatTime(r.Date)
	return resp
}
