package v1

import (
	"net/http"

	"github.com/retailmesh/storemind/pkg/errorx"
)

// Retail handler error codes.
// Code format: 1XXYYZ
//   - 1:  module prefix (retail handler)
//   - XX: resource group (00=common, 01=sales, 02=forecast)
//   - YY: sequential error number
//   - Z:  reserved (0)

const (
	// Common request errors (100xxx).
	ErrBind       = 100001
	ErrValidation = 100002

	// Sales errors (1001xx).
	ErrSalesList = 100101

	// Forecast errors (1002xx).
	ErrForecastList   = 100201
	ErrForecastDemand = 100202
)

func init() {
	// Common.
	errorx.MustRegister(newCoder(ErrBind, http.StatusBadRequest, "Request binding failed"))
	errorx.MustRegister(newCoder(ErrValidation, http.StatusBadRequest, "Request validation failed"))

	// Sales.
	errorx.MustRegister(newCoder(ErrSalesList, http.StatusInternalServerError, "Failed to list sales records"))

	// Forecast.
	errorx.MustRegister(newCoder(ErrForecastList, http.StatusInternalServerError, "Failed to build forecast"))
	errorx.MustRegister(newCoder(ErrForecastDemand, http.StatusBadRequest, "Invalid forecast request"))
}

type coder struct {
	code int
	http int
	msg  string
}

func newCoder(code, httpStatus int, msg string) *coder {
	return &coder{code: code, http: httpStatus, msg: msg}
}

func (c *coder) Code() int         { return c.code }
func (c *coder) HTTPStatus() int   { return c.http }
func (c *coder) String() string    { return c.msg }
func (c *coder) Reference() string { return "" }
