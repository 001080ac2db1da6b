// Package core holds the shared REST response envelope.
package core

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retailmesh/storemind/pkg/errorx"
	"github.com/retailmesh/storemind/pkg/logger"
)

// ErrResponse defines the return message when an error occurred.
// Reference will be returned if present.
type ErrResponse struct {
	// Code defines the business error code.
	Code int `json:"code"`
	// Message contains the detail of this message.
	Message string `json:"message"`
	// Reference returns the reference document which may be useful to
	// solve this error.
	Reference string `json:"reference,omitempty"`
}

// WriteResponse writes an error or the response data into the http
// response body. It uses errorx.ParseCoder to parse any error into an
// errorx.Coder, which maps to the HTTP status and external message.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		coder := errorx.ParseCoder(err)
		logger.Error("%#v", err)
		c.JSON(coder.HTTPStatus(), ErrResponse{
			Code:      coder.Code(),
			Message:   coder.String(),
			Reference: coder.Reference(),
		})
		return
	}

	c.JSON(http.StatusOK, data)
}
