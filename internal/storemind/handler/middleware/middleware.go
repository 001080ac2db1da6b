// Package middleware holds the gin middlewares shared by all routes.
package middleware

import (
	"github.com/gin-gonic/gin"
)

// defaults maps middleware names to their constructors. The generic
// server installs middlewares by name from its configuration.
var defaults = map[string]gin.HandlerFunc{
	"recovery":  gin.Recovery(),
	"requestid": RequestID(),
	"cors":      CORS(),
	"nocache":   NoCache(),
}

// Get returns the named middleware, if registered.
func Get(name string) (gin.HandlerFunc, bool) {
	mw, ok := defaults[name]
	return mw, ok
}

// NoCache is a middleware function that appends headers to prevent the
// client from caching the HTTP response.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate, value")
		c.Header("Expires", "Thu, 01 Jan 1970 00:00:00 GMT")
		c.Header("Last-Modified", "")
		c.Next()
	}
}
