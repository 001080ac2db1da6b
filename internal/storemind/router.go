package storemind

import (
	"github.com/gin-gonic/gin"
)

// initRouter creates the /api group the plugin binder attaches the
// controller modules to. Provider route prefixes nest below it, e.g.
// /api/retail/sales.
func initRouter(g *gin.Engine) *gin.RouterGroup {
	return g.Group("/api")
}
