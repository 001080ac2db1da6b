package plugin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return engine, engine.Group("/api")
}

func pingModule(name string, calls *int) func() *ControllerModule {
	return func() *ControllerModule {
		return &ControllerModule{
			Name: name,
			Register: func(rg *gin.RouterGroup) {
				*calls++
				rg.GET("/ping", func(c *gin.Context) {
					c.String(http.StatusOK, "pong")
				})
			},
		}
	}
}

func TestBindMountsUnderProviderPrefix(t *testing.T) {
	engine, root := newTestRouter()
	calls := 0

	providers := []Provider{
		&fakeProvider{id: "sales", prefix: "retail", ctrl: pingModule("retail-v1", &calls)},
	}

	bound := NewBinder().Bind(providers, root)
	assert.Equal(t, 1, bound)
	assert.Equal(t, 1, calls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/retail/ping", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestBindSharedModuleMountsOnce(t *testing.T) {
	_, root := newTestRouter()
	calls := 0

	providers := []Provider{
		&fakeProvider{id: "sales", prefix: "retail", ctrl: pingModule("retail-v1", &calls)},
		&fakeProvider{id: "forecast", prefix: "retail", ctrl: pingModule("retail-v1", &calls)},
	}

	bound := NewBinder().Bind(providers, root)

	assert.Equal(t, 1, bound)
	assert.Equal(t, 1, calls)
}

func TestBindSkipsToolOnlyProviders(t *testing.T) {
	_, root := newTestRouter()

	providers := []Provider{
		&fakeProvider{id: "inventory"},
	}

	assert.Equal(t, 0, NewBinder().Bind(providers, root))
}

func TestBindSkipsIncompleteModule(t *testing.T) {
	_, root := newTestRouter()

	providers := []Provider{
		&fakeProvider{id: "nameless", ctrl: func() *ControllerModule {
			return &ControllerModule{Register: func(*gin.RouterGroup) {}}
		}},
		&fakeProvider{id: "registrarless", ctrl: func() *ControllerModule {
			return &ControllerModule{Name: "no-registrar"}
		}},
	}

	assert.Equal(t, 0, NewBinder().Bind(providers, root))
}

func TestBindSurvivesPanickingModule(t *testing.T) {
	_, root := newTestRouter()
	calls := 0

	providers := []Provider{
		&fakeProvider{id: "explosive", ctrl: func() *ControllerModule {
			panic("controller boom")
		}},
		&fakeProvider{id: "grumpy", ctrl: func() *ControllerModule {
			return &ControllerModule{
				Name:     "grumpy-module",
				Register: func(*gin.RouterGroup) { panic("register boom") },
			}
		}},
		&fakeProvider{id: "healthy", ctrl: pingModule("healthy-module", &calls)},
	}

	var bound int
	require.NotPanics(t, func() {
		bound = NewBinder().Bind(providers, root)
	})
	assert.Equal(t, 1, bound)
	assert.Equal(t, 1, calls)
}

func TestBindWithoutPrefixUsesRootGroup(t *testing.T) {
	engine, root := newTestRouter()
	calls := 0

	providers := []Provider{
		&fakeProvider{id: "bare", ctrl: pingModule("bare-module", &calls)},
	}

	require.Equal(t, 1, NewBinder().Bind(providers, root))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
