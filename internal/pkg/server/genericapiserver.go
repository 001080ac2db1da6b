// Package server wraps gin into a generic API server with the standard
// middleware, health and diagnostics routes installed.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/retailmesh/storemind/internal/pkg/core"
	"github.com/retailmesh/storemind/internal/storemind/handler/middleware"
	"github.com/retailmesh/storemind/pkg/logger"
	"github.com/retailmesh/storemind/pkg/version"
)

// GenericAPIServer contains state for the storemind api server. It wraps
// a gin engine; route installation happens against Engine before Run.
type GenericAPIServer struct {
	*gin.Engine

	InsecureServingInfo *InsecureServingInfo

	mode            string
	healthz         bool
	enableProfiling bool
	middlewares     []string

	insecureServer *http.Server
}

func initGenericAPIServer(s *GenericAPIServer) {
	s.Setup()
	s.InstallMiddlewares()
	s.InstallAPIs()
}

// Setup configures gin mode before the engine is created.
func (s *GenericAPIServer) Setup() {
	gin.SetMode(s.mode)
	s.Engine = gin.New()
}

// InstallMiddlewares installs the configured generic middlewares.
func (s *GenericAPIServer) InstallMiddlewares() {
	for _, m := range s.middlewares {
		mw, ok := middleware.Get(m)
		if !ok {
			logger.Warn("can not find middleware: %s", m)
			continue
		}

		logger.Info("install middleware: %s", m)
		s.Use(mw)
	}
}

// InstallAPIs installs the generic apis: healthz, version and pprof.
func (s *GenericAPIServer) InstallAPIs() {
	if s.healthz {
		s.GET("/healthz", func(c *gin.Context) {
			core.WriteResponse(c, nil, map[string]string{"status": "ok"})
		})
	}

	s.GET("/version", func(c *gin.Context) {
		core.WriteResponse(c, nil, version.Get())
	})

	if s.enableProfiling {
		pprof.Register(s.Engine)
	}
}

// Run spawns the http server. It blocks until the server exits.
func (s *GenericAPIServer) Run() error {
	s.insecureServer = &http.Server{
		Addr:    s.InsecureServingInfo.Address,
		Handler: s,
	}

	logger.Info("start to listening on http address: %s", s.InsecureServingInfo.Address)
	if err := s.insecureServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("server on %s stopped", s.InsecureServingInfo.Address)
	return nil
}

// Close gracefully shuts down the api server.
func (s *GenericAPIServer) Close() {
	if s.insecureServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.insecureServer.Shutdown(ctx); err != nil {
		logger.Warn("shutdown insecure server failed: %s", err.Error())
	}
}
