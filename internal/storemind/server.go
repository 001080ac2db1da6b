package storemind

import (
	"context"
	"io"
	"log"

	"github.com/retailmesh/storemind/internal/storemind/config"
	"github.com/retailmesh/storemind/internal/storemind/service/mcp"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin"
	"github.com/retailmesh/storemind/internal/storemind/service/plugin/builtin"
	genericapiserver "github.com/retailmesh/storemind/internal/pkg/server"
	"github.com/retailmesh/storemind/pkg/http/shutdown"
	"github.com/retailmesh/storemind/pkg/http/shutdown/posixsignal"
	"github.com/retailmesh/storemind/pkg/logger"
	"github.com/retailmesh/storemind/pkg/version"
)

type apiServer struct {
	gs               *shutdown.GracefulShutdown
	genericAPIServer *genericapiserver.GenericAPIServer

	pluginHost *plugin.Host
	mcpModule  *mcp.Module
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	gs := shutdown.New()
	gs.AddShutdownManager(posixsignal.NewPosixSignalManager())

	genericConfig, err := buildGenericConfig(cfg)
	if err != nil {
		return nil, err
	}

	genericServer, err := genericConfig.Complete().New()
	if err != nil {
		return nil, err
	}

	// MCP module (Config → Complete → New). It doubles as the plugin
	// host's tool transport.
	mcpCfg := &mcp.Config{
		Name:      "storemind",
		Version:   version.Get().GitVersion,
		Transport: cfg.MCPOptions.Transport,
		Addr:      cfg.MCPOptions.Addr,
	}
	mcpModule, err := mcpCfg.Complete().New()
	if err != nil {
		return nil, err
	}
	logger.Info("[Storemind] MCP module initialized successfully")

	// Plugin host. With plugins disabled the module list stays empty and
	// the host still boots, serving an empty tool set.
	modules := plugin.NewInTreeRegistry()
	if cfg.PluginOptions.Enabled {
		modules = builtin.NewInTreeRegistry(cfg.PluginOptions, cfg.StoreOptions)
	} else {
		logger.Info("[Storemind] Plugin system disabled (plugins.enabled=false), serving an empty tool set")
	}

	hostCfg := &plugin.HostConfig{
		Modules:   modules,
		Transport: mcpModule,
	}
	pluginHost := hostCfg.Complete().New()

	server := &apiServer{
		gs:               gs,
		genericAPIServer: genericServer,
		pluginHost:       pluginHost,
		mcpModule:        mcpModule,
	}

	return server, nil
}

func (s *apiServer) PrepareRun() preparedAPIServer {
	apiGroup := initRouter(s.genericAPIServer.Engine)

	// One-shot startup pipeline: discovery, composition, route binding.
	if err := s.pluginHost.Bootstrap(context.Background(), apiGroup); err != nil {
		log.Fatalf("bootstrap plugin host failed: %s", err.Error())
	}

	s.gs.AddShutdownCallback(shutdown.Func(func(string) error {
		// Close MCP module (stop serving tools).
		if s.mcpModule != nil {
			s.mcpModule.Close()
		}
		// Release provider resources (store handles).
		for _, p := range s.pluginHost.Registry().List() {
			if closer, ok := p.(io.Closer); ok {
				closer.Close()
			}
		}
		s.genericAPIServer.Close()
		return nil
	}))
	return preparedAPIServer{s}
}

func (s preparedAPIServer) Run() error {
	go func() {
		if err := s.mcpModule.Run(); err != nil {
			logger.Error("[Storemind] MCP transport stopped: %v", err)
		}
	}()

	// start shutdown managers
	if err := s.gs.Start(); err != nil {
		log.Fatalf("start shutdown manager failed: %s", err.Error())
	}

	return s.genericAPIServer.Run()
}

func buildGenericConfig(cfg *config.Config) (genericConfig *genericapiserver.Config, lastErr error) {
	genericConfig = genericapiserver.NewConfig()
	if lastErr = cfg.GenericServerRunOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	return
}
