package storemind

import (
	"github.com/retailmesh/storemind/internal/storemind/config"
)

func Run(cfg *config.Config) error {
	server, err := createAPIServer(cfg)
	if err != nil {
		return err
	}

	return server.PrepareRun().Run()
}
