package storemind

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/retailmesh/storemind/internal/storemind/config"
	"github.com/retailmesh/storemind/internal/storemind/options"
	"github.com/retailmesh/storemind/pkg/app"
	"github.com/retailmesh/storemind/pkg/logger"
)

const commandDesc = `The storemind server exposes retail data as MCP tool
operations and REST routes. Plugin providers contribute the tools,
services and controllers; the server discovers and composes them at
startup.`

// NewApp creates an App object with default parameters.
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("storemind",
		basename,
		app.WithOptions(opts),
		app.WithDescription(heredoc.Doc(commandDesc)),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		logPath := fmt.Sprintf("%s/%s.log", basename, basename)

		if err := logger.InitLog(logPath); err != nil {
			return err
		}
		defer logger.FlushLog()

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}
