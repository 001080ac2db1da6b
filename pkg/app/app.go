// Package app builds a standard command line application skeleton:
// cobra command + grouped pflag sections + viper configuration binding.
package app

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/retailmesh/storemind/pkg/logger"
	"github.com/retailmesh/storemind/pkg/utils/cliflag"
	"github.com/retailmesh/storemind/pkg/version"
)

var progressMessage = color.GreenString("==>")

// RunFunc defines the application's startup callback function.
type RunFunc func(basename string) error

// App is the main structure of a cli application.
type App struct {
	name        string
	basename    string
	description string
	options     CliOptions
	runFunc     RunFunc
	silence     bool
	noConfig    bool
	args        cobra.PositionalArgs
	cmd         *cobra.Command
}

// Option defines optional parameters for initializing the App.
type Option func(*App)

// WithOptions opens the application's function to read from the command
// line or read parameters from the configuration file.
func WithOptions(opts CliOptions) Option {
	return func(a *App) {
		a.options = opts
	}
}

// WithRunFunc sets the application startup callback function.
func WithRunFunc(run RunFunc) Option {
	return func(a *App) {
		a.runFunc = run
	}
}

// WithDescription sets the description of the application.
func WithDescription(desc string) Option {
	return func(a *App) {
		a.description = desc
	}
}

// WithSilence suppresses startup and configuration diagnostics.
func WithSilence() Option {
	return func(a *App) {
		a.silence = true
	}
}

// WithNoConfig disables the --config flag and viper file loading.
func WithNoConfig() Option {
	return func(a *App) {
		a.noConfig = true
	}
}

// WithDefaultValidArgs rejects any non-flag arguments.
func WithDefaultValidArgs() Option {
	return func(a *App) {
		a.args = cobra.NoArgs
	}
}

// NewApp creates a new application instance based on the given
// application name, binary name, and options.
func NewApp(name string, basename string, opts ...Option) *App {
	a := &App{
		name:     name,
		basename: basename,
	}

	for _, o := range opts {
		o(a)
	}

	a.buildCommand()

	return a
}

func (a *App) buildCommand() {
	cmd := &cobra.Command{
		Use:           formatBaseName(a.basename),
		Short:         a.name,
		Long:          a.description,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          a.args,
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	cmd.Flags().SortFlags = true

	var namedFlagSets cliflag.NamedFlagSets
	if a.options != nil {
		namedFlagSets = a.options.Flags()
		for _, name := range namedFlagSets.Order {
			cmd.Flags().AddFlagSet(namedFlagSets.FlagSets[name])
		}
	}

	globalFS := namedFlagSets.FlagSet("global")
	globalFS.BoolP("version", "V", false, "Print version information and quit.")
	if !a.noConfig {
		addConfigFlag(a.basename, globalFS)
	}
	cmd.Flags().AddFlagSet(globalFS)

	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		fmt.Fprintf(c.OutOrStdout(), "%s\n\nUsage: %s [flags]\n", c.Long, c.Use)
		cliflag.PrintSections(c.OutOrStdout(), namedFlagSets, terminalWidth())
	})

	if a.runFunc != nil {
		cmd.RunE = a.runCommand
	}

	a.cmd = cmd
}

// Run launches the application.
func (a *App) Run() {
	if err := a.cmd.Execute(); err != nil {
		fmt.Printf("%v %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

// Command returns the cobra command of the application.
func (a *App) Command() *cobra.Command {
	return a.cmd
}

func (a *App) runCommand(cmd *cobra.Command, args []string) error {
	if printVersion, _ := cmd.Flags().GetBool("version"); printVersion {
		fmt.Printf("%s %s\n", a.basename, version.Get())
		return nil
	}

	if !a.silence {
		logger.Info("%v Starting %s ...", progressMessage, a.name)
		logger.Info("%v Version: %s", progressMessage, version.Get())
	}

	if a.options != nil {
		if err := a.applyOptions(); err != nil {
			return err
		}
	}

	if a.runFunc != nil {
		return a.runFunc(a.basename)
	}

	return nil
}

func (a *App) applyOptions() error {
	if !a.noConfig {
		if err := viper.Unmarshal(a.options); err != nil {
			return fmt.Errorf("unmarshal configuration: %w", err)
		}
	}

	if completeable, ok := a.options.(CompleteableOptions); ok {
		if err := completeable.Complete(); err != nil {
			return err
		}
	}

	if errs := a.options.Validate(); len(errs) != 0 {
		msgs := make([]string, 0, len(errs))
		for _, err := range errs {
			msgs = append(msgs, err.Error())
		}
		return fmt.Errorf("invalid options: %s", strings.Join(msgs, "; "))
	}

	if printable, ok := a.options.(PrintableOptions); ok && !a.silence {
		logger.Info("%v Config: `%s`", progressMessage, printable.String())
	}

	return nil
}

// formatBaseName normalizes the binary name per platform.
func formatBaseName(basename string) string {
	if runtime.GOOS == "windows" {
		basename = strings.ToLower(basename)
		basename = strings.TrimSuffix(basename, ".exe")
	}
	return basename
}

func terminalWidth() int {
	// Conservative default; help output stays readable when piped.
	return 120
}
