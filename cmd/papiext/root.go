package main

import (
	"io"
	"os"
	"runtime"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	papiext "github.com/contriboss/papi-extension-go"
	"github.com/contriboss/papi-extension-go/internal/config"
	"github.com/contriboss/papi-extension-go/internal/log"
)

// deps are the external collaborators of the commands. Tests replace them
// with fakes.
type deps struct {
	env      papiext.Environment
	fs       afero.Fs
	registry papiext.PackageRegistry // nil means pkg-config, built from config
	goos     string
	stdout   io.Writer
	stderr   io.Writer

	// configSearchDirs overrides where config files are searched; nil means
	// the defaults.
	configSearchDirs []string
}

func defaultDeps() deps {
	return deps{
		env:    papiext.OSEnvironment{},
		fs:     afero.NewOsFs(),
		goos:   runtime.GOOS,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// app carries state shared by all subcommands once the root command's
// PersistentPreRunE has run.
type app struct {
	deps

	cfgFile  string
	logLevel string

	cfg     *config.Config
	cfgUsed string
	logger  *zap.Logger
}

// NewRootCommand builds the papiext command tree.
func NewRootCommand(d deps) *cobra.Command {
	a := &app{deps: d}

	rootCmd := &cobra.Command{
		Use:   "papiext",
		Short: "Locate PAPI and configure native extension builds",
		Long: `papiext finds the PAPI performance-counter library and prints the
include, library and runtime directories a native extension build needs.

Discovery tries, in order:
  1. the install root in $PAPI_PATH
  2. the pkg-config registry
  3. the directories listed in $LIBRARY_PATH`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.SetOut(d.stdout)
	rootCmd.SetErr(d.stderr)

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./papiext.yaml or ~/.config/papiext/papiext.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newResolveCommand(a))
	rootCmd.AddCommand(newStrategiesCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))

	return rootCmd
}

// load loads the configuration and builds the logger.
func (a *app) load() error {
	cfg, used, err := config.Load(config.LoadOptions{
		ConfigFile: a.cfgFile,
		SearchDirs: a.configSearchDirs,
	})
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	logger, err := log.CreateLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.cfgUsed = used
	a.logger = logger
	return nil
}

// newLocator builds a Locator from the loaded configuration.
func (a *app) newLocator() (*papiext.Locator, error) {
	runtimeSearchPaths, err := a.cfg.RuntimeSearchPathsEnabled(a.goos)
	if err != nil {
		return nil, err
	}

	registry := a.registry
	if registry == nil {
		registry = &papiext.PkgConfig{Path: a.cfg.PkgConfig}
	}

	matcher := papiext.SubstringMatcher
	if a.cfg.StrictMatch {
		matcher = papiext.SharedLibraryMatcher
	}

	return papiext.NewLocator(
		papiext.WithEnvironment(a.env),
		papiext.WithFs(a.fs),
		papiext.WithRegistry(registry),
		papiext.WithLogger(a.logger),
		papiext.WithRootEnvVar(a.cfg.RootEnv),
		papiext.WithSearchPathEnvVar(a.cfg.SearchPathEnv),
		papiext.WithMatcher(matcher),
		papiext.WithRuntimeSearchPaths(runtimeSearchPaths),
	), nil
}
