package main

import (
	"fmt"

	"github.com/spf13/cobra"

	papiext "github.com/contriboss/papi-extension-go"
)

type resolveOptions struct {
	library            string
	rootEnv            string
	searchPathEnv      string
	pkgConfig          string
	strict             bool
	runtimeSearchPaths string
	output             string
	require            bool
}

func newResolveCommand(a *app) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Locate the library and print the build descriptor",
		Long: `Run the discovery strategies and print the resulting build descriptor.

A library that is not found is not an error unless --require is set; the build
may still succeed through the system's default library search paths.`,
		Example: `  papiext resolve
  papiext resolve -o env
  PAPI_PATH=/opt/papi papiext resolve -o json
  papiext resolve --strict --require`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, a, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.library, "library", "", "logical library name (default from config: papi)")
	flags.StringVar(&opts.rootEnv, "root-env", "", "install-root environment variable (default PAPI_PATH)")
	flags.StringVar(&opts.searchPathEnv, "search-path-env", "", "search-path environment variable (default LIBRARY_PATH)")
	flags.StringVar(&opts.pkgConfig, "pkg-config", "", "pkg-config binary")
	flags.BoolVar(&opts.strict, "strict", false, "match only lib<name>.so/.dylib/.a/.dll in the search-path scan")
	flags.StringVar(&opts.runtimeSearchPaths, "runtime-search-paths", "", "record the library dir as an rpath: auto, true or false")
	flags.StringVarP(&opts.output, "output", "o", "text", "output format: "+joinFormats())
	flags.BoolVar(&opts.require, "require", false, "exit with an error when the library is not found")

	return cmd
}

func runResolve(cmd *cobra.Command, a *app, opts *resolveOptions) error {
	format, err := parseFormat(opts.output)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("library") {
		a.cfg.Library = opts.library
	}
	if flags.Changed("root-env") {
		a.cfg.RootEnv = opts.rootEnv
	}
	if flags.Changed("search-path-env") {
		a.cfg.SearchPathEnv = opts.searchPathEnv
	}
	if flags.Changed("pkg-config") {
		a.cfg.PkgConfig = opts.pkgConfig
	}
	if flags.Changed("strict") {
		a.cfg.StrictMatch = opts.strict
	}
	if flags.Changed("runtime-search-paths") {
		a.cfg.RuntimeSearchPaths = opts.runtimeSearchPaths
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	locator, err := a.newLocator()
	if err != nil {
		return err
	}

	ext := a.cfg.NewExtension()
	res, err := locator.Resolve(cmd.Context(), a.cfg.Library, ext)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", a.cfg.Library, err)
	}

	if err := writeReport(cmd.OutOrStdout(), format, newReport(res, ext)); err != nil {
		return err
	}

	if opts.require && !res.Found {
		return fmt.Errorf("library %s not found by any strategy", a.cfg.Library)
	}
	return nil
}

// report is the serialized result of a resolve run.
type report struct {
	Resolution *papiext.Resolution `json:"resolution"`
	Extension  *papiext.Extension  `json:"extension"`
	CgoEnv     map[string]string   `json:"cgo_env,omitempty"`
}

func newReport(res *papiext.Resolution, ext *papiext.Extension) *report {
	return &report{
		Resolution: res,
		Extension:  ext,
		CgoEnv:     ext.CgoEnv(),
	}
}
