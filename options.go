package papiext

import (
	"runtime"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Op holds the settings NewLocator wires into the standard strategies.
type Op struct {
	env                Environment
	fs                 afero.Fs
	registry           PackageRegistry
	logger             *zap.Logger
	rootEnvVar         string
	searchPathEnvVar   string
	matcher            NameMatcher
	runtimeSearchPaths bool
}

// OpOption configures a Locator.
type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	op.env = OSEnvironment{}
	op.fs = afero.NewOsFs()
	op.registry = &PkgConfig{}
	op.logger = zap.NewNop()
	op.rootEnvVar = DefaultRootEnvVar
	op.searchPathEnvVar = DefaultSearchPathEnvVar
	op.matcher = SubstringMatcher
	op.runtimeSearchPaths = PlatformSupportsRuntimeSearchPaths(runtime.GOOS)

	for _, opt := range opts {
		opt(op)
	}
}

// WithEnvironment sets the environment the strategies read. Defaults to the
// process environment.
func WithEnvironment(env Environment) OpOption {
	return func(op *Op) {
		if env != nil {
			op.env = env
		}
	}
}

// WithFs sets the filesystem scanned by the search-path strategy.
func WithFs(fs afero.Fs) OpOption {
	return func(op *Op) {
		if fs != nil {
			op.fs = fs
		}
	}
}

// WithRegistry sets the package registry. Defaults to the pkg-config binary.
func WithRegistry(registry PackageRegistry) OpOption {
	return func(op *Op) {
		if registry != nil {
			op.registry = registry
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) OpOption {
	return func(op *Op) {
		if logger != nil {
			op.logger = logger
		}
	}
}

// WithRootEnvVar overrides the install-root variable (default PAPI_PATH).
func WithRootEnvVar(name string) OpOption {
	return func(op *Op) {
		if name != "" {
			op.rootEnvVar = name
		}
	}
}

// WithSearchPathEnvVar overrides the search-path variable (default LIBRARY_PATH).
func WithSearchPathEnvVar(name string) OpOption {
	return func(op *Op) {
		if name != "" {
			op.searchPathEnvVar = name
		}
	}
}

// WithMatcher sets the filename convention used by the search-path scan.
func WithMatcher(matcher NameMatcher) OpOption {
	return func(op *Op) {
		if matcher != nil {
			op.matcher = matcher
		}
	}
}

// WithRuntimeSearchPaths sets whether the found directory is added to the
// descriptor's runtime library dirs. Defaults to the platform capability.
func WithRuntimeSearchPaths(enabled bool) OpOption {
	return func(op *Op) {
		op.runtimeSearchPaths = enabled
	}
}
