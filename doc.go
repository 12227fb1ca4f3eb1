// Package papiext configures native extension builds against PAPI, the
// Performance Application Programming Interface library for hardware
// performance counters.
//
// The package does not read counters. It finds where PAPI's headers and shared
// library are installed and records those paths in an Extension build
// descriptor that a downstream build tool (cgo, setuptools, make) consumes.
//
// # Discovery Strategies
//
// A Locator tries three strategies in priority order and stops at the first
// that finds the library:
//   - env - install root from the PAPI_PATH environment variable
//   - pkg-config - the pkg-config package registry
//   - search-path - a scan of the directories in LIBRARY_PATH
//
// # Basic Usage
//
//	locator := papiext.NewLocator(papiext.WithLogger(logger))
//	ext := papiext.DefaultExtension()
//
//	res, err := locator.Resolve(ctx, papiext.DefaultLibrary, ext)
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    // rely on the system's default library search paths
//	}
//	env := ext.CgoEnv() // CGO_CFLAGS / CGO_LDFLAGS
//
// # Architecture
//
//	Locator
//	├── EnvPathStrategy (PAPI_PATH)
//	├── PkgConfigStrategy (PackageRegistry, PkgConfig)
//	└── SearchPathStrategy (LIBRARY_PATH, afero.Fs, NameMatcher)
//
// Environment, filesystem and registry are injected through OpOptions so the
// whole resolution can run against fakes.
//
// # Platform Support
//
// On Windows the found directory is not added as a runtime search path, as
// Windows binaries carry no rpath. See PlatformSupportsRuntimeSearchPaths.
package papiext
