package papiext

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrLibraryEmpty is returned when no library name is given.
	ErrLibraryEmpty = errors.New("library name is empty")
)

// Locator manages the registration and evaluation of discovery strategies.
//
// The locator maintains an ordered list of Strategy implementations and
// provides methods to:
//   - Register new strategies
//   - Resolve a library's runtime directory into an Extension
//
// # Usage
//
// Create a locator with the three standard strategies:
//
//	locator := papiext.NewLocator()
//	ext := papiext.DefaultExtension()
//	res, err := locator.Resolve(ctx, "papi", ext)
//
// Or create an empty locator and register custom strategies:
//
//	locator := &papiext.Locator{}
//	locator.Register(&MyStrategy{})
//
// # Strategy Selection
//
// Resolve calls Locate on each registered strategy in order and stops at the
// first one that reports a directory. Strategies that skip or fail do not stop
// the ones after them.
//
// # Thread Safety
//
// Locator is NOT thread-safe for registration.
// Register all strategies before concurrent use.
// Resolve may run concurrently as long as each call gets its own Extension.
type Locator struct {
	strategies         []Strategy
	logger             *zap.Logger
	runtimeSearchPaths bool
}

// NewLocator creates a locator with the standard strategies registered.
//
// The standard strategies are registered in this order:
//  1. EnvPathStrategy - install root from PAPI_PATH
//  2. PkgConfigStrategy - pkg-config registry
//  3. SearchPathStrategy - scan of LIBRARY_PATH directories
func NewLocator(opts ...OpOption) *Locator {
	op := &Op{}
	op.applyOpts(opts)

	locator := &Locator{
		logger:             op.logger,
		runtimeSearchPaths: op.runtimeSearchPaths,
	}

	// Register all standard strategies in priority order
	locator.Register(&EnvPathStrategy{
		Env:      op.env,
		Variable: op.rootEnvVar,
	})
	locator.Register(&PkgConfigStrategy{
		Registry: op.registry,
	})
	locator.Register(&SearchPathStrategy{
		Env:      op.env,
		Variable: op.searchPathEnvVar,
		Fs:       op.fs,
		Match:    op.matcher,
		Logger:   op.logger,
	})

	return locator
}

// Register adds a new strategy to the locator.
//
// Strategies are tried in the order they are registered.
//
// Not thread-safe. Register all strategies before concurrent use.
func (l *Locator) Register(strategy Strategy) {
	l.strategies = append(l.strategies, strategy)
}

// ListStrategies returns a copy of all registered strategies.
func (l *Locator) ListStrategies() []Strategy {
	return append([]Strategy{}, l.strategies...)
}

// RuntimeSearchPaths reports whether Resolve records the found directory as a
// runtime library directory.
func (l *Locator) RuntimeSearchPaths() bool {
	return l.runtimeSearchPaths
}

// Resolve finds the runtime library directory of library and records it in ext.
//
// This method processes each strategy in order:
//  1. Check for context cancellation
//  2. Call Locate
//  3. Record the attempt
//  4. Stop at the first strategy that found the library
//
// When a directory was found and the locator supports runtime search paths,
// it is appended to ext.RuntimeLibraryDirs.
//
// # Return Values
//
// A Resolution with Found == false and a nil error means no strategy found
// the library. The only errors returned are ErrLibraryEmpty and the context's
// error on cancellation; in the latter case the partial Resolution is still
// returned.
//
// Resolving again with the same environment yields the same Resolution and
// leaves ext unchanged, since Extension deduplicates its lists.
func (l *Locator) Resolve(ctx context.Context, library string, ext *Extension) (*Resolution, error) {
	if library == "" {
		return nil, ErrLibraryEmpty
	}
	if ext == nil {
		ext = &Extension{}
	}

	logger := l.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	res := &Resolution{
		Library:  library,
		Attempts: []Attempt{},
	}

	for _, strategy := range l.strategies {
		// Check for context cancellation
		if err := ctx.Err(); err != nil {
			return res, err
		}

		dir, ok, err := strategy.Locate(ctx, library, ext)
		attempt := Attempt{Strategy: strategy.Name()}

		switch {
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			attempt.Outcome = OutcomeFailed
			attempt.Error = err.Error()
			logger.Warn("library discovery strategy failed",
				zap.String("strategy", strategy.Name()),
				zap.String("library", library),
				zap.Error(err))
		case ok:
			attempt.Outcome = OutcomeFound
			attempt.LibraryDir = dir
			logger.Debug("library found",
				zap.String("strategy", strategy.Name()),
				zap.String("library", library),
				zap.String("dir", dir))
		default:
			attempt.Outcome = OutcomeSkipped
			logger.Debug("library discovery strategy skipped",
				zap.String("strategy", strategy.Name()),
				zap.String("library", library))
		}

		res.Attempts = append(res.Attempts, attempt)

		if attempt.Outcome == OutcomeFound {
			res.Found = true
			res.LibraryDir = dir
			res.Strategy = strategy.Name()
			break
		}
	}

	if res.Found && l.runtimeSearchPaths {
		ext.AddRuntimeLibraryDir(res.LibraryDir)
	}

	if !res.Found {
		logger.Info("library not found by any strategy", zap.String("library", library))
	}

	return res, nil
}
