package papiext

import (
	"context"
	"path/filepath"
)

// EnvPathStrategy reads an installation root from an environment variable.
//
// When the variable is set to ROOT, ROOT/include and ROOT/lib are added to the
// descriptor and ROOT/lib is returned. The paths are not checked for existence.
type EnvPathStrategy struct {
	Env      Environment
	Variable string // Install-root variable, e.g. PAPI_PATH
}

// Name returns the strategy name
func (s *EnvPathStrategy) Name() string {
	return "env"
}

// Locate implements Strategy
func (s *EnvPathStrategy) Locate(ctx context.Context, library string, ext *Extension) (string, bool, error) {
	root, ok := lookupNonEmpty(s.Env, s.Variable)
	if !ok {
		return "", false, nil
	}

	includeDir := filepath.Join(root, "include")
	libDir := filepath.Join(root, "lib")

	ext.AddIncludeDir(includeDir)
	ext.AddLibraryDir(libDir)

	return libDir, true, nil
}
