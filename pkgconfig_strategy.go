package papiext

import (
	"context"
	"errors"
)

// PkgConfigStrategy looks the library up in a package metadata registry.
//
// On a hit the registry's include directories, library directories and link
// libraries are merged into the descriptor, and the package's libdir variable
// is returned. A registry miss (ErrPackageNotFound) is a skip, not an error.
type PkgConfigStrategy struct {
	Registry PackageRegistry
}

// Name returns the strategy name
func (s *PkgConfigStrategy) Name() string {
	return "pkg-config"
}

// Locate implements Strategy
func (s *PkgConfigStrategy) Locate(ctx context.Context, library string, ext *Extension) (string, bool, error) {
	if s.Registry == nil {
		return "", false, nil
	}

	pkg, err := s.Registry.Lookup(ctx, library)
	if errors.Is(err, ErrPackageNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	for _, dir := range pkg.IncludeDirs {
		ext.AddIncludeDir(dir)
	}
	for _, dir := range pkg.LibraryDirs {
		ext.AddLibraryDir(dir)
	}
	for _, lib := range pkg.Libraries {
		ext.AddLibrary(lib)
	}

	libDir := pkg.LibDir()
	if libDir == "" {
		return "", false, nil
	}
	return libDir, true, nil
}
