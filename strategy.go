package papiext

import "context"

// Strategy defines the interface that all library discovery strategies must implement.
//
// Each strategy knows one way of finding a native library (an install-root
// environment variable, the pkg-config registry, a library search path) and is
// registered with a Locator in priority order.
//
// # Strategy Lifecycle
//
//  1. Name() - Used in logs and in Resolution.Attempts
//  2. Locate() - Locator calls this until one strategy reports ok
//
// # Example Implementation
//
//	type FixedDirStrategy struct{ Dir string }
//
//	func (s *FixedDirStrategy) Name() string {
//	    return "fixed"
//	}
//
//	func (s *FixedDirStrategy) Locate(ctx context.Context, library string, ext *Extension) (string, bool, error) {
//	    ext.AddLibraryDir(s.Dir)
//	    return s.Dir, true, nil
//	}
//
// # Absence
//
// A strategy that does not apply (its variable is unset) and a strategy that
// looked and found nothing both return ok == false with a nil error. The
// Locator treats them the same way. A non-nil error means the lookup itself
// broke; the Locator records it and moves on to the next strategy.
//
// # Side Effects
//
// Strategies may add paths to ext even when they do not win. The Extension
// Add* methods deduplicate, so repeated resolution does not grow the lists.
type Strategy interface {
	// Name returns the short, stable name of this strategy.
	//
	// Examples: "env", "pkg-config", "search-path"
	Name() string

	// Locate tries to find the runtime library directory of library.
	//
	// Returns:
	//   - dir, true, nil when the library was found
	//   - "", false, nil when the strategy is inapplicable or found nothing
	//   - "", false, err when the lookup failed
	Locate(ctx context.Context, library string, ext *Extension) (dir string, ok bool, err error)
}
