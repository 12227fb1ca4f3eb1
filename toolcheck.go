package papiext

import (
	"fmt"
	"os/exec"
	"strings"
)

// ToolChecker is an optional interface for registries and strategies that
// shell out to external tools.
//
// Implementations declare their tool dependencies so callers can report
// missing tools before resolving. The pkg-config registry implements it.
//
// # Consumer Usage
//
//	if checker, ok := registry.(ToolChecker); ok {
//	    if err := checker.CheckTools(); err != nil {
//	        return fmt.Errorf("registry unavailable: %w", err)
//	    }
//	}
type ToolChecker interface {
	// RequiredTools returns the list of tools this component needs.
	RequiredTools() []ToolRequirement

	// CheckTools verifies that all required tools are available.
	//
	// Returns nil if all required tools are found, or an error describing
	// which tools are missing. Optional tools don't cause errors if missing.
	CheckTools() error
}

// ToolRequirement describes an external tool dependency.
//
// # Examples
//
// Tool with alternatives:
//
//	ToolRequirement{
//	    Name: "pkg-config",
//	    Alternatives: []string{"pkgconf"},
//	    Purpose: "package metadata registry",
//	}
type ToolRequirement struct {
	// Name is the primary tool binary name (e.g., "pkg-config").
	Name string

	// Alternatives are alternative tool names that can satisfy this requirement.
	Alternatives []string

	// Optional indicates this tool is optional and won't cause an error if missing.
	Optional bool

	// Purpose is a human-readable description of why this tool is needed.
	Purpose string
}

// CheckToolAvailable checks if a tool is available in the system PATH.
//
// Returns nil if the tool is found in PATH, or an error if not found.
func CheckToolAvailable(tool string) error {
	_, err := exec.LookPath(tool)
	if err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}
	return nil
}

// CheckRequiredTools verifies all required tools are available.
//
// # Behavior
//
//   - Checks the primary tool name first
//   - If not found, tries each alternative tool in order
//   - Optional tools are checked but don't cause errors
//   - Returns all missing required tools in a single error
//
// # Error Format
//
// Single missing tool:
//
//	pkg-config (package metadata registry) not found in PATH
//
// Multiple missing tools:
//
//	missing required tools: pkg-config (package metadata registry), cc (C compiler)
func CheckRequiredTools(requirements []ToolRequirement) error {
	var missingTools []string

	for _, req := range requirements {
		found := CheckToolAvailable(req.Name) == nil

		if !found {
			for _, alt := range req.Alternatives {
				if CheckToolAvailable(alt) == nil {
					found = true
					break
				}
			}
		}

		if !found && !req.Optional {
			if req.Purpose != "" {
				missingTools = append(missingTools, fmt.Sprintf("%s (%s)", req.Name, req.Purpose))
			} else {
				missingTools = append(missingTools, req.Name)
			}
		}
	}

	if len(missingTools) == 0 {
		return nil
	}

	if len(missingTools) == 1 {
		return fmt.Errorf("%s not found in PATH", missingTools[0])
	}

	return fmt.Errorf("missing required tools: %s", strings.Join(missingTools, ", "))
}
