package papiext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var (
	// ErrPackageNotFound is returned by a PackageRegistry that has no entry for
	// the requested package. The pkg-config strategy treats it as a skip.
	ErrPackageNotFound = errors.New("package not found")

	// ErrToolUnavailable is returned when the registry binary cannot be run.
	ErrToolUnavailable = errors.New("registry tool unavailable")
)

// Package is the metadata a registry reports for an installed library.
type Package struct {
	Name        string
	Version     string
	IncludeDirs []string          // From -I flags
	LibraryDirs []string          // From -L flags
	Libraries   []string          // From -l flags
	Variables   map[string]string // Named variables such as prefix, libdir, includedir
}

// LibDir returns the libdir variable, falling back to the first reported
// library directory. Returns "" if neither is available.
func (p *Package) LibDir() string {
	if dir := p.Variables["libdir"]; dir != "" {
		return dir
	}
	if len(p.LibraryDirs) > 0 {
		return p.LibraryDirs[0]
	}
	return ""
}

// PackageRegistry looks up installed packages by logical name.
//
// Lookup returns an error wrapping ErrPackageNotFound when the registry has no
// entry for name. Any other error means the registry itself could not answer.
type PackageRegistry interface {
	Lookup(ctx context.Context, name string) (*Package, error)
}

// commandRunner runs an external command and returns its standard output.
type commandRunner func(ctx context.Context, env []string, name string, args ...string) ([]byte, error)

// PkgConfig is a PackageRegistry backed by the pkg-config binary.
//
// Compatible implementations (pkgconf) work as long as they support
// --exists, --cflags-only-I, --libs-only-L, --libs-only-l, --modversion,
// --print-variables and --variable.
type PkgConfig struct {
	// Path is the registry binary. Empty means "pkg-config", or "pkgconf"
	// when only that is installed.
	Path string

	// Env holds extra KEY=VALUE entries (e.g. PKG_CONFIG_PATH) appended to the
	// process environment of every invocation.
	Env []string

	run commandRunner
}

// RequiredTools returns the tools needed for registry lookups
func (p *PkgConfig) RequiredTools() []ToolRequirement {
	if p.Path != "" {
		return []ToolRequirement{{Name: p.Path, Purpose: "package metadata registry"}}
	}
	return []ToolRequirement{
		{
			Name:         "pkg-config",
			Alternatives: []string{"pkgconf"},
			Purpose:      "package metadata registry",
		},
	}
}

// CheckTools verifies that pkg-config is available
func (p *PkgConfig) CheckTools() error {
	return CheckRequiredTools(p.RequiredTools())
}

// Lookup implements PackageRegistry.
func (p *PkgConfig) Lookup(ctx context.Context, name string) (*Package, error) {
	if name == "" {
		return nil, ErrLibraryEmpty
	}

	if _, err := p.query(ctx, "--exists", name); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s: %w", name, ErrPackageNotFound)
		}
		return nil, err
	}

	pkg := &Package{
		Name:      name,
		Variables: make(map[string]string),
	}

	cflags, err := p.query(ctx, "--cflags-only-I", name)
	if err != nil {
		return nil, err
	}
	pkg.IncludeDirs = parseFlags(cflags, "-I")

	libDirs, err := p.query(ctx, "--libs-only-L", name)
	if err != nil {
		return nil, err
	}
	pkg.LibraryDirs = parseFlags(libDirs, "-L")

	libs, err := p.query(ctx, "--libs-only-l", name)
	if err != nil {
		return nil, err
	}
	pkg.Libraries = parseFlags(libs, "-l")

	if version, err := p.query(ctx, "--modversion", name); err == nil {
		pkg.Version = strings.TrimSpace(version)
	}

	names, err := p.query(ctx, "--print-variables", name)
	if err != nil {
		return nil, err
	}
	for _, variable := range strings.Fields(names) {
		value, err := p.query(ctx, "--variable="+variable, name)
		if err != nil {
			return nil, err
		}
		pkg.Variables[variable] = strings.TrimSpace(value)
	}

	return pkg, nil
}

// query runs the registry binary with args and returns trimmed stdout.
func (p *PkgConfig) query(ctx context.Context, args ...string) (string, error) {
	run := p.run
	if run == nil {
		run = execCommand
	}

	binary := p.binary()
	out, err := run(ctx, p.Env, binary, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", binary, ErrToolUnavailable)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && args[0] != "--exists" {
			return "", LocateError("pkg-config", strings.Split(strings.TrimSpace(string(exitErr.Stderr)), "\n"), err)
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// binary returns the configured binary, or the first of pkg-config and
// pkgconf found in PATH.
func (p *PkgConfig) binary() string {
	if p.Path != "" {
		return p.Path
	}
	for _, candidate := range []string{"pkg-config", "pkgconf"} {
		if CheckToolAvailable(candidate) == nil {
			return candidate
		}
	}
	return "pkg-config"
}

func execCommand(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)
	return cmd.Output()
}

// parseFlags extracts the values of flags with the given prefix from a
// whitespace-separated flag list, e.g. "-I/opt/papi/include" -> "/opt/papi/include".
func parseFlags(flags, prefix string) []string {
	var values []string
	for _, field := range strings.Fields(flags) {
		if !strings.HasPrefix(field, prefix) {
			continue
		}
		values = appendUnique(values, strings.TrimPrefix(field, prefix))
	}
	return values
}
