package papiext

import "strings"

// CFlags returns the compiler flags for the descriptor's include directories.
func (e *Extension) CFlags() []string {
	flags := make([]string, 0, len(e.IncludeDirs))
	for _, dir := range e.IncludeDirs {
		flags = append(flags, "-I"+dir)
	}
	return flags
}

// LDFlags returns the linker flags: -L for each library directory, an rpath
// entry for each runtime library directory, and -l for each library.
func (e *Extension) LDFlags() []string {
	flags := make([]string, 0, len(e.LibraryDirs)+len(e.RuntimeLibraryDirs)+len(e.Libraries))
	for _, dir := range e.LibraryDirs {
		flags = append(flags, "-L"+dir)
	}
	for _, dir := range e.RuntimeLibraryDirs {
		flags = append(flags, "-Wl,-rpath,"+dir)
	}
	for _, lib := range e.Libraries {
		flags = append(flags, "-l"+lib)
	}
	return flags
}

// CgoEnv returns CGO_CFLAGS and CGO_LDFLAGS for building the extension with cgo.
// Variables with no flags are omitted.
func (e *Extension) CgoEnv() map[string]string {
	env := make(map[string]string, 2)
	if cflags := e.CFlags(); len(cflags) > 0 {
		env["CGO_CFLAGS"] = strings.Join(cflags, " ")
	}
	if ldflags := e.LDFlags(); len(ldflags) > 0 {
		env["CGO_LDFLAGS"] = strings.Join(ldflags, " ")
	}
	return env
}
