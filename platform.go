package papiext

// PlatformSupportsRuntimeSearchPaths reports whether binaries built for goos
// can carry an embedded library search path (rpath).
//
// Windows resolves DLLs through its own loader rules and has no rpath, so the
// runtime library directory is only recorded elsewhere.
func PlatformSupportsRuntimeSearchPaths(goos string) bool {
	switch goos {
	case "windows":
		return false
	default:
		return true
	}
}
