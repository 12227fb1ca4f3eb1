package papiext

import (
	"fmt"
	"regexp"
	"strings"
)

// NameMatcher reports whether a directory entry named filename provides library.
type NameMatcher func(filename, library string) bool

// SubstringMatcher matches any filename containing "lib" + library.
//
// This is the historical convention of the search-path scan. It accepts
// libpapi.so and libpapi.so.7, but also unrelated names that merely contain the
// substring, such as libpapi_extra.txt or libpapifoo.so. Use
// SharedLibraryMatcher when that is a problem.
func SubstringMatcher(filename, library string) bool {
	if library == "" {
		return false
	}
	return strings.Contains(filename, "lib"+library)
}

// SharedLibraryMatcher matches only library artifacts named after library:
// lib<name>.so, lib<name>.so.N[.N...], lib<name>[.N].dylib, lib<name>.a and
// lib<name>.dll.
func SharedLibraryMatcher(filename, library string) bool {
	if library == "" {
		return false
	}
	return MatchesPattern(filename, `^lib`+regexp.QuoteMeta(library)+`(\.[0-9]+)*\.(so|dylib|a|dll)(\.[0-9]+)*$`)
}

// MatchesPattern checks if a filename matches any of the given regex patterns.
//
// If a pattern is invalid regex, it is silently skipped.
//
// # Example
//
//	if MatchesPattern(filename, `^libpapi\.so`, `^libpapi\.dylib$`) {
//	    // Handle the shared library
//	}
func MatchesPattern(filename string, patterns ...string) bool {
	for _, pattern := range patterns {
		if matched, _ := regexp.MatchString(pattern, filename); matched {
			return true
		}
	}
	return false
}

// LocateError creates a standardized strategy error with output context.
//
// # Format
//
// With error and output:
//
//	pkg-config lookup failed: exit status 1
//
//	Output:
//	Package papi has an invalid Requires field
//
// With error but no output:
//
//	pkg-config lookup failed: exit status 1
//
// With output but no error:
//
//	pkg-config lookup failed
//
//	Output:
//	... output lines ...
//
// The underlying error is wrapped and can be matched with errors.Is.
func LocateError(strategy string, output []string, err error) error {
	outputStr := strings.TrimSpace(strings.Join(output, "\n"))

	if err == nil {
		if outputStr != "" {
			return fmt.Errorf("%s lookup failed\n\nOutput:\n%s", strategy, outputStr)
		}
		return fmt.Errorf("%s lookup failed", strategy)
	}

	if outputStr != "" {
		return fmt.Errorf("%s lookup failed: %w\n\nOutput:\n%s", strategy, err, outputStr)
	}
	return fmt.Errorf("%s lookup failed: %w", strategy, err)
}

// appendUnique appends value to values unless it is empty or already present.
func appendUnique(values []string, value string) []string {
	if value == "" {
		return values
	}
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
