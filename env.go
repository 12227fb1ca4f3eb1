package papiext

import "os"

// Defaults for the PAPI binding.
const (
	DefaultLibrary          = "papi"
	DefaultExtensionName    = "cypapi"
	DefaultSource           = "papi/cypapi.pyx"
	DefaultRootEnvVar       = "PAPI_PATH"
	DefaultSearchPathEnvVar = "LIBRARY_PATH"
)

// Environment is a read-only view of environment variables.
//
// Strategies read variables through an Environment instead of os.Getenv so
// tests can supply a fixed snapshot.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// OSEnvironment reads the process environment.
type OSEnvironment struct{}

// LookupEnv implements Environment.
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is a fixed environment snapshot.
type MapEnvironment map[string]string

// LookupEnv implements Environment.
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// lookupNonEmpty treats an empty value the same as an unset variable.
func lookupNonEmpty(env Environment, key string) (string, bool) {
	if env == nil || key == "" {
		return "", false
	}
	v, ok := env.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
