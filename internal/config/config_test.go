package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, used, err := Load(LoadOptions{SearchDirs: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Empty(t, used)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PAPIEXT_LIBRARY", "pfm")
	t.Setenv("PAPIEXT_STRICT_MATCH", "true")
	t.Setenv("PAPIEXT_RUNTIME_SEARCH_PATHS", "false")

	cfg, _, err := Load(LoadOptions{SearchDirs: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Equal(t, "pfm", cfg.Library)
	assert.True(t, cfg.StrictMatch)
	assert.Equal(t, "false", cfg.RuntimeSearchPaths)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `library: papi
extension: papi_ext
sources:
  - src/a.pyx
  - src/b.pyx
root_env: MY_PAPI_ROOT
pkg_config: pkgconf
log_level: debug
`
	path := filepath.Join(dir, "papiext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, used, err := Load(LoadOptions{SearchDirs: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, "papi_ext", cfg.Extension)
	assert.Equal(t, []string{"src/a.pyx", "src/b.pyx"}, cfg.Sources)
	assert.Equal(t, "MY_PAPI_ROOT", cfg.RootEnv)
	assert.Equal(t, "LIBRARY_PATH", cfg.SearchPathEnv)
	assert.Equal(t, "pkgconf", cfg.PkgConfig)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("search_path_env = \"LD_LIBRARY_PATH\"\n"), 0o644))

	cfg, used, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "LD_LIBRARY_PATH", cfg.SearchPathEnv)

	_, _, err = Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("PAPIEXT_RUNTIME_SEARCH_PATHS", "sometimes")

	_, _, err := Load(LoadOptions{SearchDirs: []string{t.TempDir()}})
	assert.ErrorContains(t, err, "runtime_search_paths")
}

func TestRuntimeSearchPathsEnabled(t *testing.T) {
	tests := []struct {
		value string
		goos  string
		want  bool
	}{
		{"auto", "linux", true},
		{"auto", "windows", false},
		{"", "darwin", true},
		{"AUTO", "windows", false},
		{"true", "windows", true},
		{"false", "linux", false},
		{"1", "linux", true},
	}

	for _, tt := range tests {
		t.Run(tt.value+"/"+tt.goos, func(t *testing.T) {
			cfg := &Config{RuntimeSearchPaths: tt.value}
			got, err := cfg.RuntimeSearchPathsEnabled(tt.goos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := (&Config{RuntimeSearchPaths: "maybe"}).RuntimeSearchPathsEnabled("linux")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Library = ""
	assert.Error(t, cfg.Validate())
}

func TestConfigNewExtension(t *testing.T) {
	ext := DefaultConfig().NewExtension()

	assert.Equal(t, "cypapi", ext.Name)
	assert.Equal(t, []string{"papi/cypapi.pyx"}, ext.Sources)
	assert.Equal(t, []string{"papi"}, ext.Libraries)
}
