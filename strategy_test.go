package papiext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvPathStrategy(t *testing.T) {
	tests := []struct {
		name        string
		env         MapEnvironment
		wantDir     string
		wantOK      bool
		wantInclude []string
		wantLib     []string
	}{
		{
			name: "unset",
			env:  MapEnvironment{},
		},
		{
			name: "empty",
			env:  MapEnvironment{"PAPI_PATH": ""},
		},
		{
			name:        "set",
			env:         MapEnvironment{"PAPI_PATH": "/opt/papi"},
			wantDir:     "/opt/papi/lib",
			wantOK:      true,
			wantInclude: []string{"/opt/papi/include"},
			wantLib:     []string{"/opt/papi/lib"},
		},
		{
			name:        "trailing slash",
			env:         MapEnvironment{"PAPI_PATH": "/opt/papi/"},
			wantDir:     "/opt/papi/lib",
			wantOK:      true,
			wantInclude: []string{"/opt/papi/include"},
			wantLib:     []string{"/opt/papi/lib"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &EnvPathStrategy{Env: tt.env, Variable: "PAPI_PATH"}
			ext := &Extension{}

			dir, ok, err := s.Locate(context.Background(), "papi", ext)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantInclude, ext.IncludeDirs)
			assert.Equal(t, tt.wantLib, ext.LibraryDirs)
			assert.Empty(t, ext.RuntimeLibraryDirs)
		})
	}
}

func TestEnvPathStrategyAppendsOnce(t *testing.T) {
	s := &EnvPathStrategy{Env: MapEnvironment{"PAPI_PATH": "/opt/papi"}, Variable: "PAPI_PATH"}
	ext := &Extension{}

	for i := 0; i < 3; i++ {
		_, _, err := s.Locate(context.Background(), "papi", ext)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"/opt/papi/include"}, ext.IncludeDirs)
	assert.Equal(t, []string{"/opt/papi/lib"}, ext.LibraryDirs)
}

func TestPkgConfigStrategy(t *testing.T) {
	t.Run("registry miss is a skip", func(t *testing.T) {
		s := &PkgConfigStrategy{Registry: &fakeRegistry{}}
		ext := &Extension{}

		dir, ok, err := s.Locate(context.Background(), "papi", ext)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, dir)
		assert.Empty(t, ext.IncludeDirs)
	})

	t.Run("other registry errors are returned", func(t *testing.T) {
		boom := errors.New("boom")
		s := &PkgConfigStrategy{Registry: &fakeRegistry{err: boom}}

		_, ok, err := s.Locate(context.Background(), "papi", &Extension{})
		assert.ErrorIs(t, err, boom)
		assert.False(t, ok)
	})

	t.Run("nil registry is a skip", func(t *testing.T) {
		s := &PkgConfigStrategy{}

		_, ok, err := s.Locate(context.Background(), "papi", &Extension{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("hit merges metadata", func(t *testing.T) {
		s := &PkgConfigStrategy{Registry: &fakeRegistry{packages: map[string]*Package{
			"papi": papiPackage("/usr/local/papi/lib"),
		}}}
		ext := NewExtension("cypapi", nil, "papi")

		dir, ok, err := s.Locate(context.Background(), "papi", ext)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "/usr/local/papi/lib", dir)
		assert.Equal(t, []string{"/usr/local/papi/include"}, ext.IncludeDirs)
		assert.Equal(t, []string{"/usr/local/papi/lib"}, ext.LibraryDirs)
		assert.Equal(t, []string{"papi"}, ext.Libraries)
	})

	t.Run("libdir variable wins over -L order", func(t *testing.T) {
		pkg := &Package{
			LibraryDirs: []string{"/usr/lib/extra", "/usr/lib/papi"},
			Variables:   map[string]string{"libdir": "/usr/lib/papi"},
		}
		s := &PkgConfigStrategy{Registry: &fakeRegistry{packages: map[string]*Package{"papi": pkg}}}

		dir, ok, err := s.Locate(context.Background(), "papi", &Extension{})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "/usr/lib/papi", dir)
	})

	t.Run("no libdir falls back to first library dir", func(t *testing.T) {
		pkg := &Package{LibraryDirs: []string{"/usr/lib/papi"}}
		s := &PkgConfigStrategy{Registry: &fakeRegistry{packages: map[string]*Package{"papi": pkg}}}

		dir, ok, err := s.Locate(context.Background(), "papi", &Extension{})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "/usr/lib/papi", dir)
	})

	t.Run("no library dir at all merges but skips", func(t *testing.T) {
		pkg := &Package{IncludeDirs: []string{"/usr/include/papi"}, Libraries: []string{"papi"}}
		s := &PkgConfigStrategy{Registry: &fakeRegistry{packages: map[string]*Package{"papi": pkg}}}
		ext := &Extension{}

		dir, ok, err := s.Locate(context.Background(), "papi", ext)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, dir)
		assert.Equal(t, []string{"/usr/include/papi"}, ext.IncludeDirs)
	})
}

func TestSearchPathStrategy(t *testing.T) {
	fs := memFs(t,
		"/usr/lib/libc.so.6",
		"/opt/papi/lib/libpapi.so",
		"/opt/papi/lib/libpfm.so",
		"/home/user/lib/libpapi.so.7.1.0",
	)

	tests := []struct {
		name    string
		value   string
		set     bool
		wantDir string
		wantOK  bool
	}{
		{name: "unset"},
		{name: "empty", value: "", set: true},
		{name: "no match", value: "/usr/lib", set: true},
		{name: "single dir", value: "/opt/papi/lib", set: true, wantDir: "/opt/papi/lib", wantOK: true},
		{name: "later dir", value: "/usr/lib:/home/user/lib", set: true, wantDir: "/home/user/lib", wantOK: true},
		{name: "first of several", value: "/home/user/lib:/opt/papi/lib", set: true, wantDir: "/home/user/lib", wantOK: true},
		{name: "missing dir skipped", value: "/nope:/opt/papi/lib", set: true, wantDir: "/opt/papi/lib", wantOK: true},
		{name: "only separators", value: ":::", set: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := MapEnvironment{}
			if tt.set {
				env["LIBRARY_PATH"] = tt.value
			}
			s := &SearchPathStrategy{Env: env, Variable: "LIBRARY_PATH", Fs: fs}
			ext := &Extension{}

			dir, ok, err := s.Locate(context.Background(), "papi", ext)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, &Extension{}, ext, "scan must not touch the descriptor")
		})
	}
}

func TestSearchPathStrategyUsesOSFilesystemByDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "libpapi.so"), []byte("ELF"), 0o644))

	s := &SearchPathStrategy{Env: MapEnvironment{"LIBRARY_PATH": dir}, Variable: "LIBRARY_PATH"}
	got, ok, err := s.Locate(context.Background(), "papi", &Extension{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, dir, got)
}

func TestSearchPathStrategyCanceled(t *testing.T) {
	s := &SearchPathStrategy{Env: MapEnvironment{"LIBRARY_PATH": "/a"}, Variable: "LIBRARY_PATH", Fs: memFs(t, "/a/libpapi.so")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := s.Locate(ctx, "papi", &Extension{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
