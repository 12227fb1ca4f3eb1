package papiext

import (
	"context"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// SearchPathSeparator delimits directories in the search-path variable.
const SearchPathSeparator = ":"

// SearchPathStrategy scans the directories listed in a colon-delimited
// environment variable (LIBRARY_PATH by default).
//
// Directories are scanned in listed order and the first one holding an entry
// accepted by Match is returned. When several directories match, the earliest
// wins; there is no version or uniqueness check between them. Empty list
// elements and directories that cannot be read are skipped.
//
// The strategy only reads the directory; it does not add anything to the
// descriptor.
type SearchPathStrategy struct {
	Env      Environment
	Variable string      // Search-path variable, e.g. LIBRARY_PATH
	Fs       afero.Fs    // Filesystem to scan; nil means the OS filesystem
	Match    NameMatcher // Filename convention; nil means SubstringMatcher
	Logger   *zap.Logger
}

// Name returns the strategy name
func (s *SearchPathStrategy) Name() string {
	return "search-path"
}

// Locate implements Strategy
func (s *SearchPathStrategy) Locate(ctx context.Context, library string, ext *Extension) (string, bool, error) {
	value, ok := lookupNonEmpty(s.Env, s.Variable)
	if !ok {
		return "", false, nil
	}

	fs := s.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	match := s.Match
	if match == nil {
		match = SubstringMatcher
	}
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, dir := range strings.Split(value, SearchPathSeparator) {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		if dir == "" {
			continue
		}

		entries, err := afero.ReadDir(fs, dir)
		if err != nil {
			logger.Debug("skipping unreadable search directory", zap.String("dir", dir), zap.Error(err))
			continue
		}

		for _, entry := range entries {
			if match(entry.Name(), library) {
				logger.Debug("library match", zap.String("dir", dir), zap.String("file", entry.Name()))
				return dir, true, nil
			}
		}
	}

	return "", false, nil
}
