package app

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pdgclone/pdgclone/domain"
)

// ResolvePDGPath resolves a single PDG input argument. If pattern names an
// existing file directly, it's returned as-is; otherwise pattern is
// treated as a doublestar glob and must match exactly one file.
func ResolvePDGPath(pattern string) (string, error) {
	if pattern == "" {
		return "", domain.NewInvalidInputError("PDG path is required", nil)
	}

	if info, err := os.Stat(pattern); err == nil && !info.IsDir() {
		return pattern, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return "", domain.NewInvalidInputError("invalid glob pattern: "+pattern, err)
	}
	switch len(matches) {
	case 0:
		return "", domain.NewFileNotFoundError(pattern, nil)
	case 1:
		return matches[0], nil
	default:
		return "", domain.NewInvalidInputError(
			"pattern matched multiple files, expected exactly one: "+pattern, nil)
	}
}

// ResolvePDGGlob expands pattern into every matching PDG file path,
// erroring if nothing matches.
func ResolvePDGGlob(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, domain.NewInvalidInputError("glob pattern is required", nil)
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, domain.NewInvalidInputError("invalid glob pattern: "+pattern, err)
	}
	if len(matches) == 0 {
		return nil, domain.NewInvalidInputError("pattern matched no files: "+pattern, nil)
	}
	return matches, nil
}
