package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveInputs expands glob patterns to concrete input files.
// Supports both single-level wildcards (*) and recursive wildcards (**).
//
// Examples:
//   - "records-2021-12-01.csv" → ["/abs/records-2021-12-01.csv"]
//   - "exports/*.csv" → every CSV directly under exports
//   - "exports/**/*.csv" → every CSV under exports, recursively
//
// Returns only regular files, deduplicated, in pattern order with the matches
// of each pattern sorted.
func ResolveInputs(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolvePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	if len(resolved) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	return resolved, nil
}

// resolvePattern expands a single glob pattern to files.
func resolvePattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path is a directory: %s", absPath)
		}
		return []string{absPath}, nil
	}

	absPattern, err := makeAbsolutePattern(pattern)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue // Skip paths that can't be stat'd
		}
		if info.Mode().IsRegular() {
			files = append(files, match)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	sort.Strings(files)
	return files, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// makeAbsolutePattern converts a relative pattern to absolute.
// Preserves glob characters in the pattern.
func makeAbsolutePattern(pattern string) (string, error) {
	if filepath.IsAbs(pattern) {
		return pattern, nil
	}

	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	absDir, err := filepath.Abs(filepath.FromSlash(base))
	if err != nil {
		return "", err
	}
	return filepath.Join(absDir, filepath.FromSlash(rest)), nil
}

// WatchRoots returns the static directory prefix of each pattern, which is
// where a watcher must listen for changes.
func WatchRoots(patterns []string) ([]string, error) {
	var roots []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		dir := filepath.Dir(pattern)
		if containsGlob(pattern) {
			base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
			dir = filepath.FromSlash(base)
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		if !seen[abs] {
			seen[abs] = true
			roots = append(roots, abs)
		}
	}
	return roots, nil
}
