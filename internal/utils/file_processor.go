package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileFilter decides whether a file takes part in a scan
type FileFilter func(path string, entry fs.DirEntry) bool

// DirectoryFilter decides whether a directory is descended into
type DirectoryFilter func(path string, entry fs.DirEntry) bool

// DefaultGoFileFilter filters for .go files, excluding tests and generated
// endpoint files
func DefaultGoFileFilter() FileFilter {
	return func(path string, entry fs.DirEntry) bool {
		if entry.IsDir() {
			return false
		}

		name := entry.Name()
		return strings.HasSuffix(name, ".go") &&
			!strings.HasSuffix(name, "_test.go") &&
			!strings.HasPrefix(name, "autogen_")
	}
}

// AutogenFileFilter filters for generated files
func AutogenFileFilter() FileFilter {
	return func(path string, entry fs.DirEntry) bool {
		if entry.IsDir() {
			return false
		}
		return strings.HasPrefix(entry.Name(), "autogen_")
	}
}

// DefaultDirectoryFilter skips directories that never hold scannable source
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		"testdata":     true,
		"build":        true,
		"dist":         true,
	}

	return func(path string, entry fs.DirEntry) bool {
		if !entry.IsDir() {
			return true
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") && name != "." {
			return false
		}
		if strings.HasPrefix(name, "_") {
			return false
		}
		return !skipDirs[name]
	}
}

// FindFiles walks root and collects files accepted by fileFilter, skipping
// subtrees rejected by dirFilter. Results are sorted for determinism.
func FindFiles(root string, fileFilter FileFilter, dirFilter DirectoryFilter) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != root && !dirFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if fileFilter(path, entry) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// DirectoriesWithGoFiles returns every directory under root that directly
// contains at least one scannable Go file
func DirectoriesWithGoFiles(root string) ([]string, error) {
	files, err := FindFiles(root, DefaultGoFileFilter(), DefaultDirectoryFilter())
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, file := range files {
		dir := filepath.Dir(file)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// IsDirectory reports whether path exists and is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
