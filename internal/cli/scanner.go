package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/k-fujino-kohei/restep/internal/utils"
)

// DirectoryScanner resolves the directory arguments into concrete package
// directories that contain scannable Go files
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories expands the provided directory arguments. A trailing "/..."
// scans the subtree recursively the way the go tool does; a plain path means
// just that directory. The result is deduplicated and sorted.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, rootDir := range rootDirs {
		if strings.HasSuffix(rootDir, "/...") {
			baseDir := strings.TrimSuffix(rootDir, "/...")
			if baseDir == "" {
				baseDir = "."
			}

			cleanPath, err := filepath.Abs(baseDir)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve path %s: %w", baseDir, err)
			}
			if !utils.IsDirectory(cleanPath) {
				return nil, fmt.Errorf("directory does not exist: %s", baseDir)
			}

			found, err := utils.DirectoriesWithGoFiles(cleanPath)
			if err != nil {
				return nil, err
			}
			for _, dir := range found {
				add(dir)
			}
			continue
		}

		cleanPath, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", rootDir, err)
		}
		if !utils.IsDirectory(cleanPath) {
			return nil, fmt.Errorf("directory does not exist: %s", rootDir)
		}
		if hasGoFiles(cleanPath) {
			add(cleanPath)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// hasGoFiles reports whether dir directly contains a scannable Go file
func hasGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	filter := utils.DefaultGoFileFilter()
	for _, entry := range entries {
		if filter(filepath.Join(dir, entry.Name()), entry) {
			return true
		}
	}
	return false
}
