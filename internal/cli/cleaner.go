package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/k-fujino-kohei/restep/internal/generator"
	"github.com/k-fujino-kohei/restep/internal/utils"
)

// Cleaner handles cleaning up generated files
type Cleaner struct{}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanGeneratedFiles removes every generated endpoints file from the
// specified directories. Returns the paths that were removed.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	var removedFiles []string

	for _, dir := range directories {
		if err := c.cleanDirectory(dir, &removedFiles); err != nil {
			return removedFiles, fmt.Errorf("failed to clean directory %s: %w", dir, err)
		}
	}

	return removedFiles, nil
}

func (c *Cleaner) cleanDirectory(dir string, removedFiles *[]string) error {
	if strings.HasSuffix(dir, "/...") {
		baseDir := strings.TrimSuffix(dir, "/...")
		if baseDir == "" {
			baseDir = "."
		}
		return c.cleanRecursively(baseDir, removedFiles)
	}

	return c.cleanSingleDirectory(dir, removedFiles)
}

func (c *Cleaner) cleanRecursively(baseDir string, removedFiles *[]string) error {
	if !utils.IsDirectory(baseDir) {
		return nil
	}

	files, err := utils.FindFiles(baseDir, utils.AutogenFileFilter(), utils.DefaultDirectoryFilter())
	if err != nil {
		return err
	}

	for _, file := range files {
		if filepath.Base(file) != generator.GeneratedFileName {
			continue
		}
		if err := os.Remove(file); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", file, err)
		}
		*removedFiles = append(*removedFiles, file)
	}

	return nil
}

func (c *Cleaner) cleanSingleDirectory(dir string, removedFiles *[]string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	autogenFile := filepath.Join(dir, generator.GeneratedFileName)

	if _, err := os.Stat(autogenFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to check file %s: %w", autogenFile, err)
	}

	if err := os.Remove(autogenFile); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", autogenFile, err)
	}

	*removedFiles = append(*removedFiles, autogenFile)
	return nil
}
