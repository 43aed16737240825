package files

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

func GetProjectRoot() (string, error) {
	_, filename, _, _ := runtime.Caller(0)
	return findGoModRoot(filename)
}

// GetDefaultDataDir returns the data directory under the project root,
// creating it if necessary.
func GetDefaultDataDir() string {
	root, err := GetProjectRoot()
	if err != nil {
		// Fall back to the working directory when running outside the repo.
		root = "."
	}
	dataDir := filepath.Join(root, "data")
	if err := EnsureDirectory(dataDir); err != nil {
		return "."
	}
	return dataDir
}

// EnsureDirectory creates dir and any missing parents.
func EnsureDirectory(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

// ReplaceExtension swaps the extension of path for ext, which must include the
// leading dot.
func ReplaceExtension(path string, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func findGoModRoot(path string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, nil
		}
		newPath := filepath.Dir(path)
		if newPath == path {
			return "", fmt.Errorf("go.mod not found")
		}
		path = newPath
	}
}
