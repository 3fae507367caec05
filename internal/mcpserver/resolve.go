// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes textinfo's analysis as tools over stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathInfo holds the resolved location of an analysis target.
type PathInfo struct {
	// AbsPath is the absolute, symlink-resolved path.
	AbsPath string
	// ConfigDir is where project config is looked up: AbsPath itself for a
	// directory, its parent for a file.
	ConfigDir string
}

// ResolvePath resolves a file or directory path to an absolute path. It
// returns an error if the path does not exist.
func ResolvePath(path string) (*PathInfo, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist", path)
	}

	configDir := absPath
	if !info.IsDir() {
		configDir = filepath.Dir(absPath)
	}
	return &PathInfo{AbsPath: absPath, ConfigDir: configDir}, nil
}
