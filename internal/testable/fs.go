// Package testable holds the narrow OS and git seams that host packages
// depend on, so tests can inject failures without touching real disks or
// repositories.
package testable

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is the subset of os and filepath used by textinfo's sources,
// config loader and report writer.
type FileSystem interface {
	Abs(path string) (string, error)
	Stat(name string) (os.FileInfo, error)
	Open(name string) (*os.File, error)
	Create(name string) (*os.File, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error

	// WalkDir visits root and everything below it in lexical order.
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// OsFileSystem forwards every call to the standard library.
type OsFileSystem struct{}

func (OsFileSystem) Abs(path string) (string, error)       { return filepath.Abs(path) }
func (OsFileSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (OsFileSystem) Open(name string) (*os.File, error)    { return os.Open(name) }     //nolint:gosec // caller controls path
func (OsFileSystem) Create(name string) (*os.File, error)  { return os.Create(name) }   //nolint:gosec // caller controls path
func (OsFileSystem) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) } //nolint:gosec // caller controls path

func (OsFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm) //nolint:gosec // caller controls path and perms
}

func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OsFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// DefaultFS is used wherever no FileSystem is injected.
var DefaultFS FileSystem = OsFileSystem{}
