// Package fsys abstracts the file operations of the storage layer so tests
// can count disk access and inject write failures.
package fsys

import (
	"io"
	"os"
)

// File is an open file handle used for writing snapshots.
type File interface {
	io.WriteCloser
	Sync() error
	Name() string
}

// FS is the set of file system operations the storage layer performs.
type FS interface {
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Rename(oldpath, newpath string) error
	Remove(name string) error
	Stat(name string) (os.FileInfo, error)
}

// Local implements FS using the os package.
type Local struct{}

func (Local) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (Local) ReadFile(name string) ([]byte, error)         { return os.ReadFile(name) }
func (Local) Rename(oldpath, newpath string) error         { return os.Rename(oldpath, newpath) }
func (Local) Remove(name string) error                     { return os.Remove(name) }
func (Local) Stat(name string) (os.FileInfo, error)        { return os.Stat(name) }

func (Local) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm)
}

// Default is the local file system.
var Default FS = Local{}
