// Package filesystem is the single entry point to the disk.
// Tests swap the backend for an in-memory one with SetMemMapFs.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the current backend.
func API() afero.Afero {
	return backend
}

func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// GacheFs lets gache caches persist through the current backend.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
