// Package fs provides access to SLEEP files on disk or in memory.
// Only the header prefix of a file is ever read or written through it.
package fs

import (
	"errors"
	"io"
)

//go:generate mockery --name=FS --output=mocks
//go:generate mockery --name=File --output=mocks

// ErrExists is returned by Create when the file already exists and overwrite was not requested
var ErrExists = errors.New("gosleep: file already exists")

// FS represents a file system interface
type FS interface {
	// Open should open the named SLEEP file for reading
	Open(string) (File, error)

	// Create should create the named SLEEP file for writing, truncating an
	// existing file only if overwrite is true
	Create(path string, overwrite bool) (File, error)
}

// File represents a single SLEEP file
type File interface {
	io.ReadWriteCloser

	Name() string
}
