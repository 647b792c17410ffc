package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DiskFile represents file on disk
type DiskFile struct {
	*os.File
}

// Name returns the base name of the file (without path)
func (f *DiskFile) Name() string {
	return filepath.Base(f.File.Name())
}

// NewDisk instantiates new disk based file system
func NewDisk() *Disk {
	return &Disk{}
}

// Disk represents disk based file system
type Disk struct{}

// Open opens an existing file for reading
func (fs *Disk) Open(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not open sleep file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("could not open sleep file: %s is a directory", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open sleep file: %w", err)
	}

	return &DiskFile{
		file,
	}, nil
}

// Create creates a file for writing, creating its parent directory if it does not exist
func (fs *Disk) Create(path string, overwrite bool) (File, error) {
	err := fs.createDir(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL

	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrExists, path)
		}

		return nil, fmt.Errorf("could not create sleep file: %w", err)
	}

	return &DiskFile{
		file,
	}, nil
}

func (fs *Disk) createDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		return os.MkdirAll(path, 0755)
	}

	if !info.IsDir() {
		return fmt.Errorf("file exists and it's not a folder")
	}

	return nil
}
