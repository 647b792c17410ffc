package fs

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

// InMemoryFile is a file backed by a byte buffer
type InMemoryFile struct {
	name   string
	buffer *bytes.Buffer
}

func (i *InMemoryFile) Read(p []byte) (n int, err error) {
	return i.buffer.Read(p)
}

func (i *InMemoryFile) Write(p []byte) (int, error) {
	return i.buffer.Write(p)
}

func (i *InMemoryFile) Close() error {
	return nil
}

func (i *InMemoryFile) Name() string {
	return i.name
}

// InMemory represents an in memory file system, mostly useful for testing
type InMemory struct {
	files map[string]*bytes.Buffer
	m     sync.Mutex
}

// NewInMemory instantiates an empty in memory file system
func NewInMemory() *InMemory {
	return &InMemory{
		files: make(map[string]*bytes.Buffer),
	}
}

// Open returns a reader over a snapshot of the named file
func (i *InMemory) Open(path string) (File, error) {
	i.m.Lock()
	defer i.m.Unlock()

	buf, ok := i.files[path]
	if !ok {
		return nil, fmt.Errorf("could not open sleep file: %w", os.ErrNotExist)
	}

	return &InMemoryFile{
		name:   path,
		buffer: bytes.NewBuffer(append([]byte(nil), buf.Bytes()...)),
	}, nil
}

// Create creates the named file
func (i *InMemory) Create(path string, overwrite bool) (File, error) {
	i.m.Lock()
	defer i.m.Unlock()

	if _, ok := i.files[path]; ok && !overwrite {
		return nil, fmt.Errorf("%w: %s", ErrExists, path)
	}

	buf := bytes.NewBuffer([]byte{})

	i.files[path] = buf

	return &InMemoryFile{
		name:   path,
		buffer: buf,
	}, nil
}

// Bytes returns the content of the named file
func (i *InMemory) Bytes(path string) []byte {
	i.m.Lock()
	defer i.m.Unlock()

	buf, ok := i.files[path]
	if !ok {
		return nil
	}

	return append([]byte(nil), buf.Bytes()...)
}

// Put stores b as the content of the named file
func (i *InMemory) Put(path string, b []byte) {
	i.m.Lock()
	defer i.m.Unlock()

	i.files[path] = bytes.NewBuffer(append([]byte(nil), b...))
}
