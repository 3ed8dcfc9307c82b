// Package loader handles source file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
)

// Loader opens assembler source files. Every pass of the assembler opens the
// source again and closes it when the pass is done.
type Loader struct{}

// New creates a new source loader.
func New() *Loader {
	return &Loader{}
}

// Open opens the source file for reading.
func (l *Loader) Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	return file, nil
}

// Read returns the complete content of the source file.
func (l *Loader) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
