// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
)

// ErrEmptyROM is returned for ROM files without content.
var ErrEmptyROM = errors.New("rom is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw ROM file. The file content is the program image that
// is copied to the program start address, no header is expected.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte more than allowed to detect oversized files without
	// loading them completely
	data, err := io.ReadAll(io.LimitReader(file, machine.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes validates a ROM that is already in memory.
func (l *Loader) LoadFromBytes(data []byte) ([]byte, error) {
	switch {
	case len(data) == 0:
		return nil, ErrEmptyROM
	case len(data) > machine.MaxROMSize:
		return nil, fmt.Errorf("%w: more than %d bytes", machine.ErrROMTooLarge, machine.MaxROMSize)
	}
	return data, nil
}
