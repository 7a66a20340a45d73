package bridge

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrReleased = errors.New("buffer released")
	ErrIndex    = errors.New("buffer index out of range")
)

// Buffer is a row major float32 array owned by the caller until Release.
type Buffer struct {
	mu       sync.Mutex
	data     []float32
	shape    []int
	released bool
}

func newBuffer(shape ...int) *Buffer {
	size := 1
	for _, n := range shape {
		size *= n
	}
	return &Buffer{data: make([]float32, size), shape: shape}
}

func (b *Buffer) Shape() []int {
	return append([]int{}, b.shape...)
}

// Data returns the backing array; it must not be used after Release.
func (b *Buffer) Data() ([]float32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return nil, ErrReleased
	}
	return b.data, nil
}

func (b *Buffer) At(idx ...int) (float32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return 0, ErrReleased
	}
	if len(idx) != len(b.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrIndex, len(idx), len(b.shape))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= b.shape[d] {
			return 0, fmt.Errorf("%w: index %d of dimension %d (size %d)", ErrIndex, i, d, b.shape[d])
		}
		off = off*b.shape[d] + i
	}
	return b.data[off], nil
}

// Release frees the buffer. A second call returns ErrReleased.
func (b *Buffer) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return ErrReleased
	}
	b.released, b.data = true, nil
	return nil
}
