package blockpool

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

// registry is the process-wide set of pools, one per block size.
var registry struct {
	mu    sync.RWMutex
	pools map[int]*Pool
}

func init() {
	registry.pools = make(map[int]*Pool)
}

// PoolFor returns the registry pool for blocks of size bytes, creating it
// with [DefaultOptions] on first use.
func PoolFor(size int) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: block size %d must be positive", ErrInvalidOption, size)
	}
	registry.mu.RLock()
	p, ok := registry.pools[size]
	registry.mu.RUnlock()
	if ok {
		return p, nil
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if p, ok := registry.pools[size]; ok {
		return p, nil
	}
	p, err := New(DefaultOptions(size))
	if err != nil {
		return nil, err
	}
	registry.pools[size] = p
	return p, nil
}

// Alloc returns a zeroed block of size bytes from the registry pool for
// that size.
func Alloc(size int) (unsafe.Pointer, error) {
	p, err := PoolFor(size)
	if err != nil {
		return nil, err
	}
	return p.Alloc()
}

// Free returns blk, obtained from [Alloc] with the same size, to the
// registry. Freeing with another size fails with [ErrForeignBlock].
func Free(blk unsafe.Pointer, size int) error {
	p, err := PoolFor(size)
	if err != nil {
		return err
	}
	return p.Free(blk)
}

// Reset closes and forgets every registry pool.
// Intended for use in tests.
func Reset() error {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	var errs []error
	for _, p := range registry.pools {
		errs = append(errs, p.Close())
	}
	registry.pools = make(map[int]*Pool)
	return errors.Join(errs...)
}
