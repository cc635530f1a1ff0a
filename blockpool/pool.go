package blockpool

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

const (
	// DefaultBlocksPerSlab is the number of blocks carved from each slab.
	DefaultBlocksPerSlab = 64
)

// Options configures a [Pool].
type Options struct {
	// BlockSize is the size in bytes of every block. Must be positive.
	// Use a multiple of 8 when blocks hold 8-byte fields.
	BlockSize int

	// BlocksPerSlab is the number of blocks allocated together when the
	// pool has no free block left. Must be positive.
	// Default: [DefaultBlocksPerSlab].
	BlocksPerSlab int

	// Mmap requests slabs backed by anonymous memory mappings instead of
	// the Go heap. Ignored on platforms without mmap support.
	Mmap bool
}

// DefaultOptions returns Options for blocks of size bytes with
// [DefaultBlocksPerSlab] blocks per heap slab.
func DefaultOptions(size int) Options {
	return Options{BlockSize: size, BlocksPerSlab: DefaultBlocksPerSlab}
}

type slab struct {
	mem    []byte
	mapped bool
}

func (s slab) base() uintptr { return uintptr(unsafe.Pointer(&s.mem[0])) }

// Pool hands out fixed-size blocks and recycles them.
type Pool struct {
	mu     sync.Mutex
	opts   Options
	slabs  []slab
	free   []unsafe.Pointer
	live   map[unsafe.Pointer]struct{}
	closed bool
}

// New constructs a Pool. Returns [ErrInvalidOption] if BlockSize or
// BlocksPerSlab is not positive.
func New(opts Options) (*Pool, error) {
	if opts.BlockSize <= 0 {
		return nil, fmt.Errorf("%w: block size %d must be positive", ErrInvalidOption, opts.BlockSize)
	}
	if opts.BlocksPerSlab <= 0 {
		return nil, fmt.Errorf("%w: blocks per slab %d must be positive", ErrInvalidOption, opts.BlocksPerSlab)
	}
	return &Pool{opts: opts, live: make(map[unsafe.Pointer]struct{})}, nil
}

// BlockSize returns the size in bytes of the pool's blocks.
func (p *Pool) BlockSize() int { return p.opts.BlockSize }

// InUse returns the number of allocated blocks that have not been freed.
func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

// grow adds one slab and pushes its blocks onto the free list so that the
// lowest address is handed out first. Callers hold p.mu.
func (p *Pool) grow() error {
	n := p.opts.BlockSize * p.opts.BlocksPerSlab
	var s slab
	if p.opts.Mmap && mmapSupported {
		mem, err := mapSlab(n)
		if err != nil {
			return fmt.Errorf("%w: mmap %d bytes: %w", ErrAllocFailed, n, err)
		}
		s = slab{mem: mem, mapped: true}
	} else {
		s = slab{mem: make([]byte, n)}
	}
	p.slabs = append(p.slabs, s)
	start := unsafe.Pointer(&s.mem[0])
	for i := p.opts.BlocksPerSlab - 1; i >= 0; i-- {
		p.free = append(p.free, unsafe.Add(start, i*p.opts.BlockSize))
	}
	return nil
}

// Alloc returns a zeroed block of BlockSize bytes.
func (p *Pool) Alloc() (unsafe.Pointer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrClosed
	}
	if len(p.free) == 0 {
		if err := p.grow(); err != nil {
			return nil, err
		}
	}
	blk := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	clear(unsafe.Slice((*byte)(blk), p.opts.BlockSize))
	p.live[blk] = struct{}{}
	return blk, nil
}

// owns reports whether blk is the start of a block in one of p's slabs.
func (p *Pool) owns(blk unsafe.Pointer) bool {
	addr := uintptr(blk)
	for _, s := range p.slabs {
		base := s.base()
		if addr < base || addr >= base+uintptr(len(s.mem)) {
			continue
		}
		return (addr-base)%uintptr(p.opts.BlockSize) == 0
	}
	return false
}

// Free returns blk to the pool.
//
// Returns [ErrForeignBlock] if blk was not allocated from p and
// [ErrDoubleFree] if it has already been freed.
func (p *Pool) Free(blk unsafe.Pointer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if blk == nil || !p.owns(blk) {
		return fmt.Errorf("%w: %p", ErrForeignBlock, blk)
	}
	if _, ok := p.live[blk]; !ok {
		return fmt.Errorf("%w: %p", ErrDoubleFree, blk)
	}
	delete(p.live, blk)
	p.free = append(p.free, blk)
	return nil
}

// Release is an alias for [Pool.Free]. It lets a *Pool release the pointer
// payloads of a list.
func (p *Pool) Release(blk unsafe.Pointer) error { return p.Free(blk) }

// Bytes returns the BlockSize bytes of the allocated block blk, or nil if
// blk is not currently allocated from p.
func (p *Pool) Bytes(blk unsafe.Pointer) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.live[blk]; !ok {
		return nil
	}
	return unsafe.Slice((*byte)(blk), p.opts.BlockSize)
}

// Close releases every slab. Blocks still allocated become invalid.
// Further calls to Alloc or Free return [ErrClosed]; closing twice is a
// no-op.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	var errs []error
	for _, s := range p.slabs {
		if s.mapped {
			if err := unmapSlab(s.mem); err != nil {
				errs = append(errs, err)
			}
		}
	}
	p.slabs = nil
	p.free = nil
	p.live = nil
	return errors.Join(errs...)
}
