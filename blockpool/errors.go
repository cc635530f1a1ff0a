package blockpool

import "errors"

// Sentinel errors returned by pool operations.
var (
	// ErrInvalidOption is returned by [New] and the registry functions for
	// non-positive sizes.
	ErrInvalidOption = errors.New("blockpool: invalid option value")

	// ErrForeignBlock is returned when a pointer was not handed out by the
	// pool it is given back to, or does not point at the start of a block.
	ErrForeignBlock = errors.New("blockpool: block does not belong to this pool")

	// ErrDoubleFree is returned when a block is freed while not allocated.
	ErrDoubleFree = errors.New("blockpool: block is not allocated")

	// ErrClosed is returned by operations on a closed pool.
	ErrClosed = errors.New("blockpool: pool is closed")

	// ErrAllocFailed wraps a failure to obtain a new slab.
	ErrAllocFailed = errors.New("blockpool: slab allocation failed")
)
