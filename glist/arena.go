package glist

import (
	"fmt"
	"unsafe"
)

const (
	// DefaultChunkSize is the number of nodes an [Arena] allocates at once.
	DefaultChunkSize = 256
)

// ArenaOptions configures an [Arena].
type ArenaOptions struct {
	// ChunkSize is the number of nodes allocated together when the arena
	// runs out of recycled nodes. Must be at least 1.
	// Default: [DefaultChunkSize].
	ChunkSize int

	// MaxNodes caps the number of live nodes. Zero means no cap.
	MaxNodes int
}

// DefaultArenaOptions returns ArenaOptions with [DefaultChunkSize] and no
// node cap.
func DefaultArenaOptions() ArenaOptions {
	return ArenaOptions{ChunkSize: DefaultChunkSize}
}

// Arena allocates list nodes in chunks and recycles the nodes of lists
// destroyed with [Arena.Free], [Arena.FreeWith] or [Arena.FreeSized].
//
// Only those methods give nodes back to the arena. Destroying an arena list
// with the package-level [Free], [FreeWith] or [FreeSized] dismantles it but
// its nodes stay counted in [Arena.Live] for good.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	opts  ArenaOptions
	chunk []Node // unused tail of the current chunk
	free  *Node  // recycled nodes, linked through next
	live  int
}

// NewArena constructs an Arena. Returns [ErrInvalidOption] if ChunkSize is
// below 1 or MaxNodes is negative.
func NewArena(opts ArenaOptions) (*Arena, error) {
	if opts.ChunkSize < 1 {
		return nil, fmt.Errorf("%w: chunk size %d must be at least 1", ErrInvalidOption, opts.ChunkSize)
	}
	if opts.MaxNodes < 0 {
		return nil, fmt.Errorf("%w: max nodes %d must not be negative", ErrInvalidOption, opts.MaxNodes)
	}
	return &Arena{opts: opts}, nil
}

// Live returns the number of nodes handed out and not yet freed.
func (a *Arena) Live() int { return a.live }

func (a *Arena) node() (*Node, error) {
	if a.opts.MaxNodes > 0 && a.live >= a.opts.MaxNodes {
		return nil, fmt.Errorf("%w: %d live nodes", ErrArenaExhausted, a.live)
	}
	var n *Node
	switch {
	case a.free != nil:
		n = a.free
		a.free = n.next
		n.next = nil
	default:
		if len(a.chunk) == 0 {
			size := a.opts.ChunkSize
			if a.opts.MaxNodes > 0 && a.opts.MaxNodes-a.live < size {
				size = a.opts.MaxNodes - a.live
			}
			a.chunk = make([]Node, size)
		}
		n = &a.chunk[0]
		a.chunk = a.chunk[1:]
	}
	n.arena = a
	a.live++
	return n, nil
}

// Add inserts v at the head of l using a node from the arena.
//
// It fails with [ErrKindMismatch] like the package-level [Add], and with
// [ErrArenaExhausted] when MaxNodes nodes are live. On failure l is
// returned unchanged.
func (a *Arena) Add(l List, v Value) (List, error) {
	if l != nil && l.data.kind != v.kind {
		return l, mismatch(l.data.kind, v.kind)
	}
	n, err := a.node()
	if err != nil {
		return l, err
	}
	n.data = v
	n.next = l
	return n, nil
}

// AddPtr inserts an opaque pointer at the head of l.
func (a *Arena) AddPtr(l List, p unsafe.Pointer) (List, error) { return a.Add(l, Ptr(p)) }

// AddInt32 inserts an int32 at the head of l.
func (a *Arena) AddInt32(l List, v int32) (List, error) { return a.Add(l, Int32(v)) }

// AddUint32 inserts a uint32 at the head of l.
func (a *Arena) AddUint32(l List, v uint32) (List, error) { return a.Add(l, Uint32(v)) }

// AddFloat32 inserts a float32 at the head of l.
func (a *Arena) AddFloat32(l List, v float32) (List, error) { return a.Add(l, Float32(v)) }

// AddFloat64 inserts a float64 at the head of l.
func (a *Arena) AddFloat64(l List, v float64) (List, error) { return a.Add(l, Float64(v)) }

// Free destroys l and keeps its nodes for reuse by later insertions.
//
// Nodes that are not live nodes of a, such as heap nodes from the
// package-level [Add] or nodes already freed, are left untouched and do not
// change [Arena.Live].
func (a *Arena) Free(l List) {
	for n := l; n != nil; {
		next := n.next
		if n.arena == a && a.live > 0 {
			*n = Node{next: a.free}
			a.free = n
			a.live--
		}
		n = next
	}
}

// FreeWith releases every pointer payload of l through r, as the
// package-level [FreeWith] does, and then recycles the nodes into a.
func (a *Arena) FreeWith(l List, r Releaser) error {
	if r == nil {
		return ErrNilReleaser
	}
	if err := checkKind(l, KindPtr); err != nil {
		return err
	}
	err := releaseAll(l, r)
	a.Free(l)
	return err
}

// FreeSized releases every pointer payload of l back to the process-wide
// blockpool pool for size bytes, as the package-level [FreeSized] does, and
// then recycles the nodes into a.
func (a *Arena) FreeSized(l List, size int) error {
	return a.FreeWith(l, sizedReleaser(size))
}
