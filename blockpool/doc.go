// Package blockpool provides allocators for fixed-size memory blocks.
//
// A [Pool] hands out blocks of exactly BlockSize bytes, carved from larger
// slabs, and takes them back for reuse. Because a pool knows its block size,
// freeing a block needs nothing but the pointer, which makes a *Pool usable
// as a typed destructor (it implements Release, as expected by
// [github.com/bensheeran/cmusphinx/glist.Releaser]).
//
//	p, err := blockpool.New(blockpool.DefaultOptions(64))
//	if err != nil { ... }
//	defer p.Close()
//
//	blk, _ := p.Alloc()        // unsafe.Pointer to 64 zeroed bytes
//	copy(p.Bytes(blk), "hello")
//	_ = p.Free(blk)
//
// # Slabs
//
// Slabs come from the Go heap by default. With [Options].Mmap set, on Linux
// and the BSDs (including macOS) each slab is an anonymous private mapping
// obtained with mmap(2) and returned with munmap(2) on [Pool.Close].
// Elsewhere Mmap is ignored.
//
// Blocks of either slab type must not hold Go pointers. Heap slabs are byte
// slices, which the garbage collector does not scan, and mapped slabs are
// outside the Go heap, so a pointer stored in a block does not keep its
// target alive.
//
// Blocks start at multiples of BlockSize from a slab start, which is page
// aligned for mapped slabs and 8-byte aligned for heap slabs of 8 bytes or
// more. A BlockSize that is not a multiple of 8 therefore
// yields blocks that are not aligned for 8-byte fields.
//
// # Size-keyed pools
//
// [Alloc] and [Free] work on a process-wide registry holding one pool per
// block size, for callers that only know the size at release time:
//
//	blk, _ := blockpool.Alloc(24)
//	_ = blockpool.Free(blk, 24)
//
// # Thread safety
//
// Pool and the registry are safe for concurrent use.
package blockpool
