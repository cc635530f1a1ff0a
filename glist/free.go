package glist

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/bensheeran/cmusphinx/blockpool"
)

// Releaser gives back the memory a pointer payload refers to.
//
// [blockpool.Pool] implements Releaser; it knows the size of its blocks, so
// callers do not have to pass one.
type Releaser interface {
	Release(p unsafe.Pointer) error
}

// ReleaserFunc adapts an ordinary function to [Releaser].
type ReleaserFunc func(p unsafe.Pointer) error

// Release calls f(p).
func (f ReleaserFunc) Release(p unsafe.Pointer) error { return f(p) }

// Free destroys l. Every node is unlinked and its payload cleared so the
// chain no longer keeps anything reachable. Memory referenced by pointer
// payloads is not released; do that first or use [FreeWith].
//
// l and every node obtained from it must not be used afterwards. Nodes of
// a list built by an [Arena] are not returned to it; use [Arena.Free].
func Free(l List) {
	for n := l; n != nil; {
		next := n.next
		*n = Node{}
		n = next
	}
}

// FreeWith releases the pointee of every pointer payload of l through r and
// then destroys l as [Free] does. Nil payloads are skipped.
//
// l must hold [KindPtr] payloads; otherwise FreeWith returns
// [ErrKindMismatch] and neither payloads nor nodes are touched. Errors from
// r are collected and returned together once every node has been visited;
// the nodes are freed either way.
func FreeWith(l List, r Releaser) error {
	if r == nil {
		return ErrNilReleaser
	}
	if err := checkKind(l, KindPtr); err != nil {
		return err
	}
	err := releaseAll(l, r)
	Free(l)
	return err
}

func releaseAll(l List, r Releaser) error {
	var errs []error
	for n := l; n != nil; n = n.next {
		if n.data.ptr == nil {
			continue
		}
		if err := r.Release(n.data.ptr); err != nil {
			errs = append(errs, fmt.Errorf("release %p: %w", n.data.ptr, err))
		}
	}
	return errors.Join(errs...)
}

// FreeSized releases every pointer payload of l back to the process-wide
// [blockpool] pool for blocks of size bytes, then destroys l.
//
// Every payload must have been obtained from [blockpool.Alloc] with the same
// size.
func FreeSized(l List, size int) error {
	return FreeWith(l, sizedReleaser(size))
}

func sizedReleaser(size int) Releaser {
	return ReleaserFunc(func(p unsafe.Pointer) error {
		return blockpool.Free(p, size)
	})
}
