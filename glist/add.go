package glist

import "unsafe"

// Add inserts v at the head of l and returns the new head.
//
// When l is not empty, v must have the same [Kind] as the nodes already in
// l; otherwise Add returns l unchanged together with [ErrKindMismatch].
// Every node of a list is inserted through this check, so looking at the
// head is enough.
func Add(l List, v Value) (List, error) {
	if l != nil && l.data.kind != v.kind {
		return l, mismatch(l.data.kind, v.kind)
	}
	return &Node{data: v, next: l}, nil
}

// AddPtr inserts an opaque pointer at the head of l.
func AddPtr(l List, p unsafe.Pointer) (List, error) { return Add(l, Ptr(p)) }

// AddInt32 inserts an int32 at the head of l.
func AddInt32(l List, v int32) (List, error) { return Add(l, Int32(v)) }

// AddUint32 inserts a uint32 at the head of l.
func AddUint32(l List, v uint32) (List, error) { return Add(l, Uint32(v)) }

// AddFloat32 inserts a float32 at the head of l.
func AddFloat32(l List, v float32) (List, error) { return Add(l, Float32(v)) }

// AddFloat64 inserts a float64 at the head of l.
func AddFloat64(l List, v float64) (List, error) { return Add(l, Float64(v)) }

// Reverse reverses l in place and returns the new head, which is the former
// tail. No node is allocated. The head passed in becomes the tail; callers
// must continue with the returned reference.
func Reverse(l List) List {
	var prev *Node
	for n := l; n != nil; {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	return prev
}
