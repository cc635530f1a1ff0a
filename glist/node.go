package glist

import (
	"strings"
	"unsafe"
)

// Node is one element of a list: a payload and a link to the next node.
//
// Nodes are created only by the Add functions and relinked only by
// [Reverse]. Callers may read them but cannot change them.
type Node struct {
	data  Value
	next  *Node
	arena *Arena // owner while allocated from an Arena, else nil
}

// List is a reference to the first node of a list. The nil List is the
// empty list.
type List = *Node

// Value returns the node's payload.
func (n *Node) Value() Value { return n.data }

// Next returns the following node, or nil at the end of the list.
func (n *Node) Next() *Node { return n.next }

// Ptr returns the node's pointer payload, or [ErrKindMismatch].
func (n *Node) Ptr() (unsafe.Pointer, error) { return n.data.AsPtr() }

// Int32 returns the node's int32 payload, or [ErrKindMismatch].
func (n *Node) Int32() (int32, error) { return n.data.AsInt32() }

// Uint32 returns the node's uint32 payload, or [ErrKindMismatch].
func (n *Node) Uint32() (uint32, error) { return n.data.AsUint32() }

// Float32 returns the node's float32 payload, or [ErrKindMismatch].
func (n *Node) Float32() (float32, error) { return n.data.AsFloat32() }

// Float64 returns the node's float64 payload, or [ErrKindMismatch].
func (n *Node) Float64() (float64, error) { return n.data.AsFloat64() }

// KindOf returns the payload kind shared by every node of l. The second
// result is false for the empty list.
func KindOf(l List) (Kind, bool) {
	if l == nil {
		return 0, false
	}
	return l.data.kind, true
}

// String renders l as "[v1 v2 ...]" in list order.
func String(l List) string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l; n != nil; n = n.next {
		if n != l {
			b.WriteByte(' ')
		}
		b.WriteString(n.data.String())
	}
	b.WriteByte(']')
	return b.String()
}
