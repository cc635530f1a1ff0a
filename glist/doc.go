// Package glist provides a minimal singly-linked list whose nodes carry one
// of five primitive payload kinds: an opaque pointer, int32, uint32, float32
// or float64.
//
// # Overview
//
// A list is nothing more than a reference to its first [Node]. The empty
// list is nil. There is no separate list object, so a [List] is cheap to
// pass around and every mutating operation returns the new head:
//
//	var l glist.List
//	l, _ = glist.AddInt32(l, 3)
//	l, _ = glist.AddInt32(l, 2)
//	l, _ = glist.AddInt32(l, 5) // [5 2 3]
//	l = glist.Reverse(l)        // [3 2 5]
//
// Insertion only happens at the head. Interior nodes are never removed; a
// list is destroyed as a whole with [Free], [FreeWith] or [FreeSized].
//
// # Payload kinds
//
// Every node stores a tagged [Value]. All nodes of one list share the same
// [Kind]: inserting a value of another kind fails with [ErrKindMismatch]
// and leaves the list untouched. Typed accessors and typed apply functions
// reject reads of the wrong kind with the same error.
//
// Duplicate checks compare pointer payloads by identity, never by the
// contents they point to. Numeric payloads compare with ==.
//
// # Ownership
//
// A list owns its nodes but never the memory a pointer payload refers to.
// [FreeWith] and [FreeSized] are the only operations that release pointees;
// they hand each payload to a [Releaser] (for example a
// [github.com/bensheeran/cmusphinx/blockpool.Pool]) before freeing the nodes.
//
// # Allocation
//
// The package-level Add functions allocate nodes on the Go heap. An [Arena]
// carves nodes out of fixed-size chunks, recycles freed nodes and can be
// capped; a capped arena reports [ErrArenaExhausted] from insertion instead
// of failing the process, and the list passed in stays valid.
//
// # Concurrency
//
// Lists and arenas carry no locks. Read-only operations ([Count], [ChkDup],
// [Tail], [Apply], [All], [Digest]) may run concurrently over a list that
// nobody mutates; any mutation needs external synchronisation.
package glist
