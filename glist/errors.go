package glist

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by list operations.
//
// Use [errors.Is] for comparisons:
//
//	l, err := glist.AddFloat64(l, 1.5)
//	if errors.Is(err, glist.ErrKindMismatch) {
//	    // l holds another payload kind
//	}
var (
	// ErrKindMismatch is returned when a value of one payload kind is
	// inserted into, or read from, a list or node holding another kind.
	ErrKindMismatch = errors.New("glist: payload kind mismatch")

	// ErrArenaExhausted is returned by [Arena] insertions once the arena has
	// handed out MaxNodes live nodes.
	ErrArenaExhausted = errors.New("glist: arena exhausted")

	// ErrInvalidOption is returned by [NewArena] for out-of-range options.
	ErrInvalidOption = errors.New("glist: invalid option value")

	// ErrNilReleaser is returned by [FreeWith] when r is nil.
	ErrNilReleaser = errors.New("glist: releaser must not be nil")
)

func mismatch(want, got Kind) error {
	return fmt.Errorf("%w: want %s, have %s", ErrKindMismatch, want, got)
}
