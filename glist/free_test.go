package glist_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/bensheeran/cmusphinx/blockpool"
	"github.com/bensheeran/cmusphinx/glist"
)

// recordingReleaser counts how often each pointer is released.
type recordingReleaser struct {
	released map[unsafe.Pointer]int
	fail     unsafe.Pointer
}

func newRecordingReleaser() *recordingReleaser {
	return &recordingReleaser{released: make(map[unsafe.Pointer]int)}
}

var errReleaseFailed = errors.New("release failed")

func (r *recordingReleaser) Release(p unsafe.Pointer) error {
	r.released[p]++
	if p == r.fail {
		return errReleaseFailed
	}
	return nil
}

func TestFree_UnlinksNodes(t *testing.T) {
	l := int32List(t, 1, 2, 3)
	second := l.Next()
	glist.Free(l)
	// The test holds only stale references it does not walk; checking the
	// zeroed links is enough to show the chain was dismantled.
	if l.Next() != nil || second.Next() != nil {
		t.Fatal("Free must unlink every node")
	}
}

func TestFreeWith_ReleasesEveryPayloadOnce(t *testing.T) {
	ptrs := []*int{new(int), new(int), new(int)}
	var l glist.List
	for _, p := range ptrs {
		l, _ = glist.AddPtr(l, unsafe.Pointer(p))
	}
	l, _ = glist.AddPtr(l, nil)

	r := newRecordingReleaser()
	if err := glist.FreeWith(l, r); err != nil {
		t.Fatal(err)
	}
	if len(r.released) != len(ptrs) {
		t.Fatalf("released %d pointers; want %d", len(r.released), len(ptrs))
	}
	for _, p := range ptrs {
		if r.released[unsafe.Pointer(p)] != 1 {
			t.Fatalf("pointer %p released %d times", p, r.released[unsafe.Pointer(p)])
		}
	}
}

func TestFreeWith_JoinsReleaseErrors(t *testing.T) {
	a, b := new(int), new(int)
	var l glist.List
	l, _ = glist.AddPtr(l, unsafe.Pointer(a))
	l, _ = glist.AddPtr(l, unsafe.Pointer(b))

	r := newRecordingReleaser()
	r.fail = unsafe.Pointer(a)
	err := glist.FreeWith(l, r)
	if !errors.Is(err, errReleaseFailed) {
		t.Fatalf("expected release error, got %v", err)
	}
	if r.released[unsafe.Pointer(b)] != 1 {
		t.Fatal("a failing release must not stop the walk")
	}
}

func TestFreeWith_RejectsNonPointerList(t *testing.T) {
	l := int32List(t, 1)
	if err := glist.FreeWith(l, newRecordingReleaser()); !errors.Is(err, glist.ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}
	if v, err := l.Int32(); err != nil || v != 1 {
		t.Fatal("list must be untouched after a rejected FreeWith")
	}
	if err := glist.FreeWith(l, nil); !errors.Is(err, glist.ErrNilReleaser) {
		t.Fatalf("expected ErrNilReleaser, got %v", err)
	}
}

func TestFreeWith_Pool(t *testing.T) {
	pool, err := blockpool.New(blockpool.DefaultOptions(32))
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Close()

	var l glist.List
	for i := 0; i < 10; i++ {
		blk, err := pool.Alloc()
		if err != nil {
			t.Fatal(err)
		}
		pool.Bytes(blk)[0] = byte(i)
		l, _ = glist.AddPtr(l, blk)
	}
	if pool.InUse() != 10 {
		t.Fatalf("InUse = %d; want 10", pool.InUse())
	}
	if err := glist.FreeWith(l, pool); err != nil {
		t.Fatal(err)
	}
	if pool.InUse() != 0 {
		t.Fatalf("InUse after FreeWith = %d; want 0", pool.InUse())
	}
}

func TestFreeSized(t *testing.T) {
	t.Cleanup(func() { _ = blockpool.Reset() })
	const size = 48

	var l glist.List
	for i := 0; i < 5; i++ {
		blk, err := blockpool.Alloc(size)
		if err != nil {
			t.Fatal(err)
		}
		l, _ = glist.AddPtr(l, blk)
	}
	if err := glist.FreeSized(l, size); err != nil {
		t.Fatal(err)
	}
	pool, _ := blockpool.PoolFor(size)
	if pool.InUse() != 0 {
		t.Fatalf("InUse = %d; want 0", pool.InUse())
	}
}

func TestFreeSized_WrongSize(t *testing.T) {
	t.Cleanup(func() { _ = blockpool.Reset() })
	blk, err := blockpool.Alloc(16)
	if err != nil {
		t.Fatal(err)
	}
	var l glist.List
	l, _ = glist.AddPtr(l, blk)
	if err := glist.FreeSized(l, 32); !errors.Is(err, blockpool.ErrForeignBlock) {
		t.Fatalf("expected ErrForeignBlock, got %v", err)
	}
}
