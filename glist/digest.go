package glist

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Digest returns a BLAKE2b-256 fingerprint of l.
//
// The fingerprint covers the payload kind and every payload in list order:
// pointers by address, numbers by their bit pattern. Two lists with the
// same kind and the same payload sequence have the same digest. The empty
// list hashes to the digest of no input.
func Digest(l List) [blake2b.Size256]byte {
	// New256 only fails for an oversized key.
	h, _ := blake2b.New256(nil)
	var buf [9]byte
	for n := l; n != nil; n = n.next {
		buf[0] = byte(n.data.kind)
		if n.data.kind == KindPtr {
			binary.LittleEndian.PutUint64(buf[1:], uint64(uintptr(n.data.ptr)))
		} else {
			binary.LittleEndian.PutUint64(buf[1:], n.data.bits)
		}
		h.Write(buf[:])
	}
	var sum [blake2b.Size256]byte
	h.Sum(sum[:0])
	return sum
}
