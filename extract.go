package main

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrShortBuffer means a full 4-byte scan window cannot be read at the
	// requested offset in both buffers.
	ErrShortBuffer = errors.New("offset leaves no room for a 4-byte scan window")
	// ErrNoDivergence means the buffers already agree at the requested
	// offset, so there is no patch to measure there.
	ErrNoDivergence = errors.New("buffers are identical at offset")
)

// word interprets the 4 bytes at k as a little-endian 32-bit integer.
func word(b []byte, k int64) uint32 {
	return binary.LittleEndian.Uint32(b[k:])
}

// ScanSize measures the length of the divergence between orig and patched
// starting at offset. The scan advances in 4-byte steps while the
// little-endian words at the scan position differ and stops at the first
// position where they agree, so the result is a multiple of 4 and may
// overshoot an unaligned divergence to the next word boundary. The scan is
// bounded by the shorter of the two buffers; if it reaches the bound while
// the words still differ, the divergence runs to the end of the common data
// and the size is clamped there.
func ScanSize(orig, patched []byte, offset int64) (int64, error) {
	bound := int64(len(orig))
	if int64(len(patched)) < bound {
		bound = int64(len(patched))
	}
	if offset+4 > bound {
		return 0, ErrShortBuffer
	}
	k := offset
	for k+4 <= bound && word(orig, k) != word(patched, k) {
		k += 4
	}
	if k == offset {
		return 0, ErrNoDivergence
	}
	return k - offset, nil
}

// Extract returns the bytes of b in [offset, offset+size). The range is
// truncated to the available bytes when it overruns the end of b.
func Extract(b []byte, offset, size int64) []byte {
	if offset >= int64(len(b)) {
		return nil
	}
	end := offset + size
	if end > int64(len(b)) {
		end = int64(len(b))
	}
	return b[offset:end]
}
