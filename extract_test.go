package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestScanSize(t *testing.T) {
	tests := []struct {
		name    string
		orig    []byte
		patched []byte
		offset  int64
		want    int64
		wantErr error
	}{
		{
			name:    "single word",
			orig:    []byte{0x00, 0x00, 0x00, 0x00, 0xAA, 0xAA, 0xAA, 0xAA},
			patched: []byte{0x00, 0x00, 0x00, 0x00, 0xBB, 0xBB, 0xBB, 0xBB},
			offset:  4,
			want:    4,
		},
		{
			name:    "two words then equal tail",
			orig:    []byte{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4},
			patched: []byte{1, 1, 1, 1, 9, 9, 9, 9, 8, 8, 8, 8, 4, 4, 4, 4},
			offset:  4,
			want:    8,
		},
		{
			name:    "unaligned divergence overshoots to word boundary",
			orig:    []byte{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3},
			patched: []byte{1, 1, 1, 1, 2, 9, 9, 2, 3, 3, 3, 3},
			offset:  4,
			want:    4,
		},
		{
			name:    "divergence runs to end of common data",
			orig:    []byte{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3},
			patched: []byte{1, 1, 1, 1, 9, 9, 9, 9, 8, 8, 8, 8},
			offset:  4,
			want:    8,
		},
		{
			name:    "bounded by shorter buffer",
			orig:    []byte{1, 1, 1, 1, 2, 2, 2, 2},
			patched: []byte{1, 1, 1, 1, 9, 9, 9, 9, 8, 8, 8, 8, 7, 7, 7, 7},
			offset:  4,
			want:    4,
		},
		{
			name:    "identical buffers fail",
			orig:    []byte{1, 1, 1, 1, 2, 2, 2, 2},
			patched: []byte{1, 1, 1, 1, 2, 2, 2, 2},
			offset:  0,
			wantErr: ErrNoDivergence,
		},
		{
			name:    "identical from offset onward fail",
			orig:    []byte{1, 1, 1, 1, 2, 2, 2, 2},
			patched: []byte{9, 9, 9, 9, 2, 2, 2, 2},
			offset:  4,
			wantErr: ErrNoDivergence,
		},
		{
			name:    "offset too close to end",
			orig:    []byte{1, 1, 1, 1, 2, 2, 2, 2},
			patched: []byte{1, 1, 1, 1, 9, 9, 9, 9},
			offset:  6,
			wantErr: ErrShortBuffer,
		},
		{
			name:    "offset past end",
			orig:    []byte{1, 1, 1, 1},
			patched: []byte{9, 9, 9, 9},
			offset:  16,
			wantErr: ErrShortBuffer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanSize(tt.orig, tt.patched, tt.offset)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ScanSize() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ScanSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	patched := []byte{0x00, 0x00, 0x00, 0x00, 0xBB, 0xBB, 0xBB, 0xBB}
	tests := []struct {
		name   string
		offset int64
		size   int64
		want   []byte
	}{
		{"resolved size", 4, 4, []byte{0xBB, 0xBB, 0xBB, 0xBB}},
		{"explicit short size", 4, 2, []byte{0xBB, 0xBB}},
		{"zero size", 4, 0, nil},
		{"overrun truncates", 6, 8, []byte{0xBB, 0xBB}},
		{"offset at end", 8, 4, nil},
		{"offset past end", 12, 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(patched, tt.offset, tt.size)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Extract() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestOutputRoundTrip(t *testing.T) {
	orig := []byte{0x00, 0x00, 0x00, 0x00, 0xAA, 0xAA, 0xAA, 0xAA, 0x01, 0x02, 0x03, 0x04}
	patched := []byte{0x00, 0x00, 0x00, 0x00, 0xBB, 0xBB, 0xBB, 0xBB, 0x01, 0x02, 0x03, 0x04}
	size, err := ScanSize(orig, patched, 4)
	if err != nil {
		t.Fatal(err)
	}
	out := Extract(patched, 4, size)
	name := filepath.Join(t.TempDir(), "patch.bin")
	if err := writeOutput(name, out, false); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, out) {
		t.Errorf("read back %x, want %x", got, out)
	}
	// A second run over the same inputs must produce an identical file.
	if err := writeOutput(name, Extract(patched, 4, size), false); err != nil {
		t.Fatal(err)
	}
	again, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, got) {
		t.Errorf("second run wrote %x, first wrote %x", again, got)
	}
}
