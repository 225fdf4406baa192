package main

import (
	"fmt"
	"io"
)

// A Run is a contiguous range of the patched file that differs from the
// original: an offset and the patched bytes found there.
type Run struct {
	offset int64
	data   []byte
}

func (self *Run) Org() int64 {
	return self.offset
}

func (self *Run) Len() int64 {
	return int64(len(self.data))
}

func (self *Run) Write(b io.WriterAt) (err error) {
	_, err = b.WriteAt(self.data, self.offset)
	return
}

func (self *Run) String() string {
	return fmt.Sprintf("Run: %d bytes at %#x", self.Len(), self.Org())
}

// Runs scans the common length of orig and patched from start and collects
// every 4-byte-aligned differing run, in offset order. Identical buffers
// yield no runs.
func Runs(orig, patched []byte, start int64) []*Run {
	bound := int64(len(orig))
	if int64(len(patched)) < bound {
		bound = int64(len(patched))
	}
	var runs []*Run
	var cur *Run
	for k := start; k+4 <= bound; k += 4 {
		if word(orig, k) != word(patched, k) {
			if cur == nil {
				cur = &Run{offset: k}
			}
			cur.data = append(cur.data, patched[k:k+4]...)
		} else if cur != nil {
			runs = append(runs, cur)
			cur = nil
		}
	}
	if cur != nil {
		runs = append(runs, cur)
	}
	return runs
}

// Coalesce joins runs separated by at most gap bytes of equal data, filling
// the gaps from patched. Runs must be sorted by offset and non-overlapping,
// which is how Runs produces them.
func Coalesce(patched []byte, runs []*Run, gap int64) []*Run {
	if len(runs) < 2 {
		return runs
	}
	out := runs[:1]
	for _, r := range runs[1:] {
		last := out[len(out)-1]
		end := last.Org() + last.Len()
		if r.Org()-end <= gap {
			last.data = append(last.data, patched[end:r.Org()]...)
			last.data = append(last.data, r.data...)
		} else {
			out = append(out, r)
		}
	}
	return out
}
