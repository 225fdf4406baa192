package main

import (
	"bytes"
	"fmt"
	"io"
)

// sliceWriterAt lets a Run write into an in-memory buffer.
type sliceWriterAt []byte

func (self sliceWriterAt) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > int64(len(self)) {
		return 0, fmt.Errorf("write of %d bytes at %#x outside buffer of %d bytes", len(p), off, len(self))
	}
	return copy(self[off:], p), nil
}

// Verify applies each run onto a copy of orig and checks that the result
// agrees with patched over the run's range.
func Verify(orig, patched []byte, runs []*Run, log io.Writer) (err error) {
	buf := make(sliceWriterAt, len(patched))
	copy(buf, orig)
	fmt.Fprintf(log, "%d runs to verify\n", len(runs))
	for i, run := range runs {
		fmt.Fprintf(log, "Verify %d: %v\n", i+1, run)
		if err = run.Write(buf); err != nil {
			fmt.Fprintf(log, "XXX ERROR: %v\n", err)
			return
		}
		org, end := run.Org(), run.Org()+run.Len()
		if !bytes.Equal(buf[org:end], patched[org:end]) {
			err = fmt.Errorf("mismatch against patched data at %#x", org)
			fmt.Fprintf(log, "XXX ERROR: %v\n", err)
			return
		}
	}
	fmt.Fprintln(log, "Verification finished.")
	return
}
