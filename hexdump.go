package main

import (
	"fmt"
	"io"
)

// Hexdump writes an offset/hex/ASCII listing of b to w, 16 bytes per line,
// with addresses starting at base.
func Hexdump(w io.Writer, b []byte, base int64) {
	for i := 0; i < len(b); i += 16 {
		fmt.Fprintf(w, "%08x  ", base+int64(i))
		for j := 0; j < 16; j++ {
			if i+j < len(b) {
				fmt.Fprintf(w, "%02x ", b[i+j])
			} else {
				fmt.Fprint(w, "   ")
			}
			if j == 7 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprint(w, " |")
		for j := 0; j < 16 && i+j < len(b); j++ {
			c := b[i+j]
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			fmt.Fprintf(w, "%c", c)
		}
		fmt.Fprintln(w, "|")
	}
}
