package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestHexdump(t *testing.T) {
	var buf bytes.Buffer
	Hexdump(&buf, []byte("GOPHERS gophers!"), 0x10)
	want := "00000010  47 4f 50 48 45 52 53 20  67 6f 70 68 65 72 73 21  |GOPHERS gophers!|\n"
	if buf.String() != want {
		t.Errorf("got %q\nwant %q", buf.String(), want)
	}
}

func TestHexdumpPartialLine(t *testing.T) {
	var buf bytes.Buffer
	Hexdump(&buf, []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0)
	got := buf.String()
	if !strings.HasPrefix(got, "00000000  de ad be ef ") {
		t.Errorf("bad prefix in %q", got)
	}
	if !strings.HasSuffix(got, "|....|\n") {
		t.Errorf("bad ASCII column in %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("want a single line, got %q", got)
	}
}
