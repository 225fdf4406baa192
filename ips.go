package main

import (
	"errors"
	"fmt"
	"io"
)

var BadIPS = errors.New("not an IPS patch")

const (
	ipsMaxOrg   = 1 << 24 // offsets are 3 bytes
	ipsMaxChunk = 0xffff  // record lengths are 2 bytes
)

// WriteIPS encodes runs as an IPS patch. Runs longer than 65535 bytes are
// split across several records. Offsets at or past 16 MiB are not
// representable in the format.
func WriteIPS(b io.Writer, runs []*Run) error {
	if _, err := b.Write([]byte("PATCH")); err != nil {
		return err
	}
	for _, r := range runs {
		org := r.Org()
		data := r.data
		for len(data) > 0 {
			n := len(data)
			if n > ipsMaxChunk {
				n = ipsMaxChunk
			}
			if org+int64(n) > ipsMaxOrg {
				return fmt.Errorf("run at %#x does not fit in IPS's 24-bit address space", org)
			}
			hdr := []byte{byte(org >> 16), byte(org >> 8), byte(org), byte(n >> 8), byte(n)}
			if _, err := b.Write(hdr); err != nil {
				return err
			}
			if _, err := b.Write(data[:n]); err != nil {
				return err
			}
			org += int64(n)
			data = data[n:]
		}
	}
	_, err := b.Write([]byte("EOF"))
	return err
}

// ReadIPS parses an IPS patch into runs. RLE records are expanded into
// plain data runs. A record at offset 0x454f46 is indistinguishable from
// the EOF marker and ends the patch, as in every other IPS tool.
func ReadIPS(b io.Reader) ([]*Run, error) {
	p := make([]byte, 8)
	if _, err := io.ReadFull(b, p[:5]); err != nil {
		return nil, err
	}
	if string(p[:5]) != "PATCH" {
		return nil, BadIPS
	}
	var runs []*Run
	for {
		if _, err := io.ReadFull(b, p[:3]); err != nil {
			return nil, err
		}
		org := int64(p[0])<<16 | int64(p[1])<<8 | int64(p[2])
		if org == 0x454f46 { // EOF
			return runs, nil
		}
		if _, err := io.ReadFull(b, p[:2]); err != nil {
			return nil, err
		}
		num := int(p[0])<<8 | int(p[1])
		if num == 0 { // RLE
			if _, err := io.ReadFull(b, p[:3]); err != nil {
				return nil, err
			}
			num = int(p[0])<<8 | int(p[1])
			data := make([]byte, num)
			for i := range data {
				data[i] = p[2]
			}
			runs = append(runs, &Run{org, data})
		} else {
			data := make([]byte, num)
			if _, err := io.ReadFull(b, data); err != nil {
				return nil, err
			}
			runs = append(runs, &Run{org, data})
		}
	}
}
