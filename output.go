package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dsnet/compress/bzip2"
)

// writeOutput writes the extracted bytes to name, overwriting any existing
// file, optionally through a bzip2 writer.
func writeOutput(name string, data []byte, compress bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	var w io.Writer = f
	var zw *bzip2.Writer
	if compress {
		zw, err = bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.BestCompression})
		if err != nil {
			f.Close()
			return err
		}
		w = zw
	}
	if _, err = w.Write(data); err != nil {
		f.Close()
		return err
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// writeIPSFile writes runs to name as an IPS patch.
func writeIPSFile(name string, runs []*Run) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = WriteIPS(f, runs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// verifyOutput re-reads the written output file and checks it carries
// exactly the extracted runs.
func verifyOutput(name string, runs []*Run, compress, ips bool) error {
	raw, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	if ips {
		got, err := ReadIPS(bytes.NewReader(raw))
		if err != nil {
			return err
		}
		if len(got) != len(runs) {
			return fmt.Errorf("%d runs on disk, want %d", len(got), len(runs))
		}
		for i, r := range runs {
			if got[i].Org() != r.Org() || !bytes.Equal(got[i].data, r.data) {
				return fmt.Errorf("run %d on disk differs from %v", i+1, r)
			}
		}
		return nil
	}
	if compress {
		zr, err := bzip2.NewReader(bytes.NewReader(raw), new(bzip2.ReaderConfig))
		if err != nil {
			return err
		}
		if raw, err = io.ReadAll(zr); err != nil {
			return err
		}
		if err = zr.Close(); err != nil {
			return err
		}
	}
	if !bytes.Equal(raw, runs[0].data) {
		return fmt.Errorf("%s does not match the extracted bytes", name)
	}
	return nil
}
