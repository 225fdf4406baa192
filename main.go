package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

func main() {
	var logname string
	var dump, compress, ipsout, report, all, verify bool
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\t%s [flags] original patched output offset [size]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "offset and size accept 0x, 0o, and 0b prefixes.")
	}
	flag.StringVar(&logname, "log", "-", "log to given file (stderr if -, none if empty)")
	flag.BoolVar(&dump, "dump", false, "hexdump the extracted bytes to the log")
	flag.BoolVar(&compress, "z", false, "bzip2-compress the output")
	flag.BoolVar(&ipsout, "ips", false, "write the output as an IPS patch instead of a raw slice")
	flag.BoolVar(&report, "report", false, "log every differing run in the two files")
	flag.BoolVar(&all, "all", false, "extract every differing run from offset onward (requires -ips)")
	flag.BoolVar(&verify, "verify", false, "apply the extraction back onto the original and re-read the output as a self-check")
	flag.Parse()
	if compress && ipsout {
		log.Fatal("-z and -ips are mutually exclusive")
	}
	if all && !ipsout {
		log.Fatal("-all requires -ips: a raw slice can carry only one run")
	}
	args := flag.Args()
	if len(args) < 4 || len(args) > 5 {
		flag.Usage()
		os.Exit(2)
	}
	var logf io.Writer = io.Discard
	if logname == "-" {
		logf = os.Stderr
	} else if logname != "" {
		f, err := os.OpenFile(logname, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			log.Printf("unable to open %s for logging: %v\nusing stderr instead\n", logname, err)
			logf = os.Stderr
		} else {
			defer f.Close()
			logf = f
		}
	}
	orig, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("unable to read %s: %v", args[0], err)
	}
	patched, err := os.ReadFile(args[1])
	if err != nil {
		log.Fatalf("unable to read %s: %v", args[1], err)
	}
	outname := args[2]
	offset, err := strconv.ParseUint(args[3], 0, 63)
	if err != nil {
		log.Fatalf("bad offset %q: %v", args[3], err)
	}

	var runs []*Run
	if all {
		if len(args) == 5 {
			log.Fatal("-all takes no explicit size")
		}
		runs = Coalesce(patched, Runs(orig, patched, int64(offset)), 8)
		if len(runs) == 0 {
			log.Fatalf("%s and %s are identical from %#x onward", args[0], args[1], offset)
		}
		fmt.Fprintf(logf, "%d differing runs from %#x onward\n", len(runs), offset)
	} else {
		var size int64
		if len(args) == 5 {
			u, err := strconv.ParseUint(args[4], 0, 63)
			if err != nil {
				log.Fatalf("bad size %q: %v", args[4], err)
			}
			size = int64(u)
			fmt.Fprintf(logf, "using explicit size %d (%#x)\n", size, size)
		} else {
			size, err = ScanSize(orig, patched, int64(offset))
			if err != nil {
				log.Fatalf("scanning %s against %s at %#x: %v", args[1], args[0], offset, err)
			}
			fmt.Fprintf(logf, "divergence at %#x runs for %d bytes\n", offset, size)
		}
		out := Extract(patched, int64(offset), size)
		if int64(len(out)) < size {
			fmt.Fprintf(logf, "output truncated to %d bytes at end of %s\n", len(out), args[1])
		}
		runs = []*Run{{offset: int64(offset), data: out}}
	}

	if report {
		whole := Runs(orig, patched, 0)
		fmt.Fprintf(logf, "%d differing runs in total:\n", len(whole))
		for _, r := range whole {
			fmt.Fprintf(logf, "\t%v\n", r)
		}
	}
	if dump {
		for _, r := range runs {
			Hexdump(logf, r.data, r.Org())
		}
	}

	if ipsout {
		err = writeIPSFile(outname, runs)
	} else {
		err = writeOutput(outname, runs[0].data, compress)
	}
	if err != nil {
		log.Fatalf("writing %s: %v", outname, err)
	}
	var total int64
	for _, r := range runs {
		total += r.Len()
	}
	fmt.Fprintf(logf, "wrote %d extracted bytes to %s\n", total, outname)

	if verify {
		if err = Verify(orig, patched, runs, logf); err != nil {
			log.Fatalf("verifying extraction: %v", err)
		}
		if err = verifyOutput(outname, runs, compress, ipsout); err != nil {
			log.Fatalf("verifying %s: %v", outname, err)
		}
		fmt.Fprintf(logf, "%s verified\n", outname)
	}
}
