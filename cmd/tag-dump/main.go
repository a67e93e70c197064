package main

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/id3strip"
	binutil "github.com/simonhull/id3strip/internal/binary"
)

// Debug tool to show the raw header fields behind a scan result.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tag-dump <file.mp3>...")
		os.Exit(1)
	}

	for _, path := range os.Args[1:] {
		if err := dump(os.Stdout, path); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func dump(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	stat, err := f.Stat()
	if err != nil {
		return err
	}
	size := stat.Size()

	fmt.Fprintf(w, "%s (size: %d)\n", path, size)

	header := make([]byte, id3strip.HeaderSize)
	if n, _ := f.ReadAt(header, 0); n == len(header) {
		flags := header[5]
		body := binutil.DecodeSynchsafe(header[6:10])
		total := int64(body) + id3strip.HeaderSize
		if flags&id3strip.FooterFlag != 0 {
			total += id3strip.HeaderSize
		}

		fmt.Fprintf(w, "  header: % x\n", header)
		fmt.Fprintf(w, "  marker: %q version: 2.%d.%d flags: %08b\n", header[0:3], header[3], header[4], flags)
		fmt.Fprintf(w, "  body: %d total: %d (fits: %v)\n", body, total, total < size)
	} else {
		fmt.Fprintf(w, "  header: short file\n")
	}

	if size >= id3strip.TrailerSize {
		trailer := make([]byte, 3)
		if _, err := f.ReadAt(trailer, size-id3strip.TrailerSize); err == nil {
			fmt.Fprintf(w, "  trailer marker: %q\n", trailer)
		}
	}

	info, err := id3strip.Scan(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  scan: %s\n", info)

	return nil
}
