package id3strip

import (
	"bytes"
	"errors"
	"io"
	"os"

	binutil "github.com/simonhull/id3strip/internal/binary"
)

// Scan reports which ID3 tags path carries.
//
// The two checks are independent. A missing or malformed header, a tag
// whose declared size reaches the end of the file, and a file too short for
// an ID3v1 tag all count as "no tag" rather than as errors. Scan only fails,
// with an *IOError, when the file cannot be opened or read.
func Scan(path string) (TagInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return TagInfo{}, ioErr("open", path, err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return TagInfo{}, ioErr("seek", path, err)
	}

	info, err := scanReader(f, size, path)
	if err != nil {
		return TagInfo{}, ioErr("read", path, err)
	}
	return info, nil
}

// scanReader runs detection over an io.ReaderAt (internal, for testing).
func scanReader(r io.ReaderAt, size int64, path string) (TagInfo, error) {
	sr := binutil.NewSafeReader(r, size, path)

	var info TagInfo
	var err error
	info.LeadingSize, info.HasLeading, err = detectLeading(sr)
	if err != nil {
		return TagInfo{}, err
	}
	info.HasTrailing = detectTrailing(sr)

	return info, nil
}

// detectLeading returns the total span of an ID3v2 tag at offset 0.
func detectLeading(sr *binutil.SafeReader) (uint32, bool, error) {
	if sr.Size() < HeaderSize {
		return 0, false, nil
	}

	header := make([]byte, HeaderSize)
	if err := sr.ReadAt(header, 0, "ID3v2 header"); err != nil {
		var oob *binutil.OutOfBoundsError
		if errors.As(err, &oob) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, false, nil
		}
		return 0, false, err
	}

	if !bytes.Equal(header[0:3], leadingMarker) {
		return 0, false, nil
	}

	// Bytes 3-4 hold the version and are not needed to size the tag.
	flags := header[5]
	total := HeaderSize + binutil.DecodeSynchsafe(header[6:10])
	if flags&FooterFlag != 0 {
		total += HeaderSize
	}

	// A size that reaches the end of the file cannot be trusted.
	if int64(total) >= sr.Size() {
		return 0, false, nil
	}

	return total, true, nil
}

// detectTrailing checks the last 128 bytes for an ID3v1 marker. Any failure
// to read that window means no tag.
func detectTrailing(sr *binutil.SafeReader) bool {
	if sr.Size() < TrailerSize {
		return false
	}

	window := make([]byte, TrailerSize)
	if err := sr.ReadTail(window, "ID3v1 tag"); err != nil {
		return false
	}

	return bytes.Equal(window[0:3], trailingMarker)
}
