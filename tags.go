package id3strip

import (
	"fmt"
	"strings"
)

const (
	// HeaderSize is the length of the ID3v2 header, and of its optional footer.
	HeaderSize = 10

	// TrailerSize is the fixed length of an ID3v1 tag.
	TrailerSize = 128

	// FooterFlag marks an ID3v2 tag that carries a footer after its frames.
	FooterFlag = 0x10
)

var (
	leadingMarker  = []byte("ID3")
	trailingMarker = []byte("TAG")
)

// TagInfo describes the tags Scan found in one file.
//
// LeadingSize is the full span of the ID3v2 tag (header, frames, and footer
// when flagged). It is only set when HasLeading is true, and is always
// smaller than the file was at scan time.
type TagInfo struct {
	HasLeading  bool
	LeadingSize uint32
	HasTrailing bool
}

// Empty reports whether no tag was found.
func (ti TagInfo) Empty() bool {
	return !ti.HasLeading && !ti.HasTrailing
}

// Removed returns the number of bytes stripping would remove.
func (ti TagInfo) Removed() int64 {
	var n int64
	if ti.HasLeading {
		n += int64(ti.LeadingSize)
	}
	if ti.HasTrailing {
		n += TrailerSize
	}
	return n
}

// String returns a short description such as "ID3v2 (510 bytes) + ID3v1".
func (ti TagInfo) String() string {
	var parts []string
	if ti.HasLeading {
		parts = append(parts, fmt.Sprintf("ID3v2 (%d bytes)", ti.LeadingSize))
	}
	if ti.HasTrailing {
		parts = append(parts, "ID3v1")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " + ")
}
