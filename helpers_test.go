package id3strip

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	binutil "github.com/simonhull/id3strip/internal/binary"
)

// buildID3v2 returns an ID3v2.4 tag with bodySize frame bytes, plus a footer
// when flags has FooterFlag set.
func buildID3v2(bodySize uint32, flags byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.Write([]byte{4, 0, flags})
	size := binutil.EncodeSynchsafe(bodySize)
	buf.Write(size[:])
	buf.Write(bytes.Repeat([]byte{0xAA}, int(bodySize)))
	if flags&FooterFlag != 0 {
		buf.WriteString("3DI")
		buf.Write([]byte{4, 0, flags})
		buf.Write(size[:])
	}
	return buf.Bytes()
}

// buildID3v1 returns a 128-byte ID3v1 tag.
func buildID3v1() []byte {
	tag := make([]byte, TrailerSize)
	copy(tag, "TAG")
	copy(tag[3:], "Title")
	tag[127] = 17
	return tag
}

// buildAudio returns n bytes that never contain either tag marker.
func buildAudio(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 251)
	}
	return data
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// writeTestFile writes data to a fresh file in its own temp directory.
func writeTestFile(t testing.TB, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "track.mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readTestFile(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

// assertNoTempFiles fails if a strip left a temporary file next to path.
func assertNoTempFiles(t *testing.T, path string) {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".id3strip-*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) > 0 {
		t.Errorf("temporary files left behind: %v", matches)
	}
}
