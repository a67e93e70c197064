// Package id3strip removes ID3 tags from audio files without touching
// anything else.
//
// It finds the two legacy tag containers an MP3 can carry, an ID3v2 tag at
// the start of the file and a 128-byte ID3v1 tag at the end, and cuts them
// out while keeping every other byte, the permission bits, and the access
// and modification times exactly as they were.
//
// # Quick Start
//
//	info, err := id3strip.Scan("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(info) // ID3v2 (4106 bytes) + ID3v1
//
//	changed, err := id3strip.Strip("song.mp3", info)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or in one step:
//
//	info, changed, err := id3strip.StripFile(ctx, "song.mp3")
//
// # What Counts as a Tag
//
// An ID3v2 tag is recognised by the "ID3" marker in a 10-byte header. Its
// size is the synchsafe body size plus the header, plus 10 more bytes when
// the footer flag (0x10) is set. A tag whose computed size reaches the end
// of the file is treated as corrupt and left alone.
//
// An ID3v1 tag is recognised by "TAG" at the start of the last 128 bytes.
// Files shorter than 128 bytes never have one.
//
// The contents of either tag are never parsed.
//
// # Crash Safety
//
// The ID3v2 rewrite writes the remaining bytes to a temporary file in the
// same directory, syncs it, and renames it over the original. Until that
// rename, the original is untouched; after it, the new content is complete.
// The temporary file is removed on every failure path. ID3v1 removal is a
// single truncate.
//
// Only regular files are stripped. A symbolic link is rejected with an
// *IOError before anything is written.
//
// # Error Handling
//
// Detection problems (short files, wrong markers, impossible sizes) mean
// "no tag" and are never errors. I/O failures come back as *IOError.
// Failing to restore attributes after a successful strip comes back as
// *AttributeRestoreError, a warning: the content change stays.
//
//	changed, err := id3strip.Strip(path, info)
//	var attrErr *id3strip.AttributeRestoreError
//	if errors.As(err, &attrErr) {
//		log.Printf("warning: %v", err)
//	}
//
// # Concurrency
//
// Scan and Strip keep no shared state and can run on different files in
// parallel. StripMany and ScanMany do that with a bounded worker pool.
// Nothing locks a file: do not strip the same path from two goroutines.
package id3strip
