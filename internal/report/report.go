// Package report prints per-file outcomes and run summaries.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhowden/tag"

	"github.com/simonhull/id3strip"
)

// Summary counts the outcomes of one run.
type Summary struct {
	Found     int // files with at least one tag
	Processed int // files changed
	Skipped   int // files that failed
	Warnings  int // files changed with attributes not restored
}

// Reporter writes progress lines to Out and problems to Err.
type Reporter struct {
	Out io.Writer
	Err io.Writer
}

// New creates a Reporter. Nil writers default to stdout and stderr.
func New(out, errOut io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Reporter{Out: out, Err: errOut}
}

// DryRun reports what stripping would remove and never touches the files.
func (r *Reporter) DryRun(results []id3strip.Result) Summary {
	var sum Summary
	for _, res := range results {
		if res.Err != nil {
			sum.Skipped++
			fmt.Fprintf(r.Err, "[skip] %s: %v\n", res.Path, res.Err)
			continue
		}
		if res.Info.Empty() {
			continue
		}
		sum.Found++
		fmt.Fprintf(r.Out, "[dry-run] would remove %s: %s\n", Describe(res.Path, res.Info), res.Path)
	}
	return sum
}

// Stripped reports the results of a strip run and prints the summary line.
func (r *Reporter) Stripped(results []id3strip.Result) Summary {
	var sum Summary
	for _, res := range results {
		if !res.Info.Empty() {
			sum.Found++
		}

		var attrErr *id3strip.AttributeRestoreError
		switch {
		case res.Err == nil:
			if res.Changed {
				sum.Processed++
				fmt.Fprintf(r.Out, "[ok] stripped metadata: %s\n", res.Path)
			}
		case !res.Scanned:
			sum.Skipped++
			fmt.Fprintf(r.Err, "[skip] %s: %v\n", res.Path, res.Err)
		case res.Changed && isOnly(res.Err, &attrErr):
			sum.Processed++
			sum.Warnings++
			fmt.Fprintf(r.Out, "[ok] stripped metadata: %s\n", res.Path)
			fmt.Fprintf(r.Err, "[warn] %v\n", attrErr)
		default:
			sum.Skipped++
			fmt.Fprintf(r.Err, "[error] %s: %v\n", res.Path, res.Err)
		}
	}

	fmt.Fprintf(r.Out, "Done. Updated %d file(s); skipped %d.\n", sum.Processed, sum.Skipped)
	return sum
}

// isOnly reports whether err is exactly an *AttributeRestoreError and not
// a join that also carries an I/O failure.
func isOnly(err error, target **id3strip.AttributeRestoreError) bool {
	var ioErr *id3strip.IOError
	return errors.As(err, target) && !errors.As(err, &ioErr)
}

// Describe names the tags in info, e.g. "ID3v2.4 + ID3v1".
//
// The ID3v2 minor version is read from the file when it can be; otherwise
// the tag is just called "ID3v2".
func Describe(path string, info id3strip.TagInfo) string {
	var parts []string
	if info.HasLeading {
		parts = append(parts, leadingLabel(path))
	}
	if info.HasTrailing {
		parts = append(parts, "ID3v1")
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, " + ")
}

func leadingLabel(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "ID3v2"
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	format, _, err := tag.Identify(f)
	if err != nil {
		return "ID3v2"
	}

	switch format {
	case tag.ID3v2_2:
		return "ID3v2.2"
	case tag.ID3v2_3:
		return "ID3v2.3"
	case tag.ID3v2_4:
		return "ID3v2.4"
	default:
		return "ID3v2"
	}
}
