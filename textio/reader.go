package textio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultMarkers is the conventional comment marker set: everything from the
// first '#' to the end of a physical line is a comment.
const DefaultMarkers = "#"

// continuation is the character that joins a physical line to the next
// logical line.
const continuation = '\\'

// StripComment truncates line at the first occurrence of any character in
// markers. The marker character itself and everything after it are discarded.
// An empty marker set disables stripping.
func StripComment(line, markers string) string {
	if markers == "" {
		return line
	}

	if i := strings.IndexAny(line, markers); i >= 0 {
		return line[:i]
	}

	return line
}

// ReadLine reads the next logical line from sc and returns it with its
// length in bytes. A length of zero means the stream is exhausted (or in an
// error state, which is deliberately indistinguishable here).
//
// A logical line is assembled from one or more physical lines: each physical
// line has its trailing comment stripped (per markers) and surrounding
// whitespace trimmed; blank results are skipped entirely. A non-empty trimmed
// line ending in a backslash continues into the next logical line, joined by
// a single space. A line that trims down to a lone backslash contributes
// nothing and carries no content of its own.
//
// Continuations are assembled iteratively, so arbitrarily long continuation
// chains consume constant stack.
func ReadLine(sc *bufio.Scanner, markers string) (string, int) {
	var assembled strings.Builder

	for sc.Scan() {
		line := strings.TrimSpace(StripComment(sc.Text(), markers))

		// Blank and comment-only lines are invisible, even inside a
		// continuation chain.
		if line == "" {
			continue
		}

		continued := line[len(line)-1] == continuation
		if continued {
			line = strings.TrimSpace(line[:len(line)-1])
		}

		if line != "" {
			if assembled.Len() > 0 {
				assembled.WriteByte(' ')
			}

			assembled.WriteString(line)
		}

		if !continued && assembled.Len() > 0 {
			break
		}
	}

	// A stream that ends mid-continuation yields whatever non-empty prefix
	// was assembled; a fully blank or commented tail yields nothing.
	return assembled.String(), assembled.Len()
}

// Rewind repositions a stream at its start.
func Rewind(rs io.ReadSeeker) error {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind stream: %w", err)
	}

	return nil
}

// CountLines counts the lines remaining in rs and rewinds it to the start
// before returning, so repeated calls on the same stream agree and the
// stream is always left ready for a fresh top-to-bottom read.
//
// With a non-empty marker set the count is of logical lines as assembled by
// ReadLine, so blank and comment-only lines are not counted. With an empty
// marker set the count is of raw physical lines, blanks included. The two
// paths intentionally disagree on inputs with blank lines; callers choose the
// semantics via markers.
//
// The returned error comes only from the final rewind; read-level failures
// are conflated with end-of-stream, as in ReadLine.
func CountLines(rs io.ReadSeeker, markers string) (int, error) {
	sc := bufio.NewScanner(rs)
	count := 0

	if markers == "" {
		for sc.Scan() {
			count++
		}
	} else {
		for {
			if _, n := ReadLine(sc, markers); n == 0 {
				break
			}

			count++
		}
	}

	if err := Rewind(rs); err != nil {
		return count, err
	}

	return count, nil
}
