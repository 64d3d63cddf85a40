package eval

import (
	"bufio"
	"io"
	"strings"
)

// LineSource supplies INPUT lines. ReadLine returns io.EOF when no more
// lines are available.
type LineSource interface {
	ReadLine() (string, error)
}

// QueueSource serves a fixed list of lines
type QueueSource struct {
	lines []string
}

// NewQueueSource creates a source over pre-supplied lines
func NewQueueSource(lines ...string) *QueueSource {
	return &QueueSource{lines: lines}
}

// ReadLine dequeues the next line
func (q *QueueSource) ReadLine() (string, error) {
	if len(q.lines) == 0 {
		return "", io.EOF
	}
	line := q.lines[0]
	q.lines = q.lines[1:]
	return line, nil
}

// Remaining reports how many lines have not been read
func (q *QueueSource) Remaining() int {
	return len(q.lines)
}

// ReaderSource reads newline-terminated lines from a reader
type ReaderSource struct {
	scanner *bufio.Scanner
}

// NewReaderSource creates a source over r
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its terminator
func (r *ReaderSource) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}
