package tail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	readBufferSize = 64 * 1024
	// initialRing caps the up-front ring allocation; larger counts grow
	// the ring while it fills.
	initialRing = 1024
)

// ErrInvalidCount is returned for a negative line count.
var ErrInvalidCount = errors.New("line count must not be negative")

// Lines returns the last n lines read from r in their original order. A
// count of zero returns nil. When r holds fewer than n lines, every line
// is returned. Lines have no length limit; a trailing "\r\n" or "\n" is
// stripped and a final unterminated line is kept.
func Lines(r io.Reader, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("tail %d lines: %w", n, ErrInvalidCount)
	}
	if n == 0 {
		return nil, nil
	}

	reader := bufio.NewReaderSize(r, readBufferSize)
	next := func() (string, bool, error) {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("read lines: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		return line, true, nil
	}

	// Fill the ring with the first n lines.
	ring := make([]string, 0, min(n, initialRing))
	for len(ring) < n {
		line, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return ring, nil
		}
		ring = append(ring, line)
	}

	// last is the slot holding the newest line.
	last := n - 1
	for {
		line, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		last++
		if last == n {
			last = 0
		}
		ring[last] = line
	}

	if last == n-1 {
		return ring, nil
	}
	lines := make([]string, 0, n)
	lines = append(lines, ring[last+1:]...)
	lines = append(lines, ring[:last+1]...)
	return lines, nil
}

// File returns at most n lines from the end of the file at path.
func File(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	return Lines(file, n)
}
