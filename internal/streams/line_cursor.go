package streams

import (
	"bufio"
	"errors"
	"io"
)

const readBufferSize = 64 * 1024

// LineCursor pulls raw lines from a log stream one at a time.
// It is single-pass and not safe for concurrent use.
//
//	cursor := streams.NewLineCursor(rc)
//	defer cursor.Close()
//	for cursor.Next() {
//		handle(cursor.Line())
//	}
//	if err := cursor.Err(); err != nil { ... }
type LineCursor struct {
	source    io.ReadCloser
	reader    *bufio.Reader
	line      string
	err       error
	exhausted bool
	closed    bool
}

func NewLineCursor(source io.ReadCloser) *LineCursor {
	return &LineCursor{
		source: source,
		reader: bufio.NewReaderSize(source, readBufferSize),
	}
}

// Next advances to the next line. It returns false once the stream is exhausted or a read fails;
// the underlying stream is closed at that point.
func (c *LineCursor) Next() bool {
	if c.exhausted {
		return false
	}

	line, err := c.reader.ReadString('\n')
	if err == nil || (errors.Is(err, io.EOF) && line != "") {
		c.line = line
		return true
	}

	c.line = ""
	c.exhausted = true
	if !errors.Is(err, io.EOF) {
		c.err = err
	}
	if closeErr := c.Close(); closeErr != nil && c.err == nil {
		c.err = closeErr
	}
	return false
}

// Line returns the current line including its line terminator, if any.
func (c *LineCursor) Line() string {
	return c.line
}

// Err returns the first read or decode error hit by Next.
func (c *LineCursor) Err() error {
	return c.err
}

func (c *LineCursor) Exhausted() bool {
	return c.exhausted
}

// Close releases the underlying stream. Calling it more than once is a no-op.
func (c *LineCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.exhausted = true
	return c.source.Close()
}
