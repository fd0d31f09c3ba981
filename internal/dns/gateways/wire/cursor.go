package wire

import "encoding/binary"

// cursor walks a full DNS message buffer. Every read advances the position
// as far as it successfully got, even on failure, so callers can report the
// exact offset a decode died at. Reads never silently truncate: a short
// read consumes the remaining bytes and reports failure.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) position() int {
	return c.pos
}

// seek moves the cursor to an absolute offset from the start of the buffer.
// Returns false if the offset is outside the buffer.
func (c *cursor) seek(offset int) bool {
	if offset < 0 || offset > len(c.buf) {
		return false
	}
	c.pos = offset
	return true
}

// readN returns the next n bytes without copying. On a short read the
// cursor is left at the end of the buffer and ok is false.
func (c *cursor) readN(n int) ([]byte, bool) {
	if len(c.buf)-c.pos < n {
		c.pos = len(c.buf)
		return nil, false
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, true
}

func (c *cursor) readUint8() (byte, bool) {
	b, ok := c.readN(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

func (c *cursor) readUint16() (uint16, bool) {
	b, ok := c.readN(2)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint16(b), true
}

func (c *cursor) readUint32() (uint32, bool) {
	b, ok := c.readN(4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(b), true
}
