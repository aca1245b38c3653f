package pcapng

import "encoding/binary"

// Endianness is the byte order in effect for the current section. It is
// established by the section header block's byte-order magic and stays in
// force for every multi-byte integer field until the next section header.
type Endianness int

const (
	// LittleEndian marks a section whose byte-order magic read as
	// 0x4D3C2B1A under the assumed endianness.
	LittleEndian Endianness = iota
	// BigEndian marks a section whose byte-order magic read as 0x1A2B3C4D.
	BigEndian
)

func (e Endianness) order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// cursor reads fixed- and variable-length fields out of a block body,
// advancing as it goes and refusing to read past the end of buf.
type cursor struct {
	buf    []byte
	pos    int
	endian Endianness
}

func newCursor(buf []byte, endian Endianness) *cursor {
	return &cursor{buf: buf, endian: endian}
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) require(n int) error {
	if c.remaining() < n {
		return errTruncated
	}
	return nil
}

func (c *cursor) u16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := c.endian.order().Uint16(c.buf[c.pos : c.pos+2])
	c.pos += 2
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := c.endian.order().Uint32(c.buf[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

func (c *cursor) u64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := c.endian.order().Uint64(c.buf[c.pos : c.pos+8])
	c.pos += 8
	return v, nil
}

func (c *cursor) i64() (int64, error) {
	v, err := c.u64()
	return int64(v), err
}

// skip advances the cursor n bytes without interpreting them.
func (c *cursor) skip(n int) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// bytes returns the next n bytes as a sub-slice (no copy) and advances past
// them plus their 4-byte alignment padding.
func (c *cursor) bytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	v := c.buf[c.pos : c.pos+n]
	c.pos += n
	pad := padLen(n)
	// Padding may be legitimately absent at the very end of a block body
	// (some writers omit trailing padding on the last field); only consume
	// it if present.
	if c.remaining() >= pad {
		c.pos += pad
	}
	return v, nil
}

// rest returns every remaining byte without advancing further.
func (c *cursor) rest() []byte {
	return c.buf[c.pos:]
}

// padLen is the number of zero bytes needed to round n up to a 4-byte
// boundary.
func padLen(n int) int {
	return (4 - (n & 3)) & 3
}
