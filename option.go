package pcapng

import "unicode/utf8"

// Option type codes shared by every block that carries an option list.
const (
	optEndOfOpt = 0
	optComment  = 1
)

// "Custom data" option codes defined by the pcap-ng spec for private
// vendor extensions. The core has no use for them and skips them exactly
// like the opt_comment option, without handing them to the per-block
// callback.
const (
	optCustomStr1 = 2988
	optCustomBin1 = 2989
	optCustomStr2 = 19372
	optCustomBin2 = 19373
)

// parseOptions walks the TLV option list that follows a block's fixed
// fields, invoking handle once per option other than end-of-options,
// comments and custom data; the callback decides which codes it uses. It
// never returns an error: truncation and trailing-bytes conditions are
// reported through the structured logger and simply end iteration, per
// spec.md §4.2 ("Fails never; produces only side effects through the
// callback").
func parseOptions(body []byte, endian Endianness, handle func(code uint16, value []byte)) {
	c := newCursor(body, endian)
	for c.remaining() >= 4 {
		code, err := c.u16()
		if err != nil {
			warnf("option list: %s", err)
			return
		}
		length, err := c.u32From16()
		if err != nil {
			warnf("option list: %s", err)
			return
		}
		value, err := c.bytes(int(length))
		if err != nil {
			warnf("option list: truncated option (type=%d, declared length=%d)", code, length)
			return
		}
		switch code {
		case optEndOfOpt:
			if length != 0 {
				warnf("option list: end-of-opt carried a %d-byte payload", length)
			}
			checkTrailing(c)
			return
		case optComment:
			// Comments are accepted but not surfaced by the core decoder.
		case optCustomStr1, optCustomBin1, optCustomStr2, optCustomBin2:
			// Vendor "custom data" sections; out of scope.
		default:
			handle(code, value)
		}
	}
	checkTrailing(c)
}

func checkTrailing(c *cursor) {
	if c.remaining() > 0 {
		warnf("option list: %d trailing byte(s) after end of options", c.remaining())
	}
}

// u32From16 reads a 16-bit length field widened to uint32 for convenience
// at call sites that compare it against declared body lengths.
func (c *cursor) u32From16() (uint32, error) {
	v, err := c.u16()
	return uint32(v), err
}

// fixedArray6 and fixedArray8 copy an option's value into a fixed-size
// array, warning and returning false if the value's length doesn't match
// exactly.
func fixedArray6(value []byte) (out [6]byte, ok bool) {
	if len(value) != 6 {
		warnf("option: expected a 6-byte value, got %d", len(value))
		return out, false
	}
	copy(out[:], value)
	return out, true
}

func fixedArray8(value []byte) (out [8]byte, ok bool) {
	if len(value) != 8 {
		warnf("option: expected an 8-byte value, got %d", len(value))
		return out, false
	}
	copy(out[:], value)
	return out, true
}

// bytesToUint32 and bytesToUint64 read a section-endian unsigned integer
// from an option value, returning false if the value's length doesn't
// match exactly.
func bytesToUint32(value []byte, endian Endianness) (uint32, bool) {
	if len(value) != 4 {
		warnf("option: expected a 4-byte integer, got %d bytes", len(value))
		return 0, false
	}
	return endian.order().Uint32(value), true
}

func bytesToUint64(value []byte, endian Endianness) (uint64, bool) {
	if len(value) != 8 {
		warnf("option: expected an 8-byte integer, got %d bytes", len(value))
		return 0, false
	}
	return endian.order().Uint64(value), true
}

// bytesToString decodes an option value as UTF-8, replacing invalid
// sequences rather than failing, matching the original source's
// "lossy" string decoding.
func bytesToString(value []byte) string {
	if utf8.Valid(value) {
		return string(value)
	}
	buf := make([]rune, 0, len(value))
	for len(value) > 0 {
		r, size := utf8.DecodeRune(value)
		buf = append(buf, r)
		value = value[size:]
	}
	return string(buf)
}
