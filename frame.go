package pcapng

// frame is a single delimited block lifted off the front of a buffer: its
// type code, its endianness-resolved byte order, and the slice of body
// bytes between the two length fields (options included, excluding the
// 8-byte header and the trailing length word). For a section header block
// the 4-byte byte-order magic is consumed here too, so its body starts at
// the version fields.
type frame struct {
	blockType uint32
	endian    Endianness
	body      []byte
	// total is the number of bytes this frame consumed from the buffer,
	// header, body and trailing length together.
	total int
}

// parseFrame looks for a complete frame at the front of buf. It returns
// (frame, true, nil) when one is found, (frame{}, false, nil) when buf
// holds an incomplete frame and more input is needed, and a non-nil
// *FrameError when buf's leading bytes are structurally invalid: that
// error is fatal and desynchronizes the stream.
//
// endian is both an input and an output: it carries the current section's
// byte order in, and is updated in place when the frame is a section
// header block establishing a new one.
func parseFrame(buf []byte, endian *Endianness, baseOffset int64) (frame, bool, *FrameError) {
	// Even an empty-bodied block is 12 bytes: type(4) + len(4) + len(4).
	if len(buf) < 12 {
		return frame{}, false, nil
	}

	order := endian.order()
	blockType := order.Uint32(buf[0:4])

	if blockType == blockTypeSectionHeader {
		switch {
		case buf[8] == 0x1A && buf[9] == 0x2B && buf[10] == 0x3C && buf[11] == 0x4D:
			*endian = BigEndian
		case buf[8] == 0x4D && buf[9] == 0x3C && buf[10] == 0x2B && buf[11] == 0x1A:
			*endian = LittleEndian
		default:
			return frame{}, false, &FrameError{Offset: baseOffset, Reason: "didn't understand byte-order magic"}
		}
		order = endian.order()
		// block_type itself is endianness-independent (it's the magic
		// number 0x0A0D0D0A either way), no need to re-read it.
	}

	blockLen := int(order.Uint32(buf[4:8]))
	if blockLen < 12 {
		return frame{}, false, &FrameError{Offset: baseOffset, Reason: "block length is below the 12-byte minimum"}
	}
	if len(buf) < blockLen {
		return frame{}, false, nil
	}

	blockLen2 := int(order.Uint32(buf[blockLen-4 : blockLen]))
	if blockLen != blockLen2 {
		return frame{}, false, &FrameError{Offset: baseOffset, Reason: "leading and trailing block lengths disagree"}
	}

	bodyStart := 8
	if blockType == blockTypeSectionHeader {
		// Skip the byte-order magic. An SHB shorter than 16 bytes cannot
		// reach here: its magic would sit where the trailing length is,
		// and no magic value equals such a length.
		bodyStart = 12
	}

	return frame{
		blockType: blockType,
		endian:    *endian,
		body:      buf[bodyStart : blockLen-4],
		total:     blockLen,
	}, true, nil
}
