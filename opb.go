package pcapng

// unknownDropsCount is the sentinel drops_count value meaning "unknown".
const unknownDropsCount = 0xFFFF

// ObsoletePacketBlock is the original, deprecated packet record format,
// superseded by EnhancedPacketBlock but still seen in older captures.
type ObsoletePacketBlock struct {
	InterfaceIndex uint16
	// DropsCount is nil when the obsolete 0xFFFF "unknown" sentinel was
	// present.
	DropsCount     *uint16
	TimestampTicks uint64
	CapturedLen    uint32
	OriginalLen    uint32
	Data           []byte
	// dataOffsetInBody is Data's start offset relative to the block body,
	// used to compute Packet.DataOffset against the stream.
	dataOffsetInBody int

	Flags     *uint32
	Hash      []byte
	DropCount *uint64
}

func (b *ObsoletePacketBlock) blockType() uint32 { return blockTypeObsoletePacket }

func decodeObsoletePacket(body []byte, endian Endianness) (Block, error) {
	c := newCursor(body, endian)
	ifaceIdx, err := c.u16()
	if err != nil {
		return nil, newBlockError(blockTypeObsoletePacket, err)
	}
	dropsRaw, err := c.u16()
	if err != nil {
		return nil, newBlockError(blockTypeObsoletePacket, err)
	}
	hi, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeObsoletePacket, err)
	}
	lo, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeObsoletePacket, err)
	}
	capturedLen, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeObsoletePacket, err)
	}
	originalLen, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeObsoletePacket, err)
	}
	if int(capturedLen) > c.remaining() {
		return nil, newBlockError(blockTypeObsoletePacket, errTruncated)
	}
	dataOffset := c.pos
	data, err := c.bytes(int(capturedLen))
	if err != nil {
		return nil, newBlockError(blockTypeObsoletePacket, err)
	}

	opb := &ObsoletePacketBlock{
		InterfaceIndex:   ifaceIdx,
		TimestampTicks:   (uint64(hi) << 32) | uint64(lo),
		CapturedLen:      capturedLen,
		OriginalLen:      originalLen,
		Data:             data,
		dataOffsetInBody: dataOffset,
	}
	if dropsRaw != unknownDropsCount {
		v := dropsRaw
		opb.DropsCount = &v
	}
	parseOptions(c.rest(), endian, func(code uint16, value []byte) {
		switch code {
		case optEpbFlags:
			if v, ok := bytesToUint32(value, endian); ok {
				opb.Flags = &v
			}
		case optEpbHash:
			opb.Hash = value
		case optEpbDropcount:
			if v, ok := bytesToUint64(value, endian); ok {
				opb.DropCount = &v
			}
		}
	})
	return opb, nil
}
