package pcapng

// Enhanced packet block option codes.
const (
	optEpbFlags     = 2
	optEpbHash      = 3
	optEpbDropcount = 4
	optEpbPacketid  = 5
	optEpbQueue     = 6
	optEpbVerdict   = 7
)

// EnhancedPacketBlock is the modern, preferred packet record: it carries
// its own interface reference and a 64-bit timestamp assembled from two
// 32-bit halves.
type EnhancedPacketBlock struct {
	InterfaceIndex uint32
	// TimestampTicks is (hi<<32)|lo in the interface's own units (spec.md
	// §9: the original implementation's (hi<<4)+lo is a known bug, fixed
	// here).
	TimestampTicks uint64
	CapturedLen    uint32
	// OriginalLen is packet_len: the on-wire length, which may exceed
	// CapturedLen when the interface truncated the packet at capture time.
	OriginalLen uint32
	Data        []byte
	// dataOffsetInBody is Data's start offset relative to the block body,
	// used to compute Packet.DataOffset against the stream.
	dataOffsetInBody int

	Flags     *uint32
	Hash      []byte
	DropCount *uint64
	PacketID  *uint64
	Queue     *uint32
	Verdict   []byte
}

func (b *EnhancedPacketBlock) blockType() uint32 { return blockTypeEnhancedPacket }

func decodeEnhancedPacket(body []byte, endian Endianness) (Block, error) {
	c := newCursor(body, endian)
	ifaceIdx, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeEnhancedPacket, err)
	}
	hi, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeEnhancedPacket, err)
	}
	lo, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeEnhancedPacket, err)
	}
	capturedLen, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeEnhancedPacket, err)
	}
	originalLen, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeEnhancedPacket, err)
	}
	if int(capturedLen) > c.remaining() {
		return nil, newBlockError(blockTypeEnhancedPacket, errTruncated)
	}
	dataOffset := c.pos
	data, err := c.bytes(int(capturedLen))
	if err != nil {
		return nil, newBlockError(blockTypeEnhancedPacket, err)
	}

	epb := &EnhancedPacketBlock{
		InterfaceIndex:   ifaceIdx,
		TimestampTicks:   (uint64(hi) << 32) | uint64(lo),
		CapturedLen:      capturedLen,
		OriginalLen:      originalLen,
		Data:             data,
		dataOffsetInBody: dataOffset,
	}
	parseOptions(c.rest(), endian, func(code uint16, value []byte) {
		switch code {
		case optEpbFlags:
			if v, ok := bytesToUint32(value, endian); ok {
				epb.Flags = &v
			}
		case optEpbHash:
			epb.Hash = value
		case optEpbDropcount:
			if v, ok := bytesToUint64(value, endian); ok {
				epb.DropCount = &v
			}
		case optEpbPacketid:
			if v, ok := bytesToUint64(value, endian); ok {
				epb.PacketID = &v
			}
		case optEpbQueue:
			if v, ok := bytesToUint32(value, endian); ok {
				epb.Queue = &v
			}
		case optEpbVerdict:
			epb.Verdict = value
		}
	})
	return epb, nil
}
