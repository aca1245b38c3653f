package pcapng

// SimplePacketBlock is the minimal packet record: no interface reference,
// no timestamp, no options. Capture length is implied by the block's own
// length rather than stored explicitly.
type SimplePacketBlock struct {
	// OriginalLen is packet_len: the on-wire length before any
	// interface-side truncation.
	OriginalLen uint32
	// Data is whatever remains of the body after packet_len; its length is
	// the actual captured length, which may be less than OriginalLen.
	Data []byte
}

func (b *SimplePacketBlock) blockType() uint32 { return blockTypeSimplePacket }

// decodeSimplePacket has no options list to parse: the simple packet block
// format has no provision for one.
func decodeSimplePacket(body []byte, endian Endianness) (Block, error) {
	c := newCursor(body, endian)
	originalLen, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeSimplePacket, err)
	}
	return &SimplePacketBlock{
		OriginalLen: originalLen,
		Data:        c.rest(),
	}, nil
}
