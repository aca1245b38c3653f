package pcapng

// Block type codes, as framed at the head of every block.
const (
	blockTypeSectionHeader       uint32 = 0x0A0D0D0A
	blockTypeInterfaceDescr      uint32 = 0x00000001
	blockTypeObsoletePacket      uint32 = 0x00000002
	blockTypeSimplePacket        uint32 = 0x00000003
	blockTypeNameResolution      uint32 = 0x00000004
	blockTypeInterfaceStatistics uint32 = 0x00000005
	blockTypeEnhancedPacket      uint32 = 0x00000006
)

// Recognised-but-unparsed block type codes (spec.md §6): these must be
// framed correctly and skipped, logged at debug level rather than as
// unknown block types.
var recognisedUnparsedBlockTypes = map[uint32]string{
	0x00000007: "IRIG Timestamp",
	0x00000008: "ARINC 429",
	0x00000009: "Systemd Journal Export",
	0x0000000A: "Decryption Secrets",
	0x00000101: "Hone",
	0x40000102: "Hone",
	0x00000BAD: "Custom (non-copy)",
	0x40000BAD: "Custom (non-copy)",
}

func init() {
	for code := uint32(0x0201); code <= 0x0213; code++ {
		recognisedUnparsedBlockTypes[code] = "Sysdig"
	}
}

// Block is the closed sum type over every pcap-ng block kind this package
// understands. Each block struct in this package implements it; there is
// no fourth-party dispatch mechanism, decoders are selected by a switch on
// the framed type code in decodeBlockBody.
type Block interface {
	blockType() uint32
}

// UnparsedBlock is either a recognised-but-ignored block type, or an
// entirely unknown one; either way only its type code is retained.
type UnparsedBlock struct {
	Type uint32
	// Known is true for codes in recognisedUnparsedBlockTypes; false for
	// anything else, which spec.md §7 asks to be logged as unknown.
	Known bool
}

func (b *UnparsedBlock) blockType() uint32 { return b.Type }

// decodeBlockBody dispatches to the per-kind decoder for blockType, or
// produces an UnparsedBlock for anything it doesn't have a dedicated
// decoder for. The frame has already been delimited by the caller, so any
// error returned here is a *BlockError: non-fatal, and the reader remains
// usable for the next block.
func decodeBlockBody(blockType uint32, body []byte, endian Endianness) (Block, error) {
	switch blockType {
	case blockTypeSectionHeader:
		return decodeSectionHeader(body, endian)
	case blockTypeInterfaceDescr:
		return decodeInterfaceDescription(body, endian)
	case blockTypeEnhancedPacket:
		return decodeEnhancedPacket(body, endian)
	case blockTypeSimplePacket:
		return decodeSimplePacket(body, endian)
	case blockTypeObsoletePacket:
		return decodeObsoletePacket(body, endian)
	case blockTypeNameResolution:
		return decodeNameResolution(body, endian)
	case blockTypeInterfaceStatistics:
		return decodeInterfaceStatistics(body, endian)
	default:
		if name, known := recognisedUnparsedBlockTypes[blockType]; known {
			debugf("skipping recognised-but-unparsed %s block (type=0x%08x)", name, blockType)
			return &UnparsedBlock{Type: blockType, Known: true}, nil
		}
		warnf("unknown block type 0x%08x", blockType)
		return &UnparsedBlock{Type: blockType, Known: false}, nil
	}
}
