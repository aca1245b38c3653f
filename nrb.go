package pcapng

// NameResolutionBlock maps addresses to names. Its record structure is not
// decoded further: the body is retained verbatim for callers that want to
// walk it themselves, matching spec.md §4.3's choice to treat name
// resolution records as opaque.
type NameResolutionBlock struct {
	Records []byte
}

func (b *NameResolutionBlock) blockType() uint32 { return blockTypeNameResolution }

func decodeNameResolution(body []byte, endian Endianness) (Block, error) {
	return &NameResolutionBlock{Records: body}, nil
}
