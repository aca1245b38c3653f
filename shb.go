package pcapng

// Section header block option codes.
const (
	optSHBHardware = 2
	optSHBOS       = 3
	optSHBUserAppl = 4
)

// SectionHeaderBlock marks the start of a new section. Its
// byte-order-magic field has already been consumed by the framer (which
// uses it to establish Endian before this decoder ever runs) so it is not
// repeated here.
type SectionHeaderBlock struct {
	MajorVersion uint16
	MinorVersion uint16
	// SectionLength is -1 when unknown. Any negative value other than -1
	// is itself non-conformant; spec.md §9 resolves this ambiguity by
	// treating it as unknown too, with a warning.
	SectionLength int64
	Hardware        string
	OS              string
	UserApplication string
}

func (b *SectionHeaderBlock) blockType() uint32 { return blockTypeSectionHeader }

func decodeSectionHeader(body []byte, endian Endianness) (Block, error) {
	c := newCursor(body, endian)
	major, err := c.u16()
	if err != nil {
		return nil, newBlockError(blockTypeSectionHeader, err)
	}
	minor, err := c.u16()
	if err != nil {
		return nil, newBlockError(blockTypeSectionHeader, err)
	}
	sectionLen, err := c.i64()
	if err != nil {
		return nil, newBlockError(blockTypeSectionHeader, err)
	}
	if sectionLen != -1 && sectionLen < 0 {
		warnf("section header: negative section length %d treated as unknown", sectionLen)
		sectionLen = -1
	}

	shb := &SectionHeaderBlock{
		MajorVersion:  major,
		MinorVersion:  minor,
		SectionLength: sectionLen,
	}
	parseOptions(c.rest(), endian, func(code uint16, value []byte) {
		switch code {
		case optSHBHardware:
			shb.Hardware = bytesToString(value)
		case optSHBOS:
			shb.OS = bytesToString(value)
		case optSHBUserAppl:
			shb.UserApplication = bytesToString(value)
		}
	})
	return shb, nil
}
