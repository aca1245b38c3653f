package pcapng

// Interface description block option codes.
const (
	optIfName        = 2
	optIfDescription = 3
	optIfIPv4Addr    = 4
	optIfIPv6Addr    = 5
	optIfMACAddr     = 6
	optIfEUIAddr     = 7
	optIfSpeed       = 8
	optIfTsresol     = 9
	optIfTzone       = 10
	optIfFilter      = 11
	optIfOS          = 12
	optIfFCSLen      = 13
	optIfTsoffset    = 14
	optIfHardware    = 15
	optIfTxSpeed     = 16
	optIfRxSpeed     = 17
)

// defaultUnitsPerSec is assumed when if_tsresol is absent: 10^6, i.e.
// microsecond resolution, matching libpcap's traditional timestamps.
const defaultUnitsPerSec = 1_000_000

// softSnapLenLimit is the soft cap past which an interface's snap_len
// triggers a warning (spec.md §4.5: "typical snap_len 64KiB ... A soft
// warning is emitted if any interface's snap_len exceeds 10 MiB").
const softSnapLenLimit = 10 * 1024 * 1024

// InterfaceDescriptionBlock declares one capture interface within the
// current section.
type InterfaceDescriptionBlock struct {
	LinkType uint16
	// SnapLen is 0 when unlimited.
	SnapLen uint32

	Name        string
	Description string
	IPv4Addrs   [][8]byte
	IPv6Addrs   [][17]byte
	MACAddr     *[6]byte
	EUIAddr     *[8]byte
	Speed       *uint64
	// UnitsPerSec is derived from if_tsresol; defaultUnitsPerSec if absent.
	// TsresolUnusable is set when the declared resolution doesn't fit in a
	// uint32 (spec.md §3: "reported and the interface's timestamps are
	// flagged unusable").
	UnitsPerSec     uint32
	TsresolUnusable bool
	Timezone        *uint32
	Filter          string
	OS              string
	FCSLen          *uint8
	// TsOffset is the raw if_tsoffset value in seconds. It is not applied
	// to computed packet timestamps.
	TsOffset  *int64
	Hardware  string
	TxSpeed   *uint64
	RxSpeed   *uint64
}

func (b *InterfaceDescriptionBlock) blockType() uint32 { return blockTypeInterfaceDescr }

func decodeInterfaceDescription(body []byte, endian Endianness) (Block, error) {
	c := newCursor(body, endian)
	linkType, err := c.u16()
	if err != nil {
		return nil, newBlockError(blockTypeInterfaceDescr, err)
	}
	if err := c.skip(2); err != nil { // reserved
		return nil, newBlockError(blockTypeInterfaceDescr, err)
	}
	snapLen, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeInterfaceDescr, err)
	}

	idb := &InterfaceDescriptionBlock{
		LinkType:    linkType,
		SnapLen:     snapLen,
		UnitsPerSec: defaultUnitsPerSec,
	}
	if snapLen > softSnapLenLimit {
		warnf("interface description: snap_len %d exceeds the %d soft limit", snapLen, softSnapLenLimit)
	}

	parseOptions(c.rest(), endian, func(code uint16, value []byte) {
		switch code {
		case optIfName:
			idb.Name = bytesToString(value)
		case optIfDescription:
			idb.Description = bytesToString(value)
		case optIfIPv4Addr:
			if arr, ok := fixedArray8(value); ok {
				idb.IPv4Addrs = append(idb.IPv4Addrs, arr)
			}
		case optIfIPv6Addr:
			if len(value) != 17 {
				warnf("interface description: if_ipv6_addr expected 17 bytes, got %d", len(value))
				return
			}
			var arr [17]byte
			copy(arr[:], value)
			idb.IPv6Addrs = append(idb.IPv6Addrs, arr)
		case optIfMACAddr:
			if arr, ok := fixedArray6(value); ok {
				idb.MACAddr = &arr
			}
		case optIfEUIAddr:
			if arr, ok := fixedArray8(value); ok {
				idb.EUIAddr = &arr
			}
		case optIfSpeed:
			if v, ok := bytesToUint64(value, endian); ok {
				idb.Speed = &v
			}
		case optIfTsresol:
			if len(value) != 1 {
				warnf("interface description: if_tsresol expected 1 byte, got %d", len(value))
				return
			}
			units, unusable := decodeTsresol(value[0])
			if unusable {
				warnf("interface description: if_tsresol 0x%02x overflows a uint32 units_per_sec; timestamps are unusable", value[0])
			}
			idb.UnitsPerSec = units
			idb.TsresolUnusable = unusable
		case optIfTzone:
			if v, ok := bytesToUint32(value, endian); ok {
				idb.Timezone = &v
			}
		case optIfFilter:
			idb.Filter = bytesToString(value)
		case optIfOS:
			idb.OS = bytesToString(value)
		case optIfFCSLen:
			if len(value) != 1 {
				warnf("interface description: if_fcslen expected 1 byte, got %d", len(value))
				return
			}
			v := value[0]
			idb.FCSLen = &v
		case optIfTsoffset:
			if len(value) != 8 {
				warnf("interface description: if_tsoffset expected 8 bytes, got %d", len(value))
				return
			}
			v := int64(endian.order().Uint64(value))
			idb.TsOffset = &v
		case optIfHardware:
			idb.Hardware = bytesToString(value)
		case optIfTxSpeed:
			if v, ok := bytesToUint64(value, endian); ok {
				idb.TxSpeed = &v
			}
		case optIfRxSpeed:
			if v, ok := bytesToUint64(value, endian); ok {
				idb.RxSpeed = &v
			}
		}
	})
	return idb, nil
}

// decodeTsresol decodes the single if_tsresol byte per spec.md §3: low 7
// bits are the exponent, the top bit selects the base (0 -> 10, 1 -> 2).
// It reports whether the resulting units-per-second value overflows a
// uint32, in which case the interface's timestamps must be treated as
// unusable.
func decodeTsresol(v uint8) (unitsPerSec uint32, unusable bool) {
	exp := uint(v & 0x7f)
	base := uint64(10)
	if v&0x80 != 0 {
		base = 2
	}
	units := uint64(1)
	for i := uint(0); i < exp; i++ {
		units *= base
		if units > 0xFFFFFFFF {
			return 0, true
		}
	}
	return uint32(units), false
}
