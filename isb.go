package pcapng

// Interface statistics block option codes.
const (
	optIsbStarttime    = 2
	optIsbEndtime      = 3
	optIsbIfrecv       = 4
	optIsbIfdrop       = 5
	optIsbFilterAccept = 6
	optIsbOsdrop       = 7
	optIsbUsrdeliv     = 8
)

// InterfaceStatisticsBlock is a capture-wide snapshot of one interface's
// packet counters, taken at TimestampTicks.
type InterfaceStatisticsBlock struct {
	InterfaceIndex uint32
	TimestampTicks uint64

	StartTime     *uint64
	EndTime       *uint64
	IfRecv        *uint64
	IfDrop        *uint64
	FilterAccept  *uint64
	OSDrop        *uint64
	UsrDeliv      *uint64
}

func (b *InterfaceStatisticsBlock) blockType() uint32 { return blockTypeInterfaceStatistics }

func decodeInterfaceStatistics(body []byte, endian Endianness) (Block, error) {
	c := newCursor(body, endian)
	ifaceIdx, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeInterfaceStatistics, err)
	}
	hi, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeInterfaceStatistics, err)
	}
	lo, err := c.u32()
	if err != nil {
		return nil, newBlockError(blockTypeInterfaceStatistics, err)
	}

	isb := &InterfaceStatisticsBlock{
		InterfaceIndex: ifaceIdx,
		TimestampTicks: (uint64(hi) << 32) | uint64(lo),
	}
	parseOptions(c.rest(), endian, func(code uint16, value []byte) {
		switch code {
		case optIsbStarttime:
			if v, ok := bytesToUint64(value, endian); ok {
				isb.StartTime = &v
			}
		case optIsbEndtime:
			if v, ok := bytesToUint64(value, endian); ok {
				isb.EndTime = &v
			}
		case optIsbIfrecv:
			if v, ok := bytesToUint64(value, endian); ok {
				isb.IfRecv = &v
			}
		case optIsbIfdrop:
			if v, ok := bytesToUint64(value, endian); ok {
				isb.IfDrop = &v
			}
		case optIsbFilterAccept:
			if v, ok := bytesToUint64(value, endian); ok {
				isb.FilterAccept = &v
			}
		case optIsbOsdrop:
			if v, ok := bytesToUint64(value, endian); ok {
				isb.OSDrop = &v
			}
		case optIsbUsrdeliv:
			if v, ok := bytesToUint64(value, endian); ok {
				isb.UsrDeliv = &v
			}
		}
	})
	return isb, nil
}
