package pcapng

// InterfaceId identifies an interface within one section. Packets from
// different sections carry different InterfaceIds even when they were
// actually captured off the same physical interface, since each section
// renumbers its interfaces independently starting from 0.
type InterfaceId struct {
	Section int
	Index   int
}

// Interface is everything this package knows about one capture interface,
// assembled from its InterfaceDescriptionBlock and, if one has arrived,
// the most recent InterfaceStatisticsBlock naming it.
//
// LinkType is left as the raw on-wire code; this package does not decode
// it into a named link-layer enumeration.
type Interface struct {
	ID       InterfaceId
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
	// UnitsPerSec is used to convert this interface's raw timestamp ticks
	// into wall-clock time. TsresolUnusable means units_per_sec itself
	// overflowed a uint32 and those conversions cannot be trusted.
	UnitsPerSec     uint32
	TsresolUnusable bool
	Timezone        *uint32
	Filter          string
	OS              string
	FCSLen          *uint8
	TsOffset        *int64
	Hardware        string
	TxSpeed         *uint64
	RxSpeed         *uint64

	Stats *InterfaceStats
}

// InterfaceStats is the most recently seen statistics snapshot for an
// interface, decoded from an InterfaceStatisticsBlock.
type InterfaceStats struct {
	TimestampTicks uint64
	StartTime      *uint64
	EndTime        *uint64
	IfRecv         *uint64
	IfDrop         *uint64
	FilterAccept   *uint64
	OSDrop         *uint64
	UsrDeliv       *uint64
}

func newInterface(id InterfaceId, idb *InterfaceDescriptionBlock) *Interface {
	return &Interface{
		ID:              id,
		LinkType:        idb.LinkType,
		SnapLen:         idb.SnapLen,
		Name:            idb.Name,
		Description:     idb.Description,
		IPv4Addrs:       idb.IPv4Addrs,
		IPv6Addrs:       idb.IPv6Addrs,
		MACAddr:         idb.MACAddr,
		EUIAddr:         idb.EUIAddr,
		Speed:           idb.Speed,
		UnitsPerSec:     idb.UnitsPerSec,
		TsresolUnusable: idb.TsresolUnusable,
		Timezone:        idb.Timezone,
		Filter:          idb.Filter,
		OS:              idb.OS,
		FCSLen:          idb.FCSLen,
		TsOffset:        idb.TsOffset,
		Hardware:        idb.Hardware,
		TxSpeed:         idb.TxSpeed,
		RxSpeed:         idb.RxSpeed,
	}
}

func (iface *Interface) applyStats(isb *InterfaceStatisticsBlock) {
	iface.Stats = &InterfaceStats{
		TimestampTicks: isb.TimestampTicks,
		StartTime:      isb.StartTime,
		EndTime:        isb.EndTime,
		IfRecv:         isb.IfRecv,
		IfDrop:         isb.IfDrop,
		FilterAccept:   isb.FilterAccept,
		OSDrop:         isb.OSDrop,
		UsrDeliv:       isb.UsrDeliv,
	}
}
