package pcapng

// section tracks the interface table and name-resolution records that are
// in scope for one section header block's worth of blocks. A new section
// header resets all of it.
type section struct {
	index      int
	interfaces []*Interface
	// names retains name-resolution blocks verbatim, in the order seen.
	names []*NameResolutionBlock
}

func newSection(index int) *section {
	return &section{index: index}
}

func (s *section) addInterface(idb *InterfaceDescriptionBlock) InterfaceId {
	id := InterfaceId{Section: s.index, Index: len(s.interfaces)}
	s.interfaces = append(s.interfaces, newInterface(id, idb))
	return id
}

// lookupInterface returns the interface at index within this section, or
// nil if index refers to an interface this section never described (a
// malformed or truncated capture could reference one that was never
// declared, or was declared but failed to decode).
func (s *section) lookupInterface(index int) *Interface {
	if index < 0 || index >= len(s.interfaces) {
		return nil
	}
	return s.interfaces[index]
}

func (s *section) addNameResolution(nrb *NameResolutionBlock) {
	s.names = append(s.names, nrb)
}

// applyStats records a statistics snapshot against the interface it names,
// warning if that interface was never declared in this section.
func (s *section) applyStats(isb *InterfaceStatisticsBlock) {
	iface := s.lookupInterface(int(isb.InterfaceIndex))
	if iface == nil {
		warnf("interface statistics for undefined interface %d", isb.InterfaceIndex)
		return
	}
	iface.applyStats(isb)
}

// handleBlock folds one decoded block into section state, returning a
// Packet when the block was a packet record. bodyOffset/bodyLen locate the
// block's body in the source stream, used for Packet.DataOffset.
func (s *section) handleBlock(block Block, bodyOffset, bodyLen int64) *Packet {
	switch b := block.(type) {
	case *InterfaceDescriptionBlock:
		s.addInterface(b)
		return nil
	case *NameResolutionBlock:
		s.addNameResolution(b)
		return nil
	case *InterfaceStatisticsBlock:
		s.applyStats(b)
		return nil
	case *EnhancedPacketBlock:
		id := InterfaceId{Section: s.index, Index: int(b.InterfaceIndex)}
		iface := s.lookupInterface(int(b.InterfaceIndex))
		return s.makePacket(id, iface, b.TimestampTicks, b.Data, bodyOffset+int64(b.dataOffsetInBody))
	case *ObsoletePacketBlock:
		id := InterfaceId{Section: s.index, Index: int(b.InterfaceIndex)}
		iface := s.lookupInterface(int(b.InterfaceIndex))
		return s.makePacket(id, iface, b.TimestampTicks, b.Data, bodyOffset+int64(b.dataOffsetInBody))
	case *SimplePacketBlock:
		dataStart := bodyOffset + (bodyLen - int64(len(b.Data)))
		return &Packet{
			Data:       b.Data,
			DataOffset: [2]int64{dataStart, dataStart + int64(len(b.Data))},
		}
	case *SectionHeaderBlock, *UnparsedBlock:
		return nil
	default:
		return nil
	}
}

func (s *section) makePacket(id InterfaceId, iface *Interface, ticks uint64, data []byte, dataStart int64) *Packet {
	p := &Packet{
		Data:       data,
		DataOffset: [2]int64{dataStart, dataStart + int64(len(data))},
	}
	if iface != nil {
		idCopy := id
		p.Interface = &idCopy
		if !iface.TsresolUnusable {
			ts := resolveTimestamp(ticks, iface.UnitsPerSec)
			p.Timestamp = &ts
		}
	} else {
		warnf("packet references undefined interface %d in section %d", id.Index, id.Section)
	}
	return p
}
