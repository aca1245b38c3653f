package pcapng

import "io"

// Capture iterates the packets of a pcap-ng capture stream. It is pull-
// based and single-threaded: there is no internal goroutine, and nothing
// to cancel beyond dropping the value. A Capture is not safe for
// concurrent use.
type Capture struct {
	reader  *blockReader
	section *section
	// nextSectionIndex is the index the next section header block will be
	// assigned.
	nextSectionIndex int
	started          bool
}

// Open begins reading a pcap-ng capture from source. No bytes are read
// until the first call to Next.
func Open(source io.Reader) *Capture {
	return &Capture{reader: newBlockReader(source)}
}

// Next returns the next packet in the capture. It returns (nil, io.EOF) at
// a clean end of stream. A *BlockError means one block in the stream
// couldn't be decoded; the Capture remains usable and the next call to
// Next resumes with the following block. A *FrameError means the stream's
// framing itself is corrupt; the Capture is now dead and every subsequent
// call returns io.EOF. ErrDidntStartWithSHB is returned, and the Capture
// left dead, if the very first block is not a section header block.
func (c *Capture) Next() (*Packet, error) {
	for {
		res, ok, err := c.reader.tryNext()
		if !ok {
			if err == nil {
				return nil, io.EOF
			}
			return nil, err
		}
		if err != nil {
			// A BlockError: the block was framed but didn't decode. The
			// frame itself is intact so iteration may continue.
			if !c.started {
				c.started = true
				if res.blockType != blockTypeSectionHeader {
					c.reader.dead = true
					return nil, ErrDidntStartWithSHB
				}
			}
			switch res.blockType {
			case blockTypeSectionHeader:
				// A corrupt section header still opens a new section, so
				// interface indices restart as they would for a good one.
				c.section = newSection(c.nextSectionIndex)
				c.nextSectionIndex++
			case blockTypeInterfaceDescr:
				// A corrupt interface description still takes its index: a
				// nil placeholder keeps later interfaces at their positions.
				if c.section != nil {
					c.section.interfaces = append(c.section.interfaces, nil)
				}
			}
			return nil, err
		}

		if _, isSHB := res.block.(*SectionHeaderBlock); isSHB {
			c.section = newSection(c.nextSectionIndex)
			c.nextSectionIndex++
			c.started = true
			continue
		}
		if !c.started {
			c.started = true
			c.reader.dead = true
			return nil, ErrDidntStartWithSHB
		}
		if c.section == nil {
			// Defensive: a non-SHB block arrived before any section
			// header block.
			continue
		}

		if pkt := c.section.handleBlock(res.block, res.bodyOffset, res.bodyLen); pkt != nil {
			return pkt, nil
		}
	}
}

// Rewind returns the Capture to the very start of the stream, clearing all
// section and interface state. It requires the underlying io.Reader to
// implement io.Seeker.
func (c *Capture) Rewind() error {
	if err := c.reader.rewind(); err != nil {
		return err
	}
	c.section = nil
	c.nextSectionIndex = 0
	c.started = false
	return nil
}

// LookupInterface returns the interface identified by id, if its
// describing block has been seen and decoded in the current section. Ids
// from earlier sections are not found.
func (c *Capture) LookupInterface(id InterfaceId) (*Interface, bool) {
	if c.section == nil || c.section.index != id.Section {
		return nil, false
	}
	iface := c.section.lookupInterface(id.Index)
	if iface == nil {
		return nil, false
	}
	return iface, true
}
