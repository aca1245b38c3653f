package pcapng

import (
	"bytes"
	"encoding/binary"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// buildBlock wraps body in a complete wire-format block: type, length,
// body, trailing length.
func buildBlock(order binary.ByteOrder, blockType uint32, body []byte) []byte {
	total := 12 + len(body)
	out := make([]byte, 4)
	order.PutUint32(out, blockType)
	lenBuf := make([]byte, 4)
	order.PutUint32(lenBuf, uint32(total))
	out = append(out, lenBuf...)
	out = append(out, body...)
	out = append(out, lenBuf...)
	return out
}

func shbBody(order binary.ByteOrder) []byte {
	body := make([]byte, 12)
	copy(body[0:4], []byte{0, 1, 0, 0})
	order.PutUint64(body[4:12], uint64(0xFFFFFFFFFFFFFFFF))
	return body
}

func littleEndianSHB() []byte {
	magic := []byte{0x4d, 0x3c, 0x2b, 0x1a}
	body := append(append([]byte{}, magic...), shbBody(binary.LittleEndian)...)
	return buildBlock(binary.LittleEndian, blockTypeSectionHeader, body)
}

var _ = Describe("blockReader", func() {
	It("delivers successive blocks and then a clean end of stream", func() {
		var buf bytes.Buffer
		buf.Write(littleEndianSHB())
		buf.Write(buildBlock(binary.LittleEndian, blockTypeInterfaceDescr, make([]byte, 8)))

		r := newBlockReader(&buf)
		res, ok, err := r.tryNext()
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
		Expect(res.block).Should(BeAssignableToTypeOf(&SectionHeaderBlock{}))

		res, ok, err = r.tryNext()
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
		Expect(res.block).Should(BeAssignableToTypeOf(&InterfaceDescriptionBlock{}))

		_, ok, err = r.tryNext()
		Expect(ok).Should(BeFalse())
		Expect(err).Should(BeNil())
	})

	It("goes dead after a framing error and then reports io.EOF forever", func() {
		bad := buildBlock(binary.LittleEndian, blockTypeSectionHeader, shbBody(binary.LittleEndian))
		bad[8], bad[9], bad[10], bad[11] = 0x01, 0x02, 0x03, 0x04 // corrupt the magic

		r := newBlockReader(bytes.NewReader(bad))
		_, ok, err := r.tryNext()
		Expect(ok).Should(BeFalse())
		Expect(err).ShouldNot(BeNil())

		_, ok, err = r.tryNext()
		Expect(ok).Should(BeFalse())
		Expect(err).Should(Equal(io.EOF))
	})

	It("remains usable after a non-fatal BlockError", func() {
		var buf bytes.Buffer
		badEPB := buildBlock(binary.LittleEndian, blockTypeEnhancedPacket, make([]byte, 4)) // too short for fixed fields
		buf.Write(badEPB)
		buf.Write(buildBlock(binary.LittleEndian, blockTypeInterfaceDescr, make([]byte, 8)))

		r := newBlockReader(&buf)
		_, ok, err := r.tryNext()
		Expect(ok).Should(BeTrue())
		Expect(err).ShouldNot(BeNil())

		res, ok, err := r.tryNext()
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
		Expect(res.block).Should(BeAssignableToTypeOf(&InterfaceDescriptionBlock{}))
	})
})
