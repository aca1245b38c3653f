package pcapng

import (
	"bytes"
	"encoding/binary"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func idbBody(order binary.ByteOrder, linkType uint16, snapLen uint32) []byte {
	body := make([]byte, 8)
	order.PutUint16(body[0:2], linkType)
	order.PutUint32(body[4:8], snapLen)
	return body
}

func epbBody(order binary.ByteOrder, ifaceIdx uint32, hi, lo uint32, data []byte) []byte {
	body := make([]byte, 20)
	order.PutUint32(body[0:4], ifaceIdx)
	order.PutUint32(body[4:8], hi)
	order.PutUint32(body[8:12], lo)
	order.PutUint32(body[12:16], uint32(len(data)))
	order.PutUint32(body[16:20], uint32(len(data)))
	return append(body, data...)
}

var _ = Describe("Capture", func() {
	It("decodes a little-endian section with an interface and two packets", func() {
		var buf bytes.Buffer
		buf.Write(littleEndianSHB())
		buf.Write(buildBlock(binary.LittleEndian, blockTypeInterfaceDescr, idbBody(binary.LittleEndian, 1, 65535)))
		buf.Write(buildBlock(binary.LittleEndian, blockTypeEnhancedPacket, epbBody(binary.LittleEndian, 0, 0, 1_000_000, []byte("first"))))
		buf.Write(buildBlock(binary.LittleEndian, blockTypeEnhancedPacket, epbBody(binary.LittleEndian, 0, 0, 2_000_000, []byte("second"))))

		capture := Open(&buf)

		pkt, err := capture.Next()
		Expect(err).Should(BeNil())
		Expect(string(pkt.Data)).Should(Equal("first"))
		Expect(pkt.Timestamp).ShouldNot(BeNil())
		Expect(pkt.Timestamp.Unix()).Should(Equal(int64(1)))

		pkt, err = capture.Next()
		Expect(err).Should(BeNil())
		Expect(string(pkt.Data)).Should(Equal("second"))

		_, err = capture.Next()
		Expect(err).Should(Equal(io.EOF))
	})

	It("scopes interface_id to the section that declared it", func() {
		var buf bytes.Buffer
		buf.Write(littleEndianSHB())
		buf.Write(buildBlock(binary.LittleEndian, blockTypeInterfaceDescr, idbBody(binary.LittleEndian, 1, 0)))
		buf.Write(buildBlock(binary.LittleEndian, blockTypeEnhancedPacket, epbBody(binary.LittleEndian, 0, 0, 0, []byte("a"))))
		buf.Write(littleEndianSHB())
		buf.Write(buildBlock(binary.LittleEndian, blockTypeInterfaceDescr, idbBody(binary.LittleEndian, 105, 0)))
		buf.Write(buildBlock(binary.LittleEndian, blockTypeEnhancedPacket, epbBody(binary.LittleEndian, 0, 0, 0, []byte("b"))))

		capture := Open(&buf)

		first, err := capture.Next()
		Expect(err).Should(BeNil())
		Expect(first.Interface.Section).Should(Equal(0))

		second, err := capture.Next()
		Expect(err).Should(BeNil())
		Expect(second.Interface.Section).Should(Equal(1))

		iface, ok := capture.LookupInterface(*second.Interface)
		Expect(ok).Should(BeTrue())
		Expect(iface.LinkType).Should(Equal(uint16(105)))
	})

	It("continues past a packet whose captured_len overruns the block, still delivering the next one", func() {
		var buf bytes.Buffer
		buf.Write(littleEndianSHB())
		buf.Write(buildBlock(binary.LittleEndian, blockTypeInterfaceDescr, idbBody(binary.LittleEndian, 1, 0)))

		badBody := make([]byte, 20)
		binary.LittleEndian.PutUint32(badBody[12:16], 9999)
		buf.Write(buildBlock(binary.LittleEndian, blockTypeEnhancedPacket, badBody))
		buf.Write(buildBlock(binary.LittleEndian, blockTypeEnhancedPacket, epbBody(binary.LittleEndian, 0, 0, 0, []byte("ok"))))

		capture := Open(&buf)
		_, err := capture.Next()
		Expect(err).ShouldNot(BeNil())
		var blockErr *BlockError
		Expect(err).Should(BeAssignableToTypeOf(blockErr))

		pkt, err := capture.Next()
		Expect(err).Should(BeNil())
		Expect(string(pkt.Data)).Should(Equal("ok"))
	})

	It("reports ErrDidntStartWithSHB when the stream opens with a non-SHB block", func() {
		var buf bytes.Buffer
		buf.Write(buildBlock(binary.LittleEndian, blockTypeInterfaceDescr, idbBody(binary.LittleEndian, 1, 0)))

		capture := Open(&buf)
		_, err := capture.Next()
		Expect(err).Should(Equal(ErrDidntStartWithSHB))
	})

	It("goes dead after a corrupted trailing length, returning io.EOF from then on", func() {
		var buf bytes.Buffer
		buf.Write(littleEndianSHB())
		corrupt := buildBlock(binary.LittleEndian, blockTypeInterfaceDescr, idbBody(binary.LittleEndian, 1, 0))
		corrupt[len(corrupt)-1] ^= 0xFF

		buf.Write(corrupt)

		capture := Open(&buf)
		_, err := capture.Next()
		Expect(err).ShouldNot(BeNil())
		Expect(err).ShouldNot(Equal(io.EOF))

		_, err = capture.Next()
		Expect(err).Should(Equal(io.EOF))
	})
})
