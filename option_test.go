package pcapng

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func encodeOption(order binary.ByteOrder, code uint16, value []byte) []byte {
	out := make([]byte, 4)
	order.PutUint16(out[0:2], code)
	order.PutUint16(out[2:4], uint16(len(value)))
	out = append(out, value...)
	for len(out)%4 != 0 {
		out = append(out, 0)
	}
	return out
}

var _ = Describe("option parsing", func() {
	It("dispatches a recognised option to the callback", func() {
		body := encodeOption(binary.LittleEndian, 2, []byte("eth0"))
		body = append(body, encodeOption(binary.LittleEndian, 0, nil)...)

		var got []byte
		parseOptions(body, LittleEndian, func(code uint16, value []byte) {
			if code == 2 {
				got = value
			}
		})
		Expect(string(got)).Should(Equal("eth0"))
	})

	It("skips opt_comment and custom-data options", func() {
		body := encodeOption(binary.LittleEndian, optComment, []byte("hello"))
		body = append(body, encodeOption(binary.LittleEndian, optCustomStr1, []byte("vendor"))...)
		body = append(body, encodeOption(binary.LittleEndian, 0, nil)...)

		called := false
		parseOptions(body, LittleEndian, func(code uint16, value []byte) {
			called = true
		})
		Expect(called).Should(BeFalse())
	})

	It("stops cleanly at a truncated option without panicking", func() {
		body := []byte{0x02, 0x00, 0x10, 0x00, 'a', 'b'} // declares 16 bytes, has 2

		called := false
		Expect(func() {
			parseOptions(body, LittleEndian, func(code uint16, value []byte) {
				called = true
			})
		}).ShouldNot(Panic())
		Expect(called).Should(BeFalse())
	})

	It("decodes if_tsresol as microseconds by default exponent", func() {
		units, unusable := decodeTsresol(6)
		Expect(unusable).Should(BeFalse())
		Expect(units).Should(Equal(uint32(1_000_000)))
	})

	It("decodes if_tsresol base-2 exponent", func() {
		units, unusable := decodeTsresol(0x80 | 10)
		Expect(unusable).Should(BeFalse())
		Expect(units).Should(Equal(uint32(1024)))
	})

	It("flags a resolution that overflows uint32 as unusable", func() {
		_, unusable := decodeTsresol(20) // 10^20 doesn't fit in a uint32
		Expect(unusable).Should(BeTrue())
	})
})
