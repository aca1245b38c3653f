package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/packetflux/pcapng"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("usage: %v <input-pcapng>\n", os.Args[0])
		os.Exit(1)
	}

	fh, err := os.Open(os.Args[1])
	if err != nil {
		panic(err)
	}
	defer fh.Close()

	capture := pcapng.Open(fh)

	var blockErr *pcapng.BlockError
	for count := 1; ; count++ {
		pkt, err := capture.Next()
		if err == io.EOF {
			break
		}
		if errors.As(err, &blockErr) {
			fmt.Printf("# packet %v: block error: %v\n", count, err)
			continue
		}
		if err != nil {
			panic(err)
		}

		ifaceDesc := "unknown"
		if pkt.Interface != nil {
			if iface, ok := capture.LookupInterface(*pkt.Interface); ok && iface.Name != "" {
				ifaceDesc = iface.Name
			}
		}
		ts := "no-timestamp"
		if pkt.Timestamp != nil {
			ts = pkt.Timestamp.Format("2006-01-02T15:04:05.000000Z07:00")
		}
		fmt.Printf("packet %v: iface=%s ts=%s len=%d\n", count, ifaceDesc, ts, len(pkt.Data))
	}
}
