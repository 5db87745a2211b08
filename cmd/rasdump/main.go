// Command rasdump encodes a sample GatekeeperRequest and prints it as a
// hex dump Wireshark can import directly ("Import from Hex Dump"). It
// is a demo harness, not part of the codec core: nothing under lib/
// depends on it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ud84/h225ras/lib/bitio"
	"github.com/ud84/h225ras/lib/h225"
	"github.com/ud84/h225ras/lib/per"
)

func main() {
	var (
		seqNum = flag.Int64("seq", 1, "requestSeqNum for the sample GRQ")
		alias  = flag.String("alias", "", "optional endpointAlias for the sample GRQ")
		out    = flag.String("out", "", "optional file path to also write the raw bytes to")
	)
	flag.Parse()

	grq := &h225.GatekeeperRequest{
		RequestSeqNum:      *seqNum,
		ProtocolIdentifier: per.ObjectIdentifier{0, 0, 8, 2250, 0, 7},
	}
	if *alias != "" {
		grq.EndpointAlias = alias
	}

	w := bitio.NewBitWriter()
	if err := h225.EncodeRasPDU(w, grq); err != nil {
		fmt.Fprintln(os.Stderr, "encode failed:", err)
		os.Exit(1)
	}
	data := w.Data()

	fmt.Println("--- Copy this Hex to Wireshark (Import from Hex Dump) ---")
	fmt.Print("000000 ")
	for _, b := range data {
		fmt.Printf("%02x ", b)
	}
	fmt.Println()
	fmt.Println("-----------------------------------------------------------")
	fmt.Printf("Generated GatekeeperRequest sample (%d bytes)\n", len(data))

	if *out != "" {
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "failed writing output file:", err)
			os.Exit(1)
		}
	}
}
