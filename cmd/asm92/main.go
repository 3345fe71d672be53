package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/microcode/asm92/asm"
	"github.com/microcode/asm92/micro"
)

func main() {
	var output string
	var mapping string
	var carry int
	var verbose bool

	flag.StringVar(&output, "o", "ram.b", "Assembled binary output file")
	flag.StringVar(&mapping, "m", "mapping.toml", "Instruction mapping configuration")
	flag.IntVar(&carry, "carry", asm.DefaultCarryAdjust, "ALU carry adjustment for back branches")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Usage: asm92 [options] code.asm", os.Args[0])
	}
	input := flag.Arg(0)

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	// The built-in instruction set is always available; the mapping
	// configuration extends or overrides it when present.
	imap := micro.NewMap()
	if conf, err := os.Open(mapping); err == nil {
		err = imap.LoadConfig(conf)
		conf.Close()
		if err != nil {
			log.Fatalf("%v: %v", mapping, err)
		}
	}

	a := &asm.Assembler{Verbose: verbose, CarryAdjust: carry, Map: imap}
	listing, err := a.Assemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	fmt.Printf("Addr.\tByte\tInstr.\n")
	for _, e := range listing.Entries {
		if e.Text != "" {
			fmt.Printf("0x%02X\t0x%02X\t%v\n", e.Addr, e.Byte, e.Text)
		} else {
			fmt.Printf("0x%02X\t0x%02X\n", e.Addr, e.Byte)
		}
	}

	if err = writeImage(output, listing); err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	fmt.Printf("\n%v successfully assembled to %v in %d bytes.\n", input, output, listing.Size())
}

// writeImage writes the binary image, removing the artifact when the write
// fails so no partial output is left behind.
func writeImage(name string, listing *asm.Listing) (err error) {
	ouf, err := os.Create(name)
	if err != nil {
		return
	}

	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	_, err = listing.WriteTo(ouf)
	return
}
