package asm

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/microcode/asm92/micro"
)

// Assembler drives the two-pass translation of an instruction listing into
// its binary encoding. The zero value assembles with the built-in
// instruction map and the default carry adjustment.
type Assembler struct {
	Verbose     bool      // If set, verbosely logs each line scanned.
	CarryAdjust int       // Back-branch ALU carry adjustment; 0 selects DefaultCarryAdjust.
	Map         micro.Map // Instruction mapping table; nil selects micro.NewMap().

	Labels     map[string]byte // Label addresses, populated during the first pass.
	Directives map[string]byte // Directive values; base_addr defaults to 0.

	baseSeen bool
}

// Assemble scans the source twice: the first pass records labels and applies
// directives while tracking the program address, the second resolves every
// operand and emits the output bytes in program-address order. Any error
// aborts the run, wrapped with the offending line number and text.
func (asm *Assembler) Assemble(input io.Reader) (listing *Listing, err error) {
	if asm.Map == nil {
		asm.Map = micro.NewMap()
	}
	asm.Labels = make(map[string]byte, 16)
	asm.Directives = map[string]byte{"base_addr": 0}
	asm.baseSeen = false

	var lines []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return
	}

	err = asm.pass(lines, nil)
	if err != nil {
		return
	}

	listing = &Listing{Base: asm.Directives["base_addr"]}
	err = asm.pass(lines, listing)
	if err != nil {
		listing = nil
	}

	return
}

// pass scans every line once. With a nil listing it is the label-discovery
// pass; otherwise it resolves and emits.
func (asm *Assembler) pass(lines []string, listing *Listing) (err error) {
	addr := 0
	if listing != nil && asm.baseSeen {
		// The base offset detected during the first pass is reapplied as
		// the starting offset of the emitting pass.
		addr = int(asm.Directives["base_addr"])
	}

	for n, line := range lines {
		lineno := n + 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		addr, err = asm.scanLine(line, lineno, addr, listing)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(line), Err: err}
			return
		}
	}

	return
}

// scanLine consumes one source line, returning the program address after it.
func (asm *Assembler) scanLine(line string, lineno, addr int, listing *Listing) (next int, err error) {
	next = addr

	st, err := asm.classify(line, lineno)
	if err != nil {
		return
	}

	switch st.kind {
	case lineBlank:
		return

	case lineDirective:
		// Directives are applied only on the first pass; re-applying on
		// the emitting pass is deliberately suppressed.
		if listing == nil {
			asm.Directives[st.directive] = st.value
			if st.directive == "base_addr" {
				next += int(st.value)
				asm.baseSeen = true
			}
		}
		return

	case lineLabel:
		// A later definition silently overwrites an earlier one.
		if listing == nil {
			asm.Labels[st.label] = byte(next)
		}
		return
	}

	if listing != nil && st.jump {
		st.ops[0], err = asm.resolveTarget(st.mnemonic, st.rawOperand, next)
		if err != nil {
			return
		}
	}

	code, err := micro.MakeCode(st.mnemonic, st.optype[0], st.optype[1])
	if err != nil {
		return
	}

	mpc, ok := asm.Map.Lookup(code)
	if !ok {
		err = ErrUnmapped(code)
		return
	}

	if listing != nil {
		listing.Entries = append(listing.Entries,
			Entry{Addr: next, Byte: mpc, LineNo: lineno, Text: strings.TrimSpace(line)})
	}
	next++

	for n := 0; n < st.nops; n++ {
		if listing != nil {
			listing.Entries = append(listing.Entries,
				Entry{Addr: next, Byte: st.ops[n], LineNo: lineno})
		}
		next++
	}

	return
}
