package asm

import (
	"regexp"
	"strings"

	"github.com/microcode/asm92/micro"
)

type lineKind int

const (
	lineBlank = lineKind(iota)
	lineDirective
	lineLabel
	lineInstruction
)

// Jump and branch mnemonics. The relative family starts with 'B'; JMP and
// JSR take absolute addresses.
var jumpMnemonics = map[string]bool{
	"JMP": true,
	"JSR": true,
	"BR":  true,
	"BRZ": true,
	"BRN": true,
}

var labelPattern = regexp.MustCompile(`^(\w+):$`)

// statement is one classified source line.
type statement struct {
	kind       lineKind
	label      string // label name, kind == lineLabel
	directive  string // directive name, kind == lineDirective
	value      byte   // directive value
	mnemonic   string // instruction mnemonic, upper-cased
	rawOperand string // raw jump/branch operand text
	jump       bool   // mnemonic is a jump or branch
	ops        [2]byte
	optype     [2]micro.OperandType
	nops       int
}

// classify trims a source line, drops the inline comment, expands $()
// evaluations, and classifies what remains.
func (asm *Assembler) classify(line string, lineno int) (st statement, err error) {
	line = strings.TrimSpace(line)
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	if line == "" {
		return
	}

	line, err = asm.expand(line, lineno)
	if err != nil {
		return
	}

	if line[0] == '@' {
		return asm.classifyDirective(line)
	}

	if m := labelPattern.FindStringSubmatch(line); m != nil {
		st.kind = lineLabel
		st.label = m[1]
		return
	}

	return asm.classifyInstruction(line)
}

// classifyDirective parses a '@name=value' line. The value is one or two
// hexadecimal digits.
func (asm *Assembler) classifyDirective(line string) (st statement, err error) {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		err = ErrDirectiveSyntax
		return
	}

	st.kind = lineDirective
	st.directive = strings.TrimSpace(line[1:i])
	if _, ok := asm.Directives[st.directive]; !ok {
		err = ErrDirectiveUnknown
		return
	}

	st.value, err = micro.ParseHexByte(strings.TrimSpace(line[i+1:]))
	return
}

// classifyInstruction reads the mnemonic and up to two operands. A '$'
// prefix marks a direct-address operand; bare hex digits accumulate an
// immediate, overflowing a byte silently.
func (asm *Assembler) classifyInstruction(line string) (st statement, err error) {
	st.kind = lineInstruction

	i := strings.IndexAny(line, " \t")
	if i < 0 {
		i = len(line)
	}
	st.mnemonic = strings.ToUpper(line[:i])
	rest := strings.TrimSpace(line[i:])

	// A jump or branch operand is interpreted both as a label name and as a
	// literal address, so its raw text is kept for the resolving pass.
	if jumpMnemonics[st.mnemonic] {
		st.jump = true
		st.nops = 1
		st.optype[0] = micro.OPERAND_IMMEDIATE
		st.rawOperand = rest
		return
	}

	started := false
	for n := 0; n < len(rest); n++ {
		c := rest[n]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch {
		case c == ' ' || c == '\t':
		case c == '$':
			st.optype[st.nops] = micro.OPERAND_DIRECT
			started = true
		case c == ',':
			if st.nops != 0 || !started {
				err = ErrCommaLeading
				return
			}
			st.nops++
			started = false
		case c >= '0' && c <= '9' || c >= 'A' && c <= 'F':
			v := c - '0'
			if c >= 'A' {
				v = c - 'A' + 10
			}
			st.ops[st.nops] = st.ops[st.nops]<<4 | v
			if st.optype[st.nops] == micro.OPERAND_NONE {
				st.optype[st.nops] = micro.OPERAND_IMMEDIATE
			}
			started = true
		default:
			err = ErrOperandChar
			return
		}
	}

	switch {
	case st.optype[1] != micro.OPERAND_NONE:
		st.nops = 2
	case st.optype[0] != micro.OPERAND_NONE:
		st.nops = 1
	default:
		st.nops = 0
	}

	return
}
