package micro

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// ParseHexByte accumulates a byte from hexadecimal digits, shifting the
// running value left four bits per digit. Interior spaces are skipped; any
// other character is an error. Digits beyond what fits a byte silently
// overflow.
func ParseHexByte(s string) (value byte, err error) {
	for _, c := range []byte(strings.ToUpper(s)) {
		switch {
		case c == ' ':
		case c >= '0' && c <= '9':
			value = value<<4 | (c - '0')
		case c >= 'A' && c <= 'F':
			value = value<<4 | (c - 'A' + 10)
		default:
			err = ErrHexDigit
			return
		}
	}

	return
}

// ParsePattern converts a configuration instruction pattern such as
// "ADD A, X" into its instruction code. The letters A and B name
// direct-address operands, X an immediate; a comma separates the first
// operand from the second.
func ParsePattern(pattern string) (code Code, err error) {
	pattern = strings.ToUpper(strings.TrimSpace(pattern))

	i := strings.IndexByte(pattern, ' ')
	if i < 0 {
		i = len(pattern)
	}
	mnemonic := pattern[:i]

	var optype [2]OperandType
	nops := 0
	for ; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == ' ':
		case c == ',':
			if nops != 0 {
				err = ErrPatternComma
				return
			}
			nops++
		case c == 'A' || c == 'B':
			optype[nops] = OPERAND_DIRECT
		case c == 'X':
			optype[nops] = OPERAND_IMMEDIATE
		default:
			err = ErrOperandInvalid
			return
		}
	}

	return MakeCode(mnemonic, optype[0], optype[1])
}

// LoadConfig merges instruction mappings from a TOML document into the Map.
// Each entry of the [instructions] table maps an instruction pattern to the
// MPC address (one or two hex digits) of its micro-routine, overriding any
// built-in entry with the same pattern.
func (m Map) LoadConfig(r io.Reader) (err error) {
	var conf struct {
		Instructions map[string]string `toml:"instructions"`
	}

	_, err = toml.NewDecoder(r).Decode(&conf)
	if err != nil {
		return
	}

	for pattern, addr := range conf.Instructions {
		var code Code
		var mpc byte
		code, err = ParsePattern(pattern)
		if err == nil {
			mpc, err = ParseHexByte(addr)
		}
		if err != nil {
			err = &ErrMapping{Pattern: pattern, Err: err}
			return
		}
		m[code] = mpc
	}

	return
}
