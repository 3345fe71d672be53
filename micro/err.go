package micro

import (
	"errors"

	"github.com/microcode/asm92/translate"
)

var f = translate.From

var (
	ErrMnemonicInvalid = errors.New(f("mnemonic invalid"))
	ErrOperandInvalid  = errors.New(f("operand type invalid"))
	ErrPatternComma    = errors.New(f("leading comma"))
	ErrHexDigit        = errors.New(f("invalid hexadecimal digit"))
)

// ErrMapping reports a rejected mapping configuration entry.
type ErrMapping struct {
	Pattern string
	Err     error
}

func (err ErrMapping) Error() string {
	return f("mapping '%v' %v", err.Pattern, err.Err)
}

func (err ErrMapping) Unwrap() error {
	return err.Err
}
