package asm

import (
	"errors"

	"github.com/microcode/asm92/micro"
	"github.com/microcode/asm92/translate"
)

var f = translate.From

var (
	ErrDirectiveUnknown = errors.New(f("invalid assembler directive"))
	ErrDirectiveSyntax  = errors.New(f("invalid assembler directive assignment"))
	ErrCommaLeading     = errors.New(f("leading comma in instruction"))
	ErrOperandChar      = errors.New(f("invalid operand character"))
	ErrBranchTarget     = errors.New(f("operand is neither a valid label nor a valid immediate address"))
	ErrExprRange        = errors.New(f("expression value does not fit a byte"))
)

// ErrSyntax wraps any assembly error with the offending source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrUnmapped reports an instruction code with no mapping table entry.
type ErrUnmapped micro.Code

func (err ErrUnmapped) Error() string {
	return f("instruction code %#08x cannot be mapped", uint32(err))
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
