package asm

import (
	"fmt"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var exprPattern = regexp.MustCompile(`\$\(([^)]*)\)`)

// expand substitutes every $() evaluation in a line with its value,
// formatted as two hexadecimal digits.
func (asm *Assembler) expand(line string, lineno int) (out string, err error) {
	out = exprPattern.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.evalExpr(str[2:len(str)-1], lineno)
		if _err != nil {
			err = _err
			return str
		}
		return fmt.Sprintf("%02X", value)
	})

	return
}

// evalExpr does assembly-time $(...) evaluations. Directive values and the
// current line number are predeclared.
func (asm *Assembler) evalExpr(expr string, lineno int) (value byte, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for name, val := range asm.Directives {
		pred[name] = starlark.MakeInt(int(val))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrExpression(expr)
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	rcInt, ok := rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	v64, ok := rcInt.Int64()
	if !ok || v64 < 0 || v64 > 0xff {
		err = ErrExprRange
		return
	}
	value = byte(v64)

	return
}
