package calcx

import "strconv"

// InputError is an error with source position information. Every error this
// package returns for invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column at which the error was detected,
	// or 0 when the input ended where an operand was expected.
	Pos() int
}

// errpos formats a position-tagged error message.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// LexError indicates an unrecognised character or a malformed number
// literal.
type LexError struct {
	Col int
	Msg string
}

func (err *LexError) Error() string { return errpos(err.Col, err.Msg) }
func (err *LexError) Pos() int      { return err.Col }

// ParseError indicates an unmatched parenthesis, a missing operand, or an
// unexpected token.
type ParseError struct {
	Col int
	Msg string
}

func (err *ParseError) Error() string { return errpos(err.Col, err.Msg) }
func (err *ParseError) Pos() int      { return err.Col }

// UnknownVariableError indicates a symbol lookup that failed because the
// name is not bound and no assignment follows it.
type UnknownVariableError struct {
	Col  int
	Name string
}

func (err *UnknownVariableError) Error() string {
	return errpos(err.Col, "unknown variable: "+strconv.Quote(err.Name))
}
func (err *UnknownVariableError) Pos() int { return err.Col }

// DivByZeroError indicates division by exact zero.
type DivByZeroError struct {
	Col int
}

func (err *DivByZeroError) Error() string { return errpos(err.Col, "division by zero") }
func (err *DivByZeroError) Pos() int      { return err.Col }

// ModByZeroError indicates modulus by exact zero.
type ModByZeroError struct {
	Col int
}

func (err *ModByZeroError) Error() string { return errpos(err.Col, "modulus by zero") }
func (err *ModByZeroError) Pos() int      { return err.Col }

// ModOnFloatsError indicates that % was applied with a Floating operand.
// Modulus is defined only on integers.
type ModOnFloatsError struct {
	Col int
}

func (err *ModOnFloatsError) Error() string {
	return errpos(err.Col, "modulus is not defined on floating-point operands")
}
func (err *ModOnFloatsError) Pos() int { return err.Col }

// IncompatibleTypesError is returned in place of undefined behavior when
// the evaluator meets a binary operator or function kind it has no rule for.
// Lex produces no such tokens, so this is unreachable in practice.
type IncompatibleTypesError struct {
	Col int
	Op  string
}

func (err *IncompatibleTypesError) Error() string {
	return errpos(err.Col, "incompatible operand types for "+err.Op)
}
func (err *IncompatibleTypesError) Pos() int { return err.Col }

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*UnknownVariableError)(nil)
	_ InputError = (*DivByZeroError)(nil)
	_ InputError = (*ModByZeroError)(nil)
	_ InputError = (*ModOnFloatsError)(nil)
	_ InputError = (*IncompatibleTypesError)(nil)
)
