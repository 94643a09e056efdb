package rootcalc

import "strconv"

// UnsupportedOperationError is an error indicating an operator that cannot be
// applied. It implements InputError.
type UnsupportedOperationError struct {
	// Col is the position of the operator in the postfix string, or 0 if the
	// error came from Apply.
	Col int
	// Operator is the operator that was not understood.
	Operator string
}

func (err *UnsupportedOperationError) Error() string {
	return errpos(err.Col, "unsupported operator "+strconv.Quote(err.Operator))
}

func (err *UnsupportedOperationError) Pos() int {
	return err.Col
}

// StackUnderflowError is an error indicating that an operand was needed but
// the operand stack was empty, e.g. for "+" or "1+". It implements InputError.
type StackUnderflowError struct {
	// Col is the position in the postfix string of the operator that needed
	// the operand, or one past the end if the expression produced no value.
	Col int
	// Operator is the operator missing an operand. It is empty if the
	// expression produced no value at all.
	Operator string
}

func (err *StackUnderflowError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "stack underflow: no value")
	}
	return errpos(err.Col, "stack underflow: missing operand for "+strconv.Quote(err.Operator))
}

func (err *StackUnderflowError) Pos() int {
	return err.Col
}

// ExcessOperandsError is an error indicating that a postfix expression left
// more than one value on the operand stack, e.g. for "(1)(2)". It implements
// InputError.
type ExcessOperandsError struct {
	// Col is one past the end of the postfix string.
	Col int
	// Count is the number of values left on the stack.
	Count int
}

func (err *ExcessOperandsError) Error() string {
	return errpos(err.Col, strconv.Itoa(err.Count)+" values left on stack")
}

func (err *ExcessOperandsError) Pos() int {
	return err.Col
}

// NumberFormatError is an error indicating a numeric token that does not
// parse, e.g. "1.2.3". It implements InputError and unwraps to the
// *strconv.NumError describing the failure.
type NumberFormatError struct {
	// Col is the position of the token in the postfix string.
	Col int
	// Text is the token.
	Text string
	// Err is the parse error.
	Err error
}

func (err *NumberFormatError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberFormatError) Pos() int {
	return err.Col
}

func (err *NumberFormatError) Unwrap() error {
	return err.Err
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the unmatched opening bracket, if any.
	Left string
	// Right is the unmatched closing bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// LexError indicates a rune that cannot start a token. It implements
// InputError.
type LexError struct {
	// Text is the invalid rune.
	Text string
	// Col is the position of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	return "invalid token at column " + strconv.Itoa(err.Col) + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune position of the token that caused the
	// error. Errors from InfixToPostfix count in the infix expression; errors
	// from EvaluatePostfix count in the postfix string.
	Pos() int
}

var (
	_ InputError = (*UnsupportedOperationError)(nil)
	_ InputError = (*StackUnderflowError)(nil)
	_ InputError = (*ExcessOperandsError)(nil)
	_ InputError = (*NumberFormatError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*LexError)(nil)
)
