package rootcalc

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Evaluate computes the value of an infix expression. It is the composition
// of InfixToPostfix and EvaluatePostfix. Arithmetic edge cases are not
// errors: "1/0" is +Inf and "0/0" is NaN.
func Evaluate(expression string, opts ...EvalOption) (float64, error) {
	postfix, err := InfixToPostfix(expression)
	if err != nil {
		return 0, err
	}
	return EvaluatePostfix(postfix, opts...)
}

// EvaluatePostfix computes the value of a postfix expression of
// space-separated tokens. Tokens beginning with a digit or '.' are numbers;
// any other token names the operator spelled by its first rune.
func EvaluatePostfix(postfix string, opts ...EvalOption) (float64, error) {
	var e evaluator
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		e.cfg = opt.evalOption(e.cfg)
	}
	col := 1
	for _, tok := range strings.Split(postfix, " ") {
		if tok != "" {
			if err := e.step(tok, col); err != nil {
				return 0, err
			}
		}
		col += utf8.RuneCountInString(tok) + 1
	}
	return e.result(utf8.RuneCountInString(postfix) + 1)
}

// evaluator is the operand stack of one postfix evaluation.
type evaluator struct {
	stack []float64
	cfg   evalctx
}

func (e *evaluator) push(v float64) {
	e.stack = append(e.stack, v)
}

// pop removes the top from the stack and returns it. ok is false if the stack
// is empty.
func (e *evaluator) pop() (v float64, ok bool) {
	if len(e.stack) == 0 {
		return 0, false
	}
	v = e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v, true
}

// step applies one postfix token at position col.
func (e *evaluator) step(tok string, col int) error {
	if c := tok[0]; '0' <= c && c <= '9' || c == '.' {
		v, err := strconv.ParseFloat(tok, 64)
		// Out of range literals are ±Inf or 0, like any other overflow.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return &NumberFormatError{Col: col, Text: tok, Err: err}
		}
		e.push(v)
		return nil
	}
	r, _ := utf8.DecodeRuneInString(tok)
	op, ok := ParseOp(r)
	if !ok {
		return &UnsupportedOperationError{Col: col, Operator: string(r)}
	}
	b, ok := e.pop()
	if !ok {
		return &StackUnderflowError{Col: col, Operator: op.String()}
	}
	a, ok := e.pop()
	if !ok && !e.cfg.lenient {
		return &StackUnderflowError{Col: col, Operator: op.String()}
	}
	v, err := Apply(a, b, op)
	if err != nil {
		return err
	}
	e.push(v)
	return nil
}

// result returns the final value of the evaluation. end is the position just
// past the postfix string.
func (e *evaluator) result(end int) (float64, error) {
	switch len(e.stack) {
	case 0:
		return 0, &StackUnderflowError{Col: end}
	case 1:
		return e.stack[0], nil
	default:
		if e.cfg.lenient {
			return e.stack[len(e.stack)-1], nil
		}
		return 0, &ExcessOperandsError{Col: end, Count: len(e.stack)}
	}
}

// FormatResult formats a value so that Evaluate reads it back unchanged, as
// long as it is finite and not negative. Infinities format as "+Inf" and
// "-Inf", and NaN as "NaN".
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
