package rootcalc

import (
	"math"
	"strconv"
)

// Op is a binary arithmetic operator.
type Op int8

const (
	opNone Op = iota

	Add      // a + b
	Subtract // a - b
	Multiply // a * b
	Divide   // a / b
	Power    // a ^ b
	Root     // a r b, the a-th root of b
)

// opInfo is the static metadata of an operator.
type opInfo struct {
	// glyph is the operator's canonical spelling in postfix output.
	glyph rune
	// prec is the precedence value. Higher is more binding.
	prec int
	// right indicates right-associativity.
	right bool
}

var optab = [...]opInfo{
	opNone:   {0, -1, false},
	Add:      {'+', 1, false},
	Subtract: {'-', 1, false},
	Multiply: {'*', 2, false},
	Divide:   {'/', 2, false},
	Power:    {'^', 3, false},
	Root:     {'r', 3, false},
}

func (op Op) valid() bool {
	return op > opNone && int(op) < len(optab)
}

// String returns the operator's glyph.
func (op Op) String() string {
	if !op.valid() {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return string(optab[op].glyph)
}

// ParseOp returns the operator spelled by r. × and ÷ are accepted as
// Multiply and Divide.
func ParseOp(r rune) (Op, bool) {
	switch r {
	case '+':
		return Add, true
	case '-':
		return Subtract, true
	case '*', '×':
		return Multiply, true
	case '/', '÷':
		return Divide, true
	case '^':
		return Power, true
	case 'r':
		return Root, true
	default:
		return opNone, false
	}
}

// Precedence returns the binding strength of op: 1 for Add and Subtract, 2
// for Multiply and Divide, 3 for Power and Root. Anything else is -1.
func Precedence(op Op) int {
	if !op.valid() {
		return -1
	}
	return optab[op].prec
}

// yields reports whether op, sitting on the operator stack, must be emitted
// before next is pushed.
func (op Op) yields(next Op) bool {
	p, q := Precedence(op), Precedence(next)
	if p < 0 {
		return false
	}
	return p > q || p == q && !optab[next].right
}

// Apply computes a op b. Division by zero and roots of negative numbers
// produce infinities and NaNs rather than errors. For Root, a is the degree
// and b the radicand: the result is b^(1/a).
func Apply(a, b float64, op Op) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		return a / b, nil
	case Power:
		return math.Pow(a, b), nil
	case Root:
		return math.Pow(b, 1/a), nil
	default:
		return 0, &UnsupportedOperationError{Operator: op.String()}
	}
}
