package rootcalc

// EvalOption is an option for evaluating postfix expressions.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

// evalctx holds the configuration of one evaluation.
type evalctx struct {
	// lenient substitutes 0 for a missing left operand and accepts extra
	// values left on the stack.
	lenient bool
}

type lenientopt bool

// Lenient relaxes operand checking. An operator with only one operand
// available uses 0 as its left operand, so "-5" is -5 and "1+" is 1, and when
// several values remain at the end, the result is the most recently pushed
// one. Without Lenient, both cases are errors.
func Lenient() EvalOption {
	return lenientopt(true)
}

func (o lenientopt) evalOption(c evalctx) evalctx {
	c.lenient = bool(o)
	return c
}
