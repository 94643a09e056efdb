// Package rootcalc implements the arithmetic core of a pocket calculator.
//
// Expressions are written the way they are typed on a keypad: numbers, the
// binary operators + - * / ^ r, and parentheses. "a r b" is the a-th root of
// b, so "2r8" is the square root of 8. Every operator is left-associative,
// including ^ and r, so "2^3^2" is 64.
//
// Evaluation happens in two steps. InfixToPostfix converts the expression to
// a space-separated postfix string using the shunting-yard algorithm, and
// EvaluatePostfix runs that string on an operand stack. Evaluate does both.
// All state is local to a call, so every function in the package is safe for
// concurrent use.
package rootcalc
