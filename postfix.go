package rootcalc

import "strings"

// InfixToPostfix converts an infix expression to postfix notation using the
// shunting-yard algorithm. Tokens in the result are separated by single
// spaces, and a non-empty result always ends with a space. Runs of digits and
// decimal points become numbers without checking their syntax; that happens
// in EvaluatePostfix.
//
// Whitespace in the input is ignored. Mismatched brackets produce a
// *BracketError, and runes other than digits, '.', brackets, and Operators
// produce a *LexError.
func InfixToPostfix(expression string) (string, error) {
	scan := lex(strings.NewReader(expression))
	var out strings.Builder
	emit := func(text string) {
		out.WriteString(text)
		out.WriteByte(' ')
	}
	var stack []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return "", err
		}
		switch tok.kind {
		case tokenNum:
			emit(tok.text)
		case tokenOpen:
			stack = append(stack, tok)
		case tokenClose:
			for {
				if len(stack) == 0 {
					return "", &BracketError{Col: tok.pos, Right: tok.text}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenOpen {
					break
				}
				emit(top.text)
			}
		case tokenOp:
			for len(stack) > 0 && stack[len(stack)-1].op.yields(tok.op) {
				emit(stack[len(stack)-1].text)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tokenEOF:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenOpen {
					return "", &BracketError{Col: top.pos, Left: top.text}
				}
				emit(top.text)
			}
			return out.String(), nil
		default:
			panic("rootcalc: unknown token: " + tok.String())
		}
	}
}
