// Package keypad models the screen of a keypad calculator: an expression
// being typed and the result of the last evaluation, both driven by button
// presses.
package keypad

import (
	"strconv"
	"strings"

	"github.com/zephyrtronium/rootcalc"
)

// Special keys.
const (
	KeyClear  = "AC"
	KeyEquals = "="
)

// ErrorText is the result shown after a failed evaluation.
const ErrorText = "Error"

var layout = [][]string{
	{KeyClear, "r", "^", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", "(", ")", KeyEquals},
}

// Layout returns the rows of buttons on the keypad, top to bottom.
func Layout() [][]string {
	rows := make([][]string, len(layout))
	for i, row := range layout {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}

// Session is the state of one calculator screen. The zero value is not
// ready for use; create sessions with New. A Session is not safe for
// concurrent use.
type Session struct {
	expr   string
	result string
	err    error
	opts   []rootcalc.EvalOption
}

// New creates a session with an empty expression and a result of "0". The
// options are used for every evaluation.
func New(opts ...rootcalc.EvalOption) *Session {
	return &Session{result: "0", opts: opts}
}

// Expression returns the expression typed so far.
func (s *Session) Expression() string {
	return s.expr
}

// Result returns the displayed result.
func (s *Session) Result() string {
	return s.result
}

// Err returns the error from the last evaluation, if it failed.
func (s *Session) Err() error {
	return s.err
}

// Press handles one button press. Evaluation failures are not returned; they
// show as ErrorText and are available from Err. The only error Press returns
// is an *UnknownKeyError.
func (s *Session) Press(key string) error {
	switch key {
	case KeyClear:
		s.expr = ""
		s.result = "0"
		s.err = nil
	case KeyEquals:
		v, err := rootcalc.Evaluate(s.expr, s.opts...)
		s.err = err
		if err != nil {
			s.result = ErrorText
			s.expr = ""
			return nil
		}
		s.result = rootcalc.FormatResult(v)
		s.expr = s.result
	case ".":
		// A dot must follow a digit, once per number.
		if n := s.number(); n == "" || strings.Contains(n, ".") {
			return nil
		}
		s.expr += key
	case "0":
		// No leading zeros.
		if s.number() == "0" {
			return nil
		}
		s.expr += key
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if s.number() == "0" {
			s.expr = s.expr[:len(s.expr)-1]
		}
		s.expr += key
	case "(", ")", "+", "-", "*", "/", "^", "r":
		s.expr += key
	default:
		return &UnknownKeyError{Key: key}
	}
	return nil
}

// number returns the trailing run of digits and dots in the expression.
func (s *Session) number() string {
	i := strings.LastIndexFunc(s.expr, func(r rune) bool {
		return !('0' <= r && r <= '9' || r == '.')
	})
	return s.expr[i+1:]
}

// UnknownKeyError is an error for a key that is not on the keypad.
type UnknownKeyError struct {
	Key string
}

func (err *UnknownKeyError) Error() string {
	return "unknown key " + strconv.Quote(err.Key)
}
