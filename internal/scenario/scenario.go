// Package scenario checks the evaluator against expectations written in YAML.
//
// A scenario file names a set of expressions and what each should produce:
//
//	name: basics
//	lenient: false
//	cases:
//	  - expression: "2r8"
//	    expect: "2.8284271247461903"
//	  - expression: "1+"
//	    error: underflow
//
// Expected values are compared within a tolerance, 1e-9 unless the case sets
// its own. Infinities and NaN must match exactly.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/rootcalc"
)

// DefaultTolerance is the allowed absolute difference between an expected and
// an actual finite result.
const DefaultTolerance = 1e-9

// Error kinds that a case may expect.
const (
	KindUnderflow   = "underflow"
	KindUnsupported = "unsupported"
	KindNumber      = "number"
	KindBracket     = "bracket"
	KindLex         = "lex"
	KindExcess      = "excess"
)

var kinds = map[string]bool{
	KindUnderflow:   true,
	KindUnsupported: true,
	KindNumber:      true,
	KindBracket:     true,
	KindLex:         true,
	KindExcess:      true,
}

// Scenario is a named set of cases.
type Scenario struct {
	// Name identifies the scenario in reports.
	Name string `yaml:"name"`

	// Description explains what the scenario covers.
	Description string `yaml:"description,omitempty"`

	// Lenient evaluates every case with rootcalc.Lenient.
	Lenient bool `yaml:"lenient,omitempty"`

	Cases []Case `yaml:"cases"`
}

// Case is one expression and its expected outcome. Exactly one of Expect and
// Error is set.
type Case struct {
	Expression string `yaml:"expression"`

	// Expect is the expected result, in any form strconv.ParseFloat accepts,
	// including "+Inf" and "NaN".
	Expect string `yaml:"expect,omitempty"`

	// Error is the kind of error expected.
	Error string `yaml:"error,omitempty"`

	// Tolerance overrides DefaultTolerance.
	Tolerance *float64 `yaml:"tolerance,omitempty"`

	want float64
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if len(s.Cases) == 0 {
		return errors.New("at least one case is required")
	}
	for i := range s.Cases {
		c := &s.Cases[i]
		switch {
		case c.Expect == "" && c.Error == "":
			return fmt.Errorf("case %d (%q): one of expect or error is required", i+1, c.Expression)
		case c.Expect != "" && c.Error != "":
			return fmt.Errorf("case %d (%q): expect and error are exclusive", i+1, c.Expression)
		case c.Error != "":
			if !kinds[c.Error] {
				return fmt.Errorf("case %d (%q): unknown error kind %q", i+1, c.Expression, c.Error)
			}
		default:
			v, err := strconv.ParseFloat(c.Expect, 64)
			if err != nil {
				return fmt.Errorf("case %d (%q): bad expected value: %w", i+1, c.Expression, err)
			}
			c.want = v
		}
		if c.Tolerance != nil && *c.Tolerance < 0 {
			return fmt.Errorf("case %d (%q): negative tolerance", i+1, c.Expression)
		}
	}
	return nil
}

// Failure describes a case that did not behave as expected.
type Failure struct {
	// Case is the 1-based index of the case.
	Case       int    `json:"case"`
	Expression string `json:"expression"`
	Message    string `json:"message"`
}

// Report is the outcome of running a scenario.
type Report struct {
	Scenario string    `json:"scenario"`
	Passed   int       `json:"passed"`
	Failures []Failure `json:"failures,omitempty"`
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Run evaluates every case of a validated scenario.
func Run(s *Scenario) *Report {
	var opts []rootcalc.EvalOption
	if s.Lenient {
		opts = append(opts, rootcalc.Lenient())
	}
	r := &Report{Scenario: s.Name}
	for i, c := range s.Cases {
		if msg := check(c, opts); msg != "" {
			r.Failures = append(r.Failures, Failure{Case: i + 1, Expression: c.Expression, Message: msg})
			continue
		}
		r.Passed++
	}
	return r
}

// check returns a description of how c failed, or the empty string.
func check(c Case, opts []rootcalc.EvalOption) string {
	got, err := rootcalc.Evaluate(c.Expression, opts...)
	if c.Error != "" {
		if err == nil {
			return "expected " + c.Error + " error, got " + rootcalc.FormatResult(got)
		}
		if k := Kind(err); k != c.Error {
			return "expected " + c.Error + " error, got " + k + " error: " + err.Error()
		}
		return ""
	}
	if err != nil {
		return "expected " + c.Expect + ", got error: " + err.Error()
	}
	tol := DefaultTolerance
	if c.Tolerance != nil {
		tol = *c.Tolerance
	}
	if !near(got, c.want, tol) {
		return "expected " + c.Expect + ", got " + rootcalc.FormatResult(got)
	}
	return ""
}

func near(got, want, tol float64) bool {
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0):
		return got == want
	}
	return math.Abs(got-want) <= tol
}

// Kind names the kind of an evaluation error. Errors that did not come from
// the evaluator are "other".
func Kind(err error) string {
	var (
		underflow   *rootcalc.StackUnderflowError
		unsupported *rootcalc.UnsupportedOperationError
		number      *rootcalc.NumberFormatError
		bracket     *rootcalc.BracketError
		lex         *rootcalc.LexError
		excess      *rootcalc.ExcessOperandsError
	)
	switch {
	case errors.As(err, &underflow):
		return KindUnderflow
	case errors.As(err, &unsupported):
		return KindUnsupported
	case errors.As(err, &number):
		return KindNumber
	case errors.As(err, &bracket):
		return KindBracket
	case errors.As(err, &lex):
		return KindLex
	case errors.As(err, &excess):
		return KindExcess
	default:
		return "other"
	}
}
