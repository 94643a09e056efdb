package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rootcalc/internal/scenario"
)

// CheckResult wraps a scenario report for text output.
type CheckResult struct {
	*scenario.Report
}

func (r CheckResult) String() string {
	var b strings.Builder
	if r.OK() {
		b.WriteString("PASS " + r.Scenario + " (" + strconv.Itoa(r.Passed) + " cases)")
		return b.String()
	}
	fmt.Fprintf(&b, "FAIL %s: %d passed, %d failed", r.Scenario, r.Passed, len(r.Failures))
	for _, f := range r.Failures {
		fmt.Fprintf(&b, "\n  case %d (%q): %s", f.Case, f.Expression, f.Message)
	}
	return b.String()
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <scenario.yaml>...",
		Short: "Check expressions against YAML scenario files",
		Long: `Run each scenario file and report the cases whose result or error
differs from the expectation. Exits 1 if any case fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd, args)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, cmd *cobra.Command, paths []string) error {
	f := newFormatter(opts, cmd)
	failed := 0
	for _, path := range paths {
		s, err := scenario.Load(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "loading "+path, err)
		}
		if opts.Lenient {
			s.Lenient = true
		}
		r := scenario.Run(s)
		f.VerboseLog("%s: %d cases", path, len(s.Cases))
		if !r.OK() {
			failed++
		}
		if err := f.Success(CheckResult{r}); err != nil {
			return err
		}
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", failed, len(paths)))
	}
	return nil
}
