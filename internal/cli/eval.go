package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rootcalc"
	"github.com/zephyrtronium/rootcalc/internal/scenario"
)

// EvalResult is the output for one evaluated expression.
type EvalResult struct {
	Expression string `json:"expression"`
	Postfix    string `json:"postfix"`
	Result     string `json:"result"`
}

func (r EvalResult) String() string {
	return r.Result
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions",
		Long: `Evaluate each argument as an expression and print its value.
With no arguments, evaluate each non-blank line of standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, cmd, args)
		},
	}
	return cmd
}

func runEval(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := newFormatter(opts, cmd)
	exprs, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}

	failed := 0
	for _, src := range exprs {
		postfix, err := rootcalc.InfixToPostfix(src)
		var v float64
		if err == nil {
			f.VerboseLog("%s => %q", src, postfix)
			v, err = rootcalc.EvaluatePostfix(postfix, opts.evalOptions()...)
		}
		if err != nil {
			failed++
			if err := f.Error(scenario.Kind(err), err.Error(), src); err != nil {
				return err
			}
			continue
		}
		res := EvalResult{Expression: src, Postfix: postfix, Result: rootcalc.FormatResult(v)}
		if err := f.Success(res); err != nil {
			return err
		}
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d expressions failed", failed, len(exprs)))
	}
	return nil
}
