package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rootcalc"
	"github.com/zephyrtronium/rootcalc/internal/scenario"
)

// PostfixResult is the output for one converted expression.
type PostfixResult struct {
	Expression string `json:"expression"`
	Postfix    string `json:"postfix"`
}

func (r PostfixResult) String() string {
	return r.Postfix
}

// NewPostfixCommand creates the postfix command.
func NewPostfixCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postfix [expression...]",
		Short: "Convert expressions to postfix notation",
		Long: `Print the postfix form of each argument, or of each non-blank line of
standard input, as space-separated tokens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPostfix(rootOpts, cmd, args)
		},
	}
	return cmd
}

func runPostfix(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := newFormatter(opts, cmd)
	exprs, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}

	failed := 0
	for _, src := range exprs {
		postfix, err := rootcalc.InfixToPostfix(src)
		if err != nil {
			failed++
			if err := f.Error(scenario.Kind(err), err.Error(), src); err != nil {
				return err
			}
			continue
		}
		if err := f.Success(PostfixResult{Expression: src, Postfix: postfix}); err != nil {
			return err
		}
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d expressions failed", failed, len(exprs)))
	}
	return nil
}
