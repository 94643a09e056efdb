// Package cli implements the rootcalc command line.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rootcalc"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Lenient bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// evalOptions returns the evaluation options selected by the flags.
func (o *RootOptions) evalOptions() []rootcalc.EvalOption {
	if o.Lenient {
		return []rootcalc.EvalOption{rootcalc.Lenient()}
	}
	return nil
}

// NewRootCommand creates the root command for the rootcalc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rootcalc",
		Short: "Keypad calculator with a root operator",
		Long: `Evaluate infix arithmetic with + - * / ^ and r, where "a r b" is the
a-th root of b. All operators are left-associative.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if v := os.Getenv("ROOTCALC_LENIENT"); v != "" && !cmd.Flags().Changed("lenient") {
				b, err := strconv.ParseBool(v)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid ROOTCALC_LENIENT", err)
				}
				opts.Lenient = b
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.Lenient, "lenient", false, "use 0 for missing left operands (env ROOTCALC_LENIENT)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewPostfixCommand(opts))
	cmd.AddCommand(NewKeypadCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
