package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rootcalc/internal/keypad"
)

// KeypadDisplay is the state of the keypad screen after an evaluation.
type KeypadDisplay struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Error      string `json:"error,omitempty"`
}

func (d KeypadDisplay) String() string {
	return d.Result
}

// NewKeypadCommand creates the keypad command.
func NewKeypadCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keypad [key...]",
		Short: "Drive a keypad session with key presses",
		Long: `Press each argument as a key on the calculator keypad, or each
whitespace-separated word of standard input when there are no arguments.
The display is printed after every "=".

Keys: AC = 0-9 . ( ) + - * / ^ r`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeypad(rootOpts, cmd, args)
		},
	}
	return cmd
}

func runKeypad(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := newFormatter(opts, cmd)
	lines, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}

	s := keypad.New(opts.evalOptions()...)
	for _, line := range lines {
		for _, key := range strings.Fields(line) {
			if err := s.Press(key); err != nil {
				return WrapExitError(ExitCommandError, "bad key", err)
			}
			f.VerboseLog("%s: %q / %s", key, s.Expression(), s.Result())
			if key != keypad.KeyEquals && key != keypad.KeyClear {
				continue
			}
			d := KeypadDisplay{Expression: s.Expression(), Result: s.Result()}
			if err := s.Err(); err != nil {
				d.Error = err.Error()
			}
			if err := f.Success(d); err != nil {
				return err
			}
		}
	}
	return nil
}
