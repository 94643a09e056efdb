package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning what it wrote
// to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "rootcalc", cmd.Use)
	assert.Contains(t, cmd.Long, "root of b")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"eval", "postfix", "keypad", "check", "serve"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	lenientFlag := cmd.PersistentFlags().Lookup("lenient")
	require.NotNil(t, lenientFlag)
	assert.Equal(t, "false", lenientFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "", "eval", "--format", "xml", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestLenientEnv(t *testing.T) {
	t.Setenv("ROOTCALC_LENIENT", "true")
	out, err := execute(t, "", "eval", "--", "-5")
	require.NoError(t, err)
	assert.Equal(t, "-5\n", out)

	// The flag wins over the environment.
	_, err = execute(t, "", "eval", "--lenient=false", "--", "-5")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	t.Setenv("ROOTCALC_LENIENT", "sometimes")
	_, err = execute(t, "", "eval", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestServeCommandFlags(t *testing.T) {
	t.Setenv("ROOTCALC_DB", "history.db")
	cmd := NewRootCommand()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	addrFlag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addrFlag)
	assert.Equal(t, "127.0.0.1:8790", addrFlag.DefValue)

	dbFlag := serveCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "history.db", dbFlag.DefValue)
}
