package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalArgs(t *testing.T) {
	out, err := execute(t, "", "eval", "1+2", "2r8", "2^3^2")
	require.NoError(t, err)
	assert.Equal(t, "3\n2.8284271247461903\n64\n", out)
}

func TestEvalStdin(t *testing.T) {
	out, err := execute(t, "6/3\n\n  (1+2)*3  \n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "2\n9\n", out)
}

func TestEvalFullWidth(t *testing.T) {
	out, err := execute(t, "", "eval", "２＋３")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestEvalFailure(t *testing.T) {
	out, err := execute(t, "", "eval", "1+", "2*2")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "1 of 2 expressions failed", err.Error())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `Error [underflow]: 3: stack underflow: missing operand for "+"`, lines[0])
	assert.Equal(t, "4", lines[1])
}

func TestEvalJSON(t *testing.T) {
	out, err := execute(t, "", "eval", "--format", "json", "2r16", "(1")
	require.Error(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var ok struct {
		Status string     `json:"status"`
		Data   EvalResult `json:"data"`
	}
	require.NoError(t, dec.Decode(&ok))
	assert.Equal(t, "ok", ok.Status)
	assert.Equal(t, EvalResult{Expression: "2r16", Postfix: "2 16 r ", Result: "4"}, ok.Data)

	var bad CLIResponse
	require.NoError(t, dec.Decode(&bad))
	assert.Equal(t, "error", bad.Status)
	require.NotNil(t, bad.Error)
	assert.Equal(t, "bracket", bad.Error.Code)
	assert.Equal(t, "(1", bad.Error.Expression)
}

func TestEvalVerbose(t *testing.T) {
	cmd := NewRootCommand()
	var out, errOut strings.Builder
	cmd.SetArgs([]string{"eval", "-v", "2r16"})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "4\n", out.String())
	assert.Equal(t, "2r16 => \"2 16 r \"\n", errOut.String())
}

func TestPostfix(t *testing.T) {
	out, err := execute(t, "", "postfix", "1+2*3", "2 ^ 3 ^ 2", "2×3÷4")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 * + \n2 3 ^ 2 ^ \n2 3 * 4 / \n", out)
}

func TestPostfixFailure(t *testing.T) {
	out, err := execute(t, "", "postfix", "1)")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [bracket]:")
}
