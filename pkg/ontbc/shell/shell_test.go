package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	env := Env{
		"HOME":    "/home/ont",
		"SCRATCH": "/scratch",
		"EMPTY":   "",
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"/raw/{cell}/reads", "/raw/{cell}/reads"},
		{"$HOME/guppy", "/home/ont/guppy"},
		{"${SCRATCH}/ont_basecall", "/scratch/ont_basecall"},
		{"$SCRATCH/{cell}_$HOME", "/scratch/{cell}_/home/ont"},
		{`\$HOME/literal`, "$HOME/literal"},
		{"/data$EMPTY/x", "/data/x"},
		{"plain", "plain"},
		{"", ""},
		{`C:\\data\\sub/$HOME`, `C:\\data\\sub//home/ont`},
		{`C:\\data\\$HOME`, `C:\\data\$HOME`},
		{`C:\data\$HOME`, `C:\data$HOME`},
		{"`cmd`/$HOME", "`cmd`/home/ont"},
		{"$(date)/$HOME", "$(date)//home/ont"},
		{"cost: 5$ $HOME$", "cost: 5$ /home/ont$"},
		{`trailing\`, `trailing\`},
		{`"$HOME"`, `"/home/ont"`},
	}

	for _, tt := range tests {
		got, err := Expand(tt.input, env)
		require.NoError(t, err, "Expand(%q)", tt.input)
		assert.Equal(t, tt.expected, got, "Expand(%q)", tt.input)
	}
}

func TestExpand_Unset(t *testing.T) {
	for _, input := range []string{"$NOPE/x", "/a/${NOPE}"} {
		_, err := Expand(input, Env{"HOME": "/h"})
		require.ErrorIs(t, err, ErrUnsetVariable, input)

		var unset *UnsetVariableError
		require.ErrorAs(t, err, &unset)
		assert.Equal(t, "NOPE", unset.Name)
		assert.Equal(t, input, unset.Input)
		assert.Contains(t, err.Error(), "NOPE")
	}
}

func TestOSEnv(t *testing.T) {
	t.Setenv("ONTBC_TEST_VAR", "a=b")

	env := OSEnv()
	assert.Equal(t, "a=b", env["ONTBC_TEST_VAR"])

	got, err := Expand("${ONTBC_TEST_VAR}", env)
	require.NoError(t, err)
	assert.Equal(t, "a=b", got)
}
