package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtactoe/config"
	"termtactoe/types"
)

func TestEvalBoard(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     string
	}{
		{
			name:     "empty board",
			notation: ".../.../...",
			want:     "board:   .../.../...\noutcome: in progress\nnext:    X\n",
		},
		{
			name:     "top row",
			notation: "xxx/oo./...",
			want:     "board:   XXX/OO./...\noutcome: win\nwinner:  X\nline:    A1 B1 C1\n",
		},
		{
			name:     "draw",
			notation: "XOX/XOO/OXX",
			want:     "board:   XOX/XOO/OXX\noutcome: draw\n",
		},
		{
			name:     "O to move",
			notation: "X../.../...",
			want:     "board:   X../.../...\noutcome: in progress\nnext:    O\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, evalBoard(&out, tt.notation))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestEvalBoard_BadNotation(t *testing.T) {
	var out bytes.Buffer

	err := evalBoard(&out, "XX/.../...")

	assert.ErrorIs(t, err, types.ErrBadNotation)
	assert.Empty(t, out.String())
}

func TestEvalCommand(t *testing.T) {
	// Given: the CLI with the eval subcommand
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"eval", "OOO/XX./X.."})

	// When: it runs
	err := cmd.Execute()

	// Then: the report names O and the top row
	require.NoError(t, err)
	assert.Contains(t, out.String(), "winner:  O")
	assert.Contains(t, out.String(), "line:    A1 B1 C1")
}

func TestEvalCommand_RequiresBoard(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"eval"})

	assert.Error(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "termtactoe dev\n", out.String())
}

func TestEnvCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"env"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "TERMTACTOE_SOUND")
}

func TestInitLogger(t *testing.T) {
	// Given: a config logging at warn level to a temp file
	c := config.DefaultConfig
	c.Log.Level = "warn"
	c.Log.File = filepath.Join(t.TempDir(), "logs", "termtactoe.log")

	// When: records are written at two levels
	log, closeLog := initLogger(&c)
	log.Info("hidden")
	log.Warn("shown", "component", "test")
	closeLog()

	// Then: only the warning reaches the file
	data, err := os.ReadFile(c.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=shown")
	assert.Contains(t, string(data), "component=test")
	assert.NotContains(t, string(data), "hidden")
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "Ada", firstNonEmpty("", "  ", "Ada", "Grace"))
	assert.Equal(t, "", firstNonEmpty("", " "))
}
