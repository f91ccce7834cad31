package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParser_RegistersCommands(t *testing.T) {
	parser, globals, cmds := buildParser("dev")
	require.NotNil(t, parser)
	require.NotNil(t, globals)

	assert.Equal(t, "tubereport", parser.Name)
	assert.NotNil(t, parser.Find("run"))
	assert.NotNil(t, parser.Find("status"))
	assert.NotNil(t, cmds.Run)
	assert.NotNil(t, cmds.Status)
}

func TestRunWithArgs_Version(t *testing.T) {
	output := captureOutput(t, func() {
		require.NoError(t, RunWithArgs("1.2.3", []string{"--version"}))
	})
	assert.Contains(t, output, "tubereport 1.2.3")
}

func TestRunWithArgs_Help(t *testing.T) {
	// go-flags writes help to stderr and reports ErrHelp, which is not an
	// error for the caller.
	assert.NoError(t, RunWithArgs("dev", []string{"--help"}))
}

func TestRunWithArgs_UnknownCommand(t *testing.T) {
	assert.Error(t, RunWithArgs("dev", []string{"frobnicate"}))
}
