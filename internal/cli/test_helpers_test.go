package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout (including colored helper output) during fn
// and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	oldStdout := os.Stdout
	oldColorOut := color.Output
	oldNoColor := color.NoColor
	os.Stdout = w
	color.Output = w
	color.NoColor = true

	fn()

	w.Close()
	os.Stdout = oldStdout
	color.Output = oldColorOut
	color.NoColor = oldNoColor

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}
