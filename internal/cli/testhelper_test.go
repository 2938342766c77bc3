package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateConfig points the config lookup at an empty directory so a real
// user config file never leaks into tests. Tests using this helper cannot
// use t.Parallel() since they mutate the environment.
func isolateConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("CODETIME_PROXY_URL", "")
	t.Setenv("CODETIME_API_KEY", "")
}

// runCommand executes the root command with args and returns its combined
// output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// mustRun is runCommand but fails the test on error.
func mustRun(t *testing.T, args ...string) string {
	t.Helper()

	out, err := runCommand(t, args...)
	require.NoError(t, err)
	return out
}
