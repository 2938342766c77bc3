package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmdRequiresRoot(t *testing.T) {
	isolateConfig(t)

	_, err := runCommand(t, "watch", "--root", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no workspace root")
}

func TestWatchCmdRejectsArgs(t *testing.T) {
	isolateConfig(t)

	_, err := runCommand(t, "watch", "extra")
	require.Error(t, err)
}
