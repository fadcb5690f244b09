package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRegistration(t *testing.T) {
	expected := []string{"gaps", "timeline", "top", "compare", "model"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %s must be registered", name)
	}
}

func TestRootCommandSilencesCobraOutput(t *testing.T) {
	// Errors are rendered by the printer package; cobra must not repeat them.
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-08-24")
	assert.Equal(t, "1.2.3 (commit: abc1234, built: 2026-08-24)", rootCmd.Version)
}

func TestGapsGroupByValidation(t *testing.T) {
	// An invalid mode is rejected before any data is loaded.
	prev := gapsGroupBy
	defer func() { gapsGroupBy = prev }()

	gapsGroupBy = "scorer"
	err := runGaps(gapsCmd, nil)
	require.Error(t, err)
	assert.Equal(t, "invalid group-by mode", err.Error())
}
