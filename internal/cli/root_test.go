package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_FlagDefaults(t *testing.T) {
	threshold := rootCmd.Flags().Lookup("threshold")
	require.NotNil(t, threshold)
	assert.Equal(t, "85", threshold.DefValue)

	interval := rootCmd.Flags().Lookup("interval")
	require.NotNil(t, interval)
	assert.Equal(t, "500ms", interval.DefValue)

	top := rootCmd.Flags().Lookup("top")
	require.NotNil(t, top)
	assert.Equal(t, "10", top.DefValue)

	log := rootCmd.Flags().Lookup("log")
	require.NotNil(t, log)
	assert.Equal(t, "cpu_alerts.log", log.DefValue)
}

func TestRootCommand_NoSubcommandsOrPositionalArgs(t *testing.T) {
	assert.Empty(t, rootCmd.Commands())
}
