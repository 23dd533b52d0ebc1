package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	require.NotNil(t, flags.Lookup("config"))
	require.NotNil(t, flags.Lookup("env"))
	require.NotNil(t, flags.Lookup("path"))
	require.NotNil(t, flags.Lookup("debug"))
	require.NotNil(t, flags.Lookup("no-env"))
}

func TestRootCmd_HasExpectedSubcommands(t *testing.T) {
	want := map[string]bool{
		"validate": false,
		"show":     false,
		"init":     false,
		"version":  false,
	}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		require.True(t, found, "%s subcommand should be registered", name)
	}
}

func TestEnvironment_FlagWins(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	flagEnv = "production"
	defer func() { flagEnv = "" }()

	require.Equal(t, "production", environment())
}

func TestEnvironment_FallsBackToAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	flagEnv = ""
	require.Equal(t, "staging", environment())
}
