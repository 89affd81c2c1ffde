package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlagsWithArgsDefaults(t *testing.T) {
	args, action := parseFlagsWithArgs([]string{"-address", "192.168.1.240"})
	require.Empty(t, action)
	require.Equal(t, "192.168.1.240", args.address)
	require.Empty(t, args.logLevel)
	require.Zero(t, args.bufferSize)
}

func TestParseFlagsWithArgsOverrides(t *testing.T) {
	args, action := parseFlagsWithArgs([]string{
		"-address", "10.0.0.5",
		"-log-level", "debug",
		"-buffer-size", "4096",
	})
	require.Empty(t, action)
	require.Equal(t, "10.0.0.5", args.address)
	require.Equal(t, "debug", args.logLevel)
	require.Equal(t, 4096, args.bufferSize)
}

func TestParseFlagsWithArgsHelp(t *testing.T) {
	_, action := parseFlagsWithArgs([]string{"-help"})
	require.Equal(t, "help", action)
}

func TestParseFlagsWithArgsVersion(t *testing.T) {
	_, action := parseFlagsWithArgs([]string{"-version"})
	require.Equal(t, "version", action)
}

func TestRunMissingAddress(t *testing.T) {
	err := run(parsedArgs{})
	require.Error(t, err)
}
