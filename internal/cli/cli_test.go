package cli

import (
	"testing"
)

// TestVersionCommand tests version command output
func TestVersionCommand(t *testing.T) {
	// Set test version info
	Version = "1.0.0-test"
	GitCommit = "abc123"
	BuildDate = "2026-08-31"

	t.Run("normal output", func(t *testing.T) {
		// Reset flags
		versionShort = false
		versionJSON = false

		// Run command - output goes to stdout which we can't easily capture
		// Just test that it doesn't error
		err := runVersion(versionCmd, []string{})
		if err != nil {
			t.Errorf("runVersion() unexpected error: %v", err)
		}
	})

	t.Run("short output", func(t *testing.T) {
		versionShort = true
		versionJSON = false

		err := runVersion(versionCmd, []string{})
		if err != nil {
			t.Errorf("runVersion() unexpected error: %v", err)
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		versionShort = false
		versionJSON = true

		err := runVersion(versionCmd, []string{})
		if err != nil {
			t.Errorf("runVersion() unexpected error: %v", err)
		}
	})
}

// TestRootCommandWiring tests that all subcommands are registered
func TestRootCommandWiring(t *testing.T) {
	want := map[string]bool{
		"build":   false,
		"init":    false,
		"version": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered on root command", name)
		}
	}
}

// TestBuildCommandFlags tests that the build command exposes its overrides
func TestBuildCommandFlags(t *testing.T) {
	for _, name := range []string{FlagConfig, FlagSource, FlagDest} {
		if buildCmd.Flags().Lookup(name) == nil {
			t.Errorf("build command missing flag %q", name)
		}
	}
}
