package cli

import (
	"os"
	"testing"
)

func TestRunWithNoArgsReturnsErr(t *testing.T) {
	if code := Run(nil); code != ExitErr {
		t.Errorf("Run(nil) = %d, want ExitErr", code)
	}
}

func TestRunUnknownSubcommandReturnsErr(t *testing.T) {
	if code := Run([]string{"not-a-command"}); code != ExitErr {
		t.Errorf("Run with an unknown subcommand = %d, want ExitErr", code)
	}
}

func TestEnvOrDefaultFallsBackWhenUnset(t *testing.T) {
	t.Setenv("TETRISPLAY_TEST_VAR", "")
	if got := envOrDefault("TETRISPLAY_TEST_VAR", "fallback"); got != "fallback" {
		t.Errorf("envOrDefault = %q, want fallback", got)
	}
}

func TestEnvOrDefaultPrefersEnv(t *testing.T) {
	t.Setenv("TETRISPLAY_TEST_VAR", "set")
	if got := envOrDefault("TETRISPLAY_TEST_VAR", "fallback"); got != "set" {
		t.Errorf("envOrDefault = %q, want set", got)
	}
}

func TestNewFlagSetWritesToStderr(t *testing.T) {
	fs := newFlagSet("test")
	if fs.Name() != "test" {
		t.Errorf("FlagSet name = %q, want test", fs.Name())
	}
	if fs.Output() != os.Stderr {
		t.Error("FlagSet output should be os.Stderr")
	}
}
