package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/betbot/gofact/pkg/config"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { color.NoColor = true }

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	for _, k := range []string{config.EnvLogLevel, config.EnvLogFile, config.EnvStrategies} {
		t.Setenv(k, "")
	}
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Compute(t *testing.T) {
	code, out, _ := runCLI(t, "-strategy", "goto,recursive", "5", "0")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "goto(5) = 120\nrecursive(5) = 120\ngoto(0) = 1\nrecursive(0) = 1\n", out)
}

func TestRun_NegativeAfterDoubleDash(t *testing.T) {
	code, out, _ := runCLI(t, "-strategy", "iterative", "--", "-15")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "iterative(-15) = -1\n", out)
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCLI(t, "-list")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "goto\niterative\nrecursive\n", out)
}

func TestRun_BadArgs(t *testing.T) {
	code, _, _ := runCLI(t, "abc")
	assert.Equal(t, exitBadArgs, code)

	code, _, _ = runCLI(t)
	assert.Equal(t, exitBadArgs, code)

	code, out, _ := runCLI(t, "-strategy", "recursive", "200000000")
	assert.Equal(t, exitBadArgs, code)
	assert.Empty(t, out)

	code, _, _ = runCLI(t, "-strategy", "quantum", "3")
	assert.Equal(t, exitBadArgs, code)

	code, _, _ = runCLI(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"), "3")
	assert.Equal(t, exitBadArgs, code)
}

func TestRun_Verify(t *testing.T) {
	code, out, _ := runCLI(t, "-verify")
	require.Equal(t, exitOK, code)
	assert.Equal(t,
		"PASS goto (7 cases)\nPASS iterative (7 cases)\nPASS recursive (7 cases)\n", out)
}

func TestRun_VerifyReportsAllMismatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factcalc.yaml")
	cfg := "strategies: [iterative]\nextraCases:\n  - {input: 4, expected: 25}\n  - {input: 6, expected: 721}\n  - {input: 12, expected: 479001600}\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	code, out, _ := runCLI(t, "-verify", "-config", path)
	require.Equal(t, exitFailed, code)
	assert.Equal(t,
		"FAIL iterative (2/10 failed)\n    f(4) = 24, want 25\n    f(6) = 720, want 721\n", out)
}

func TestRun_InputLimit(t *testing.T) {
	code, out, _ := runCLI(t, "-strategy", "recursive", "66")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "recursive(66) = 0\n", out)

	code, _, _ = runCLI(t, "-strategy", "recursive", "67")
	assert.Equal(t, exitBadArgs, code)
}

func TestRun_EnvOverridesAreValidated(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Setenv(config.EnvStrategies, "")
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvLogLevel, "loud")

	code := run([]string{"5"}, &stdout, &stderr)
	assert.Equal(t, exitBadArgs, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "loud")
}
