package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reference = "\n0 0; 1 0\n0 0; 0 1\n0 0; 0 2\n"

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(viper.New())
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestReplayFromStdin(t *testing.T) {
	stdout, stderr, err := execute(t, reference)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "(0, 0.5) <- (0.5, 0) scale x1.000 rotation +90.0° angle 90.0°")
	assert.Contains(t, lines[3], "scale x2.000")
	assert.Contains(t, stderr, "replay finished")
	assert.NotContains(t, stderr, "level=debug")
}

func TestReplayFromFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "gesture.frames")
	require.NoError(t, os.WriteFile(logPath, []byte(reference), 0644))

	stdout, _, err := execute(t, "", logPath)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(stdout, "\n"))
}

func TestReplay_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "trace.png")
	cfg := "log-level: debug\ndraw: " + tracePath + "\ndraw-scale: 40\n"
	cfgPath := filepath.Join(dir, "pinch.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	_, stderr, err := execute(t, reference, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=debug")
	_, err = os.Stat(tracePath)
	assert.NoError(t, err)
}

func TestReplay_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("PINCH_LOG_LEVEL", "bogus")

	_, _, err := execute(t, reference)
	assert.EqualError(t, err, `parsing log level: not a valid logrus Level: "bogus"`)

	_, _, err = execute(t, reference, "--log-level", "warn")
	assert.NoError(t, err)
}

func TestReplay_Errors(t *testing.T) {
	_, _, err := execute(t, "", filepath.Join(t.TempDir(), "missing.frames"))
	assert.ErrorContains(t, err, "opening frame log")

	_, _, err = execute(t, "0 0\n1 2 3\n")
	assert.ErrorContains(t, err, "line 2")

	_, _, err = execute(t, reference, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading configuration file")

	_, _, err = execute(t, reference, "a", "b")
	assert.Error(t, err)
}
