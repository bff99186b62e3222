package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags clears flag state left behind by earlier executions of the global commands.
func resetFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd, runCmd, versionCmd, graphCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "arbor version ")
}

func TestRunCommand_StopsAfterTicks(t *testing.T) {
	out, err := execute(t, "run",
		"--ticks", "3",
		"--period", "2ms",
		"--seed", "7",
		"--patrol", "1ms",
		"--log-level", "error",
		"--no-color",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "guard finished after 3 ticks")
}

func TestRunCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
period: 2ms
ticks: 2
seed: 1
log_level: error
no_color: true
guard:
  name: sentry
  hp: 50
  patrol: 1ms
`), 0644))

	start := time.Now()
	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sentry finished after 2 ticks")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	_, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "[\"scan\"]")
	assert.Contains(t, out, "{\"index_selector\"}")
	assert.Contains(t, out, "-- \"true\" -->")
}
