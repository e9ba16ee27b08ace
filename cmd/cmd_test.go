package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with a private options file.
func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "steelform.yaml")}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestParseCommand(t *testing.T) {
	out := run(t, "", "parse", "L63x40x5", "[20a", "???")
	assert.Contains(t, out, "Angle")
	assert.Contains(t, out, "a=63 b=40 t=5")
	assert.Contains(t, out, "Channel")
	assert.Contains(t, out, "20a")
	assert.Contains(t, out, "no profile grammar matches")
}

func TestClassifyCommand(t *testing.T) {
	out := run(t, "", "classify", "2[10", "L50x0x5")
	assert.Contains(t, out, "Back-to-back")
	assert.Contains(t, out, "Unequal")
}

func TestCategoriesCommand(t *testing.T) {
	out := run(t, "", "categories")
	for _, label := range []string{"Angle", "I-beam", "Bulb flat", "Series a"} {
		assert.Contains(t, out, label)
	}
}

func TestFormulaCommand(t *testing.T) {
	out := run(t, "", "formula", "--type", "area", "--accuracy", "precisely", "--pi", "func", "--exclude-top=false", "L50x5", "HP200x10")
	assert.Contains(t, out, "=(50+(50-5)+50+(50-5)+2*5)/1000")
	assert.Contains(t, out, "no precisely formula for BulbFlat")
}

func TestBatchCommand(t *testing.T) {
	out := run(t, "L50x5\n???\n[10\t=0.365\n", "batch", "--type", "weight", "--accuracy", "gb", "--overwrite=false", "--filter", "")
	assert.Equal(t, "L50x5\t=3.77\twritten\n???\t\tmismatch\n[10\t=0.365\tkept\n", out)
}

func TestVersionCommand(t *testing.T) {
	out := run(t, "", "version")
	assert.Contains(t, out, "steelform v")
}

func TestVersionBuildMetadata(t *testing.T) {
	out := run(t, "", "version")
	assert.Contains(t, out, "Build: unknown (unknown)")
	assert.Contains(t, out, "GB/T 706")
}
