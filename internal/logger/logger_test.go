package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerboseToggle(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebugSuppressedWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())
}

func TestVerboseOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Section("Fetch")
	Debug("got %d records", 3)
	Info("run %s", "abc")
	Warn("ragged row")

	out := buf.String()
	assert.Contains(t, out, "=== Fetch ===")
	assert.Contains(t, out, "[DEBUG] got 3 records")
	assert.Contains(t, out, "[INFO] run abc")
	assert.Contains(t, out, "[WARN] ragged row")
}
