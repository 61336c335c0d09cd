package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr runs fn with os.Stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestLogger_InfoWarnError(t *testing.T) {
	logger := New(false, true)

	out := captureStderr(t, func() {
		logger.Info("loaded %d leaves", 3)
		logger.Warn("file is %s", "world-readable")
		logger.Error("lookup failed")
	})

	assert.Contains(t, out, "✓ loaded 3 leaves")
	assert.Contains(t, out, "⚠ file is world-readable")
	assert.Contains(t, out, "✗ lookup failed")
}

func TestLogger_DebugGatedByFlag(t *testing.T) {
	quiet := New(false, true)
	verbose := New(true, true)

	out := captureStderr(t, func() {
		quiet.Debug("hidden")
		verbose.Debug("shown")
	})

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[DEBUG] shown")
}

func TestLogger_NoColorSuppressesANSI(t *testing.T) {
	out := captureStderr(t, func() {
		New(false, true).Info("plain")
	})
	assert.False(t, strings.Contains(out, "\033["))

	out = captureStderr(t, func() {
		New(false, false).Info("colored")
	})
	assert.True(t, strings.Contains(out, "\033["))
}

func TestSecret_NeverPrintsValue(t *testing.T) {
	s := Secret("super-secret-password")

	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%s", s))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", s))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%#v", s))
	assert.NotContains(t, fmt.Sprintf("%s %v %#v", s, s, s), "super-secret")
}
