package logutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLogLevel(level)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetLogLevel(INFO)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t, WARN)

	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Warn("shown %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 3")
	assert.Contains(t, out, "[logutil_test.go:")
	assert.False(t, Enabled(INFO))
	assert.True(t, Enabled(ERROR))
}

func TestSliceArgsAsJSON(t *testing.T) {
	buf := captureLogs(t, DEBUG)

	Debug("sets: %s", [][]int{{0, 1}, {2}})

	out := buf.String()
	assert.Contains(t, out, "[DBG] sets:")
	assert.Contains(t, out, "[0, 1]")
}

func TestErrorCarriesStack(t *testing.T) {
	buf := captureLogs(t, DEBUG)

	Error("boom %s", "100%")

	out := buf.String()
	assert.Contains(t, out, "[ERR] boom 100%")
	assert.Contains(t, out, "调用堆栈:")
	assert.Contains(t, out, "goroutine")
}

func TestInitLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uf.log")
	require.NoError(t, InitLogger(path, DEBUG))
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetLogLevel(INFO)
	})

	Info("written to file")
	require.NoError(t, CloseLogger())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "[INFO] written to file"))
}
