// MODUL: logutil_test
// ZWECK: Tests fuer Logger-Erzeugung und TRACE-Level
// INPUT: bytes.Buffer als Log-Ziel
// OUTPUT: Testresultate
// NEBENEFFEKTE: ersetzt kurzzeitig den slog-Default-Logger
// ABHAENGIGKEITEN: testing, testify
// HINWEISE: keine

package logutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelTrace)

	logger.Log(t.Context(), LevelTrace, "constant", "dtype", "float32")

	out := buf.String()
	assert.Contains(t, out, "level=TRACE")
	assert.Contains(t, out, "source=logutil_test.go:")
	assert.Contains(t, out, "dtype=float32")
}

func TestTraceFilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(NewLogger(&buf, slog.LevelInfo))
	defer slog.SetDefault(old)

	Trace("hidden")
	slog.Info("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}
