// MODUL: config_test
// ZWECK: Tests fuer Environment-Konfiguration
// INPUT: gesetzte Environment-Variablen (t.Setenv)
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine (t.Setenv stellt Werte wieder her)
// ABHAENGIGKEITEN: testing, testify
// HINWEISE: keine

package envconfig

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"false", slog.LevelInfo},
		{"0", slog.LevelInfo},
		{"1", slog.LevelDebug},
		{"true", slog.LevelDebug},
		{"2", slog.Level(-8)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TENSORLOWER_DEBUG", tt.value)
			assert.Equal(t, tt.want, LogLevel())
		})
	}
}

func TestMaxGraphNodes(t *testing.T) {
	t.Setenv("TENSORLOWER_MAX_GRAPH_NODES", "")
	assert.Equal(t, uint(1<<16), MaxGraphNodes())

	t.Setenv("TENSORLOWER_MAX_GRAPH_NODES", "12")
	assert.Equal(t, uint(12), MaxGraphNodes())

	// ungueltiger Wert faellt auf Default zurueck
	t.Setenv("TENSORLOWER_MAX_GRAPH_NODES", "many")
	assert.Equal(t, uint(1<<16), MaxGraphNodes())
}

func TestBackend(t *testing.T) {
	t.Setenv("TENSORLOWER_BACKEND", "")
	assert.Equal(t, "ref", Backend())

	t.Setenv("TENSORLOWER_BACKEND", "'other'")
	assert.Equal(t, "other", Backend())
}

func TestString(t *testing.T) {
	get := String("TENSORLOWER_TEST_STRING")

	t.Setenv("TENSORLOWER_TEST_STRING", "")
	assert.Empty(t, get())

	t.Setenv("TENSORLOWER_TEST_STRING", `  "ref"  `)
	assert.Equal(t, "ref", get())
}

func TestValues(t *testing.T) {
	t.Setenv("TENSORLOWER_MAX_GRAPH_NODES", "7")
	vals := Values()
	assert.Equal(t, "7", vals["TENSORLOWER_MAX_GRAPH_NODES"])
	assert.Contains(t, vals, "TENSORLOWER_DEBUG")
}
