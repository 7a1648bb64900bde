package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONOutput(t *testing.T) {
	t.Setenv(EnvVar, "")
	var buf bytes.Buffer
	l := New("storage", Options{Level: "info", Out: &buf})

	l.Debugf("hidden %d", 1)
	l.Infof("loaded %d vehicles", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "storage", rec["component"])
	assert.Equal(t, "loaded 2 vehicles", rec["message"])
}

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	t.Setenv(EnvVar, "")
	var buf bytes.Buffer
	l := New("svc", Options{Out: &buf})
	l.Infof("info")
	assert.Empty(t, buf.String())
	l.Warnf("warn")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestNew_ConsoleFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "dev")
	var buf bytes.Buffer
	l := New("svc", Options{Level: "debug", Out: &buf})
	l.Debugw("saved", map[string]any{"vehicle": "Civic"})
	out := buf.String()
	assert.Contains(t, out, "saved")
	assert.Contains(t, out, "Civic")
	assert.False(t, strings.HasPrefix(out, "{"), "expected console output, got %q", out)
}

func TestWith(t *testing.T) {
	t.Setenv(EnvVar, "")
	var buf bytes.Buffer
	l := New("root", Options{Level: "error", Out: &buf}).With("publish")
	l.Errorf("broker down")
	out := buf.String()
	assert.Contains(t, out, `"component":"publish"`)
	assert.Equal(t, 1, strings.Count(out, `"component"`), "expected one component key, got %s", out)
	assert.NotContains(t, out, `"root"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("loud"))
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	l.Debugf("x")
	l.Debugw("x", nil)
	l.Infof("x")
	l.Warnf("x")
	l.Errorf("x")
	assert.Equal(t, Nop{}, l.With("other"))
}
