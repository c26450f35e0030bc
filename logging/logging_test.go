package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"":        InfoLevel,
		"Warning": WarnLevel,
		"warn":    WarnLevel,
		" error ": ErrorLevel,
		"fatal":   FatalLevel,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestDefaultLogger_RoutesByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewDefaultLoggerWithWriters(&out, &errOut)

	l.Debug("hidden")
	l.Info("computed prime form", Fields{"cardinality": 3})
	l.Warn("large enumeration")
	l.Error(errors.New("boom"), "compare failed")

	assert.Equal(t, "[INFO] computed prime form map[cardinality:3]\n", out.String())
	assert.Equal(t, "[WARN] large enumeration\n[ERROR] compare failed: boom\n", errOut.String())
}

func TestDefaultLogger_SetLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewDefaultLoggerWithWriters(&out, &errOut)
	l.SetLevel(DebugLevel)
	l.Debug("shown")
	assert.Equal(t, "[DEBUG] shown\n", out.String())

	out.Reset()
	l.SetLevel(ErrorLevel)
	l.Info("hidden")
	l.Warn("hidden")
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestDefaultLogger_FatalDoesNotExitWithWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewDefaultLoggerWithWriters(&out, &errOut)
	l.Fatal(errors.New("bad config"), "startup")
	assert.Equal(t, "[FATAL] startup: bad config\n", errOut.String())
}

func TestDefaultLogger_WithFieldsAndContext(t *testing.T) {
	var out, errOut bytes.Buffer
	base := NewDefaultLoggerWithWriters(&out, &errOut)

	scoped := base.WithFields(Fields{"component": "set_analyzer"})
	scoped.Info("start", Fields{"universe": 12})
	assert.Equal(t, "[INFO] start map[component:set_analyzer universe:12]\n", out.String())

	out.Reset()
	ctx := ContextWithFields(context.Background(), Fields{"request": "r1"})
	scoped.WithContext(ctx).Info("done")
	assert.Equal(t, "[INFO] done map[component:set_analyzer request:r1]\n", out.String())

	out.Reset()
	base.Info("unscoped")
	assert.Equal(t, "[INFO] unscoped\n", out.String())

	_, ok := FieldsFromContext(context.Background())
	assert.False(t, ok)
}

func TestDefaultLogger_Colors(t *testing.T) {
	l := NewDefaultLoggerWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	l.useColors = true
	assert.Equal(t, ColorYellow+"[WARN] w"+ColorReset, l.formatMessage(WarnLevel, nil, "w"))
	assert.Equal(t, "[INFO] i", l.formatMessage(InfoLevel, nil, "i"))
}

func TestGlobalLogger(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	var out, errOut bytes.Buffer
	SetGlobalLogger(NewDefaultLoggerWithWriters(&out, &errOut))
	Info("global")
	WithFields(Fields{"k": "v"}).Warn("scoped")
	assert.Equal(t, "[INFO] global\n", out.String())
	assert.Equal(t, "[WARN] scoped map[k:v]\n", errOut.String())

	SetGlobalLogger(nil)
	_, ok := GetGlobalLogger().(*NoOpLogger)
	assert.True(t, ok)
}
