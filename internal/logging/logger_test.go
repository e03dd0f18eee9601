package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}

	_, err := parseLevel("loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"loud"`)
}

func TestNew(t *testing.T) {
	_, err := New(Config{Level: "nope"})
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "matcalc.log")
	l, err := New(Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.InfoLevel))
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))
	_ = l.Sync()

	verbose, err := New(DevelopmentConfig())
	require.NoError(t, err)
	require.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, []string{"stderr"}, cfg.OutputPaths)

	dev := DevelopmentConfig()
	require.Equal(t, "debug", dev.Level)
	require.True(t, dev.Development)
	require.False(t, NewNop().Core().Enabled(zapcore.ErrorLevel))
}

func TestOperation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{Logger: zap.New(core)}

	l.Operation("add").Debug("done", zap.Int("rows", 2))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "done", entry.Message)
	require.Equal(t, "add", entry.ContextMap()["op"])
	require.EqualValues(t, 2, entry.ContextMap()["rows"])
}
