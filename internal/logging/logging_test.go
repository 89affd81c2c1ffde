package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerSetLevel(t *testing.T) {
	tests := []struct {
		name  string
		level Level
	}{
		{"Debug", LevelDebug},
		{"Info", LevelInfo},
		{"Warn", LevelWarn},
		{"Error", LevelError},
	}

	l := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.SetLevel(tt.level)
			require.Equal(t, tt.level, l.GetLevel())
		})
	}
}

func TestLoggerSetLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"invalid", LevelInfo},
		{"", LevelInfo},
	}

	l := Default()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l.SetLevelFromString(tt.input)
			require.Equal(t, tt.expected, l.GetLevel())
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	testLogger := &Logger{
		level:  LevelDebug,
		logger: log.New(&buf, "", 0),
	}

	testLogger.SetLevel(LevelDebug)
	buf.Reset()
	testLogger.Debugf("test debug %d", 1)
	require.Contains(t, buf.String(), "[DEBUG]")
	require.Contains(t, buf.String(), "test debug 1")

	testLogger.SetLevel(LevelInfo)
	buf.Reset()
	testLogger.Debugf("should not appear")
	require.Zero(t, buf.Len())

	buf.Reset()
	testLogger.Infof("test info")
	require.Contains(t, buf.String(), "[INFO]")

	buf.Reset()
	testLogger.Warnf("test warn")
	require.Contains(t, buf.String(), "[WARN]")

	buf.Reset()
	testLogger.Errorf("test error")
	require.Contains(t, buf.String(), "[ERROR]")
}

func TestDiscardSink(t *testing.T) {
	// Discard must satisfy Sink and never panic regardless of args.
	var sink Sink = Discard()
	sink.Debugf("x %d", 1)
	sink.Infof("x")
	sink.Warnf("x")
	sink.Errorf("x")
}
