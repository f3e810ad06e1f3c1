package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Gobd/formvalidation/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.FormatJSON, "warn", &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", slog.String("field", "price"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"field":"price"`)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.FormatText, "", &buf)
	require.NoError(t, err)

	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_Errors(t *testing.T) {
	_, err := logger.New("xml", "info", nil)
	assert.Error(t, err)

	_, err = logger.New(logger.FormatText, "loud", nil)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
