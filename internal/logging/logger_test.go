package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstylecheck/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
		{"case insensitive Info", "Info", log.InfoLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			require.NotNil(t, logger)
			assert.Equal(t, testCase.expected, logger.GetLevel())
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "warn")

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown", logging.FieldPath, "README.md")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "README.md")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, logging.Default())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, log.DebugLevel, logging.ParseLevel("debug"))
	assert.Equal(t, log.WarnLevel, logging.ParseLevel("WARNING"))
	assert.Equal(t, log.ErrorLevel, logging.ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, logging.ParseLevel("loud"))
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewInteractive(&buf)
	require.NotNil(t, logger)

	// Interactive loggers default to info level.
	assert.Equal(t, log.InfoLevel, logger.GetLevel())

	logger.Info("created configuration file", logging.FieldPath, ".mdstylecheck.yml")
	assert.Contains(t, buf.String(), ".mdstylecheck.yml")
}

func TestContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)

	assert.Same(t, logger, logging.FromContext(ctx))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))

	//nolint:staticcheck // A nil context falls back to the default logger.
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}
