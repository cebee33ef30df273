package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    Level
		expectError bool
	}{
		{
			name:     "parse error level",
			input:    "error",
			expected: LevelError,
		},
		{
			name:     "parse warn level",
			input:    "warn",
			expected: LevelWarn,
		},
		{
			name:     "parse warning alias",
			input:    "warning",
			expected: LevelWarn,
		},
		{
			name:     "parse info level",
			input:    "info",
			expected: LevelInfo,
		},
		{
			name:     "parse debug level",
			input:    "debug",
			expected: LevelDebug,
		},
		{
			name:     "parse uppercase level",
			input:    "ERROR",
			expected: LevelError,
		},
		{
			name:     "parse mixed case level",
			input:    "WaRn",
			expected: LevelWarn,
		},
		{
			name:        "parse invalid level",
			input:       "invalid",
			expectError: true,
		},
		{
			name:        "parse empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	// Error is the most severe and therefore the lowest numeric value.
	assert.Less(t, LevelError, LevelWarn)
	assert.Less(t, LevelWarn, LevelInfo)
	assert.Less(t, LevelInfo, LevelDebug)
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))
	assert.Equal(t, Field{Key: "raw", Value: 1.5}, Any("raw", 1.5))

	err := errors.New("boom")
	assert.Equal(t, Field{Key: "error", Value: err}, Err(err))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), LevelError, "dropped", String("k", "v"))
	})

	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(String("k", "v")))
	require.NoError(t, logger.Sync(context.Background()))
}
