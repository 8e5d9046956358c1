package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		logger, err := Setup(level)
		require.NoError(t, err, "level %q", level)
		assert.NotNil(t, logger)
	}

	logger, err := Setup("verbose")
	assert.Nil(t, logger)
	assert.Error(t, err)
}

func TestContextCarry(t *testing.T) {
	attached := slog.Default().With(slog.String("component", "test"))
	ctx := WithLogger(context.Background(), attached)

	assert.Equal(t, attached, FromContext(ctx))
	assert.Equal(t, attached, FromContextOrDefault(ctx, nil))

	// A bare context falls back
	fallback := slog.Default().With(slog.String("component", "fallback"))
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
	assert.Equal(t, fallback, FromContextOrDefault(context.Background(), fallback))
}
