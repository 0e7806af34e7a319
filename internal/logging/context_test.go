package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom_ReturnsCarriedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil)).With("path", "/athletes")

	ctx := WithLogger(context.Background(), l)
	From(ctx).Info("hello")

	require.Contains(t, buf.String(), "path=/athletes")
}

func TestFrom_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), From(context.Background()))
	assert.Same(t, slog.Default(), From(nil))
}

func TestWithLogger_NilLoggerLeavesContextAlone(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithLogger(ctx, nil))
}
