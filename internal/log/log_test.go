package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), LevelDebug, OutputJSON, &buf)

	Info(ctx, "hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), LevelInfo, OutputJSON, &buf)
	ctx = With(ctx, "req-id", "abc123")

	Info(ctx, "tagged")
	assert.Contains(t, buf.String(), `"req-id":"abc123"`)
}

func TestCopyFromContext(t *testing.T) {
	var buf bytes.Buffer
	orig := NewContext(context.Background(), LevelInfo, OutputJSON, &buf)

	dest := CopyFromContext(orig, context.Background())
	Info(dest, "carried over")
	assert.Contains(t, buf.String(), `"msg":"carried over"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), LevelErr, OutputText, &buf)

	Info(ctx, "filtered out")
	assert.Empty(t, buf.String())

	Error(ctx, "kept")
	assert.Contains(t, buf.String(), "kept")
}
