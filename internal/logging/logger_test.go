package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "json", slog.LevelInfo).With("component", "api")

	log.Info(context.Background(), "hello", "user_id", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "api", rec["component"])
	assert.EqualValues(t, 7, rec["user_id"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", slog.LevelWarn)

	log.Debug(context.Background(), "debug")
	log.Info(context.Background(), "info")
	assert.Zero(t, buf.Len())

	log.Error(context.Background(), "boom")
	assert.Contains(t, buf.String(), "boom")
}
