package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "prod")

	log.Debug("숨김")
	log.Info("예약 완료", "class_id", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "예약 완료", entry["msg"])
	assert.Equal(t, "studio-manager", entry["service"])
	assert.EqualValues(t, 3, entry["class_id"])
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	reqLogger := New(&buf, "local").With("request_id", "req-1")
	ctx := WithLogger(context.Background(), reqLogger)

	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestWith_AddsAttributesToRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, "local").With("request_id", "req-2"))

	ctx = With(ctx, "admin_id", "7")
	FromContext(ctx).Info("회원 수정")

	assert.Contains(t, buf.String(), "request_id=req-2")
	assert.Contains(t, buf.String(), "admin_id=7")
}
