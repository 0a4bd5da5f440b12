package logger

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
	})
}

func TestL(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	// Force nil to test lazy initialization
	log = nil
	os.Setenv("APP_ENV", "test")

	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log)
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()
	updID := "test-update-id-123"

	t.Run("WithUpdateID", func(t *testing.T) {
		newCtx := WithUpdateID(ctx, updID)
		assert.NotEqual(t, ctx, newCtx)
		assert.Equal(t, updID, newCtx.Value(updateIDKey))
	})

	t.Run("UpdateIDFrom", func(t *testing.T) {
		ctxWithID := WithUpdateID(ctx, updID)
		assert.Equal(t, updID, UpdateIDFrom(ctxWithID))
		assert.Equal(t, "", UpdateIDFrom(ctx))
	})
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	obsLogger := zap.New(core)

	originalLog := log
	log = obsLogger
	defer func() { log = originalLog }()

	t.Run("WithUpdateID", func(t *testing.T) {
		updID := "upd-abc-123"
		ctx := WithUpdateID(context.Background(), updID)

		l := FromCtx(ctx)
		l.Info("test message with id")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		assert.Equal(t, "test message with id", logs[0].Message)
		assert.Equal(t, updID, logs[0].ContextMap()["update_id"])
	})

	t.Run("WithoutUpdateID", func(t *testing.T) {
		l := FromCtx(context.Background())
		l.Info("test message without id")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		_, ok := logs[0].ContextMap()["update_id"]
		assert.False(t, ok)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync()
	})
}
