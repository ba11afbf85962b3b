package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Gunvolt24/giftlist/pkg/ctxmeta"
	"github.com/Gunvolt24/giftlist/pkg/logger"
)

func TestZapLogger_ContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	ctx := ctxmeta.WithVisitorID(ctxmeta.WithRequestID(context.Background(), "req-1"), "v-1")
	log.Warnf(ctx, "reserve failed product=%s", "p1")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "reserve failed product=p1", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "v-1", fields["visitor_id"])
	require.NotContains(t, fields, "trace_id")
}

func TestZapLogger_NoContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.FromZap(zap.New(core))

	log.Infof(context.Background(), "started")
	log.Errorf(context.Background(), "boom")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Empty(t, entries[0].Context)
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestNewZapLogger_Modes(t *testing.T) {
	for _, prod := range []bool{false, true} {
		log, cleanup, err := logger.NewZapLogger(prod)
		require.NoError(t, err)
		require.NotNil(t, log.Base())
		_ = cleanup()
	}
}
