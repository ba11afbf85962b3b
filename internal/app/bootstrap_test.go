package app

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// логгер-заглушка
type nopLogger struct {
	warns int32
}

func (*nopLogger) Infof(context.Context, string, ...any) {}
func (l *nopLogger) Warnf(context.Context, string, ...any) {
	atomic.AddInt32(&l.warns, 1)
}
func (*nopLogger) Errorf(context.Context, string, ...any) {}

// фейковый консьюмер, который ждёт отмены контекста
type fakeConsumer struct {
	runCalls   int32
	closeCalls int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-серверы на случайных свободных портах
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	metricsSrv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}

	var workerStopped int32
	fc := &fakeConsumer{}
	a := &App{
		Logger:        &nopLogger{},
		HTTPServer:    srv,
		MetricsServer: metricsSrv,
		KafkaConsumer: fc,
		Workers: []Worker{func(ctx context.Context) {
			<-ctx.Done()
			atomic.StoreInt32(&workerStopped, 1)
		}},
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))

	assert.NotZero(t, atomic.LoadInt32(&fc.runCalls), "consumer.Run should be called")
	assert.NotZero(t, atomic.LoadInt32(&fc.closeCalls), "consumer.Close should be called")
	assert.Equal(t, int32(1), atomic.LoadInt32(&workerStopped), "workers must be stopped before Run returns")
}

func TestAppRun_WithoutKafka(t *testing.T) {
	a := &App{
		Logger:     &nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
}

func TestApplyGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	cases := []struct {
		in    string
		want  string
		warns int32
	}{
		{"release", gin.ReleaseMode, 0},
		{" TEST ", gin.TestMode, 0},
		{"", gin.DebugMode, 0},
		{"verbose", gin.DebugMode, 1},
	}
	for _, tc := range cases {
		log := &nopLogger{}
		applyGinMode(context.Background(), tc.in, log)
		assert.Equal(t, tc.want, gin.Mode(), "mode %q", tc.in)
		assert.Equal(t, tc.warns, log.warns, "mode %q", tc.in)
	}
}

func TestLoadLocation(t *testing.T) {
	log := &nopLogger{}
	assert.Equal(t, time.UTC, loadLocation(context.Background(), "", log))
	assert.Equal(t, time.UTC, loadLocation(context.Background(), "Mars/Olympus", log))
	assert.Equal(t, int32(1), log.warns)

	loc := loadLocation(context.Background(), "America/Sao_Paulo", log)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}
