package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/giftlist/config"
	cachemem "github.com/Gunvolt24/giftlist/internal/cache/memory"
	"github.com/Gunvolt24/giftlist/internal/kafka"
	"github.com/Gunvolt24/giftlist/internal/ports"
	"github.com/Gunvolt24/giftlist/internal/repo/postgres"
	"github.com/Gunvolt24/giftlist/internal/tracker"
	rest "github.com/Gunvolt24/giftlist/internal/transport/http"
	"github.com/Gunvolt24/giftlist/internal/usecase"
	"github.com/Gunvolt24/giftlist/pkg/errorreport"
	"github.com/Gunvolt24/giftlist/pkg/httpx"
	"github.com/Gunvolt24/giftlist/pkg/logger"
	"github.com/Gunvolt24/giftlist/pkg/metrics"
	"github.com/Gunvolt24/giftlist/pkg/telemetry"
	"github.com/Gunvolt24/giftlist/pkg/validate"
)

// Worker — фоновая задача, работающая до отмены контекста.
type Worker func(ctx context.Context)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger        ports.Logger          // логгер
	HTTPServer    *http.Server          // HTTP-сервер API
	MetricsServer *http.Server          // отдельный сервер /metrics; nil — не запускается
	KafkaConsumer ports.MessageConsumer // консьюмер событий; nil — Kafka выключена
	Workers       []Worker              // чистка кэшей, лимитера

	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// loadLocation — часовой пояс уведомлений; ошибка → UTC с предупреждением.
func loadLocation(ctx context.Context, name string, log ports.Logger) *time.Location {
	if strings.TrimSpace(name) == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warnf(ctx, "unknown timezone %q, fallback to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Sentry; без DSN репортёр выключен.
	reporter, err := errorreport.Init(errorreport.Options{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
	})
	if err != nil {
		logg.Warnf(ctx, "sentry disabled: %v", err)
		reporter = &errorreport.Reporter{}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
			Environment: cfg.Sentry.Environment,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Пул подключений Postgres.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		_ = shutdownTrace(context.Background())
		closeLogger()
		return nil, func() {}, fmt.Errorf("postgres pool: %w", err)
	}

	catalogRepo := postgres.NewCatalogRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	visitorStorage := postgres.NewVisitorStorage(pool)

	// Кэши: ответы каталога и трекеры посетителей.
	queryCache := cachemem.NewTTLCache[any](cfg.Cache.DefaultTTL, cachemem.WithName("catalog"))
	trackers := cachemem.NewTTLCache[*tracker.Tracker](cfg.Cache.VisitorTTL, cachemem.WithName("visitors"))

	// Публикация событий (только при включённой Kafka).
	var publisher ports.EventPublisher
	if cfg.Kafka.Enabled {
		publisher = kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		})
	}

	// Сборка зависимостей доменного слоя.
	validator := validate.NewRegistryValidator()
	catalogService := usecase.NewCatalogService(catalogRepo, settingsRepo, queryCache, logg, validator)
	visitorService := usecase.NewVisitorService(visitorStorage, trackers, logg,
		tracker.WithStorageKey(cfg.Tracker.StorageKey))
	reservationService := usecase.NewReservationService(
		reservationRepo, catalogRepo, queryCache, publisher, visitorService, logg, validator)
	notificationService := usecase.NewNotificationService(
		settingsRepo, notificationRepo, logg, loadLocation(ctx, cfg.Notifications.Timezone, logg))

	// Лимитер публичных операций записи.
	limiter := httpx.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(rest.Services{
		Catalog:       catalogService,
		CatalogAdmin:  catalogService,
		Guests:        reservationService,
		Reservations:  reservationService,
		Visitors:      visitorService,
		Notifications: notificationService,
	}, logg, reporter)
	router := rest.NewRouter(httpHandler, rest.RouterOptions{
		StaticDir:       "./web",
		OtelServiceName: otelServiceName,
		HandlerTimeout:  cfg.HTTP.HandlerTimeout,
		SecureCookie:    cfg.HTTP.SecureCookie,
		RateLimiter:     limiter,
		PanicReporter:   reporter,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	var metricsSrv *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	// Консьюмер уведомлений.
	var consumer ports.MessageConsumer
	if cfg.Kafka.Enabled {
		consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
			MaxAttempts:    cfg.Kafka.MaxAttempts,
		}, notificationService, logg)
	} else {
		logg.Infof(ctx, "kafka disabled: events are not published, notifications are not sent")
	}

	app := &App{
		Logger:        logg,
		HTTPServer:    httpSrv,
		MetricsServer: metricsSrv,
		KafkaConsumer: consumer,
		Workers: []Worker{
			func(ctx context.Context) {
				_ = cachemem.RunJanitor(ctx, cfg.Cache.CleanupInterval, queryCache, trackers)
			},
			limiter.Run,
		},
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", err)
			}
		}
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		reporter.Flush(2 * time.Second)

		pool.Close()
		closeLogger()
	}

	return app, cleanup, nil
}

// Run — запускает серверы, консьюмера и фоновые задачи;
// ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	// Фоновые задачи.
	var wg sync.WaitGroup
	for _, w := range a.Workers {
		wg.Add(1)
		go func(w Worker) {
			defer wg.Done()
			w(runCtx)
		}(w)
	}

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(runCtx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-серверов.
	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		go func(srv *http.Server) {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка Kafka-консьюмера и фоновых задач.
	cancelRun()
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}
	wg.Wait()

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
