//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// MigrationsDir — каталог migrations в корне модуля (два уровня вверх от этого файла).
func MigrationsDir() (string, error) {
	_, thisFile, _, _ := runtime.Caller(0)
	dir := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations"))
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return "", fmt.Errorf("migrations dir not found: %q", dir)
	}
	return dir, nil
}

// ApplyMigrations — накатывает все миграции goose; возвращает число применённых.
func ApplyMigrations(ctx context.Context, dsn string) (int, error) {
	dir, err := MigrationsDir()
	if err != nil {
		return 0, err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return 0, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}

// MigratedPostgres — поднимает Postgres в контейнере, применяет миграции и регистрирует остановку в t.Cleanup.
func MigratedPostgres(t *testing.T) (*pgxpool.Pool, string) {
	t.Helper()

	// длинный контекст — только на подъём контейнера и миграции
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	applied, err := ApplyMigrations(ctxStart, pg.DSN)
	require.NoError(t, err)
	require.Positive(t, applied, "no migrations applied")
	return pg.Pool, pg.DSN
}
