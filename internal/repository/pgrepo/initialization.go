package pgrepo

import (
	"context"
	"embed"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	// драйвер для применения миграций в postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// драйвер для чтения миграций из каталога (*.sql в нашем случае).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	defaultMaxAttempts   uint = 30
	defaultRetryInterval      = 3 * time.Second
)

// Connect открывает пул соединений с postgres, повторяя попытки пока база недоступна, и применяет миграции.
// Если migrationsDir пустой, применяются миграции, встроенные в бинарник.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	pool, connErr := connectWithRetry(ctx, dsn, defaultMaxAttempts, defaultRetryInterval, l)
	if connErr != nil {
		return nil, pkgerrors.Wrap(connErr, "init postgres connection")
	}

	if err := Migrate(migrationsDir, dsn); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func connectWithRetry(
	ctx context.Context,
	dsn string,
	maxAttempts uint,
	retryInterval time.Duration,
	l *logrus.Logger,
) (*pgxpool.Pool, error) {
	var attempt uint
	for {
		pool, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			return pool, nil
		}
		attempt++
		if attempt >= maxAttempts {
			return nil, pkgerrors.Wrapf(connErr, "giving up after %d attempts", attempt)
		}

		wait := time.Duration(jitter(float64(retryInterval), 0.15, 0.15)) //nolint:mnd
		l.WithError(connErr).
			WithField("CurrentAttempt", attempt).
			WithField("MaxAttempts", maxAttempts).
			Warnf("init postgres connection error, retrying in %.1f seconds", wait.Seconds())

		select {
		case <-ctx.Done():
			return nil, ctx.Err() //nolint:wrapcheck
		case <-time.After(wait):
		}
	}
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, pkgerrors.Wrap(confErr, "parse postgres config")
	}
	poolConfig.ConnConfig.RuntimeParams["timezone"] = "UTC"

	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, pkgerrors.Wrap(poolErr, "create pool")
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, pkgerrors.Wrap(pingErr, "ping postgres")
	}

	return pool, nil
}

// Migrate применяет миграции из каталога dir, либо встроенные миграции, если dir пустой.
func Migrate(dir string, dsn string) (err error) {
	m, mErr := newMigrate(dir, dsn)
	if mErr != nil {
		return pkgerrors.Wrap(mErr, "create migrate instance")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	if upErr := m.Up(); upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return pkgerrors.Wrap(upErr, "migrate schema")
	}
	return nil
}

func newMigrate(dir string, dsn string) (*migrate.Migrate, error) {
	if dir != "" {
		return migrate.New("file://"+dir, dsn) //nolint:wrapcheck
	}
	src, srcErr := iofs.New(migrationsFS, "migrations")
	if srcErr != nil {
		return nil, srcErr //nolint:wrapcheck
	}
	return migrate.NewWithSourceInstance("iofs", src, dsn) //nolint:wrapcheck
}

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}
