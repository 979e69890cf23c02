package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/concursos/internal/pkg/logger"
)

// Querier is the part of pgxpool.Pool the store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Pool is a Querier that can also be pinged and closed.
type Pool interface {
	Querier
	Ping(ctx context.Context) error
	Close()
}

type Options struct {
	URL      string
	MaxConns int32
	Retries  uint64
}

// Connect opens a pgx pool and pings it, retrying with exponential backoff.
func Connect(ctx context.Context, opts Options) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}

	var pool *pgxpool.Pool
	connect := func() error {
		p, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return err
		}
		if err = p.Ping(ctx); err != nil {
			p.Close()
			logger.Warnf(ctx, "database ping failed: %s", err.Error())
			return err
		}
		pool = p
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second

	err = backoff.Retry(connect, backoff.WithContext(backoff.WithMaxRetries(b, opts.Retries), ctx))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	return pool, nil
}

// Select runs the query and scans every row into T by column name.
func Select[T any](ctx context.Context, q Querier, query sq.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// Get is Select for a query that must return exactly one row.
func Get[T any](ctx context.Context, q Querier, query sq.Sqlizer) (T, error) {
	var zero T

	sql, args, err := query.ToSql()
	if err != nil {
		return zero, fmt.Errorf("ToSql: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}

	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
}
