package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
)

// DBTX es lo mínimo que necesitan los repositorios; lo cumplen *pgxpool.Pool y pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool es un DBTX con ciclo de vida propio (un pool por servidor).
type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var _ Pool = (*pgxpool.Pool)(nil)

// PoolOptions parámetros de un pool.
type PoolOptions struct {
	MaxConns int
	// Ping verifica la conexión al crear el pool. La primaria lo usa para fallar en el arranque;
	// los pools de departamento se crean perezosos y el primer query revela si el servidor cae.
	Ping bool
}

// NewPool crea un pool de conexiones PostgreSQL para el DSN indicado.
func NewPool(ctx context.Context, dsn string, opts PoolOptions) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	maxConns := opts.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	poolConfig.MaxConns = int32(maxConns)
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Codec NUMERIC -> shopspring/decimal para notas y montos.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if opts.Ping {
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping DB: %w", err)
		}
	}
	return pool, nil
}

// PgxPoolFactory fábrica de pools de departamento usada por el Registry en producción.
func PgxPoolFactory(maxConns int) PoolFactory {
	return func(ctx context.Context, dsn string) (Pool, error) {
		pool, err := NewPool(ctx, dsn, PoolOptions{MaxConns: maxConns})
		if err != nil {
			return nil, err
		}
		return pool, nil
	}
}

// departmentConn resuelve el DBTX del departamento: el Registry en producción, la transacción en curso dentro de TxRunner.
type departmentConn interface {
	ForDepartment(ctx context.Context, department string) (DBTX, error)
}

// nullIfEmpty pasa NULL al procedimiento cuando el parámetro opcional viene vacío.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
