package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of a connection pool readiness checks and shutdown need
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig describes how to reach and size the catalog database
type PoolConfig struct {
	ConnString  string
	MaxConns    int
	MaxConnIdle time.Duration
	MaxConnLife time.Duration

	// PingTimeout bounds the connectivity check; zero uses DefaultPingTimeout
	PingTimeout time.Duration
}

// NewPool creates a pgx pool and verifies it can reach the server.
// The pool is closed again if the first ping fails.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	poolConfig.MaxConns = int32(min(max(cfg.MaxConns, 1), math.MaxInt32))
	poolConfig.MinConns = min(DefaultMinConnections, poolConfig.MaxConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLife
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdle

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = DefaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", poolConfig.ConnConfig.Host,
		"database", poolConfig.ConnConfig.Database,
		"max_conns", poolConfig.MaxConns)
	return pool, nil
}
