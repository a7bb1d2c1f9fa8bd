package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dbConnectTimeout = 5 * time.Second
	dbPingTimeout    = 2 * time.Second
)

// OpenRegistryDB opens the pool backing the project registry and the health
// probe. The DSN is optional at the config level; callers skip this entirely
// when running on the in-memory registry.
func OpenRegistryDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}

	cctx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
	defer cancel()

	pool, err := pgxpool.New(cctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("registry db connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, dbPingTimeout)
	defer pcancel()

	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("registry db ping: %w", err)
	}

	return pool, nil
}
