package database

import (
	"context"
	"fmt"

	"github.com/Rana718/distria-seed/internal/database/common"
	"github.com/Rana718/distria-seed/internal/database/mysql"
	"github.com/Rana718/distria-seed/internal/database/postgres"
	"github.com/Rana718/distria-seed/internal/database/sqlite"
)

// NewSink connects to the database named by provider. For PostgreSQL, driver
// picks pgx (default) or lib/pq.
func NewSink(ctx context.Context, provider, driver, url string) (Sink, error) {
	switch provider {
	case "postgresql", "postgres", "":
		if driver == "pq" {
			return sqlSink(postgres.OpenPq(ctx, url))
		}
		adapter := postgres.New()
		if err := adapter.Connect(ctx, url); err != nil {
			return nil, err
		}
		return adapter, nil
	case "mysql":
		return sqlSink(mysql.Open(ctx, url))
	case "sqlite", "sqlite3":
		return sqlSink(sqlite.Open(ctx, url))
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}

// sqlSink keeps a failed open from leaking a typed nil into the interface.
func sqlSink(s *common.SQLSink, err error) (Sink, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
