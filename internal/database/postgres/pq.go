package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/distria-seed/internal/database/common"
	_ "github.com/lib/pq"
)

// batchRows mirrors common's chunk size for the pgx batch path.
const batchRows = 200

// PqDialect drives PostgreSQL through database/sql and lib/pq.
var PqDialect = common.Dialect{
	Name:        "postgresql",
	Placeholder: squirrel.Dollar,
	Returning:   true,
	Truncate: func(ctx context.Context, ex common.Execer, tables []string) error {
		for _, table := range tables {
			query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
			if _, err := ex.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("failed to truncate %s: %w", table, err)
			}
		}
		return nil
	},
}

// OpenPq opens a database/sql sink using the lib/pq driver.
func OpenPq(ctx context.Context, url string) (*common.SQLSink, error) {
	return common.Open(ctx, "postgres", url, PqDialect)
}
