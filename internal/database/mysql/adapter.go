package mysql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/distria-seed/internal/database/common"
	"github.com/go-sql-driver/mysql"
)

// Dialect truncates with foreign key checks off for the session; MySQL has no
// TRUNCATE ... CASCADE.
var Dialect = common.Dialect{
	Name:        "mysql",
	Placeholder: squirrel.Question,
	Returning:   false,
	Truncate: func(ctx context.Context, ex common.Execer, tables []string) error {
		if _, err := ex.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
			return err
		}
		for _, table := range tables {
			if _, err := ex.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
				ex.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
				return fmt.Errorf("failed to truncate %s: %w", table, err)
			}
		}
		_, err := ex.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
		return err
	},
}

// Open connects with go-sql-driver/mysql. parseTime is forced on so DATETIME
// columns round-trip as time.Time.
func Open(ctx context.Context, url string) (*common.SQLSink, error) {
	cfg, err := mysql.ParseDSN(url)
	if err != nil {
		return nil, common.Wrap("parse mysql DSN", err)
	}
	cfg.ParseTime = true

	return common.Open(ctx, "mysql", cfg.FormatDSN(), Dialect)
}
