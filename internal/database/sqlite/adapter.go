package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/distria-seed/internal/database/common"
	_ "github.com/mattn/go-sqlite3"
)

var Dialect = common.Dialect{
	Name:        "sqlite",
	Placeholder: squirrel.Question,
	Returning:   false,
	Truncate: func(ctx context.Context, ex common.Execer, tables []string) error {
		for _, table := range tables {
			if _, err := ex.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
				return fmt.Errorf("failed to truncate %s: %w", table, err)
			}
			// sqlite_sequence only exists once an AUTOINCREMENT table has been written.
			ex.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", table)
		}
		return nil
	},
}

// Open accepts a plain path, a file: URI, or a sqlite:// URL.
func Open(ctx context.Context, url string) (*common.SQLSink, error) {
	return common.Open(ctx, "sqlite3", normalizeURL(url), Dialect)
}

func normalizeURL(url string) string {
	for _, prefix := range []string{"sqlite3://", "sqlite://"} {
		if strings.HasPrefix(url, prefix) {
			return strings.TrimPrefix(url, prefix)
		}
	}
	return url
}
