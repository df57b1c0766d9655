package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/Rana718/distria-seed/internal/database/common"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

type Error = common.Error

// IsDatabaseError reports whether err came from the database layer: a driver
// error, a broken connection, or any failure the sinks wrapped on the way out.
func IsDatabaseError(err error) bool {
	if err == nil {
		return false
	}

	var (
		pgErr      *pgconn.PgError
		connectErr *pgconn.ConnectError
		pqErr      *pq.Error
		mysqlErr   *mysql.MySQLError
		sqliteErr  sqlite3.Error
		sinkErr    *common.Error
	)
	switch {
	case errors.As(err, &pgErr),
		errors.As(err, &connectErr),
		errors.As(err, &pqErr),
		errors.As(err, &mysqlErr),
		errors.As(err, &sqliteErr),
		errors.As(err, &sinkErr):
		return true
	}

	return errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, sql.ErrTxDone) ||
		errors.Is(err, driver.ErrBadConn)
}
