package common

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

// batchRows caps rows per multi-row INSERT so the bound parameter count stays
// under every driver's limit.
const batchRows = 200

// Dialect holds what differs between database/sql backends.
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat
	// Returning fetches generated ids with RETURNING; otherwise LastInsertId.
	Returning bool
	// Truncate empties the given tables on the sink's connection.
	Truncate func(ctx context.Context, ex Execer, tables []string) error
}

// Execer is satisfied by *sql.Tx and *sql.Conn.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// SQLSink writes rows through database/sql over one dedicated connection.
// Statements join an implicit transaction opened on first use; Commit ends it.
type SQLSink struct {
	db      *sql.DB
	conn    *sql.Conn
	tx      *sql.Tx
	dialect Dialect
	qb      squirrel.StatementBuilderType
}

// Open connects with the named database/sql driver and pins one connection.
func Open(ctx context.Context, driverName, url string, dialect Dialect) (*SQLSink, error) {
	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, Wrap("open database", err)
	}

	sink, err := NewSQLSink(ctx, db, dialect)
	if err != nil {
		db.Close()
		return nil, err
	}
	return sink, nil
}

// NewSQLSink takes ownership of db and reserves a single connection from it.
func NewSQLSink(ctx context.Context, db *sql.DB, dialect Dialect) (*SQLSink, error) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, Wrap("ping database", err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, Wrap("reserve connection", err)
	}

	return &SQLSink{
		db:      db,
		conn:    conn,
		dialect: dialect,
		qb:      squirrel.StatementBuilder.PlaceholderFormat(dialect.Placeholder),
	}, nil
}

func (s *SQLSink) Dialect() string {
	return s.dialect.Name
}

func (s *SQLSink) execer(ctx context.Context) (Execer, error) {
	if s.tx != nil {
		return s.tx, nil
	}
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, Wrap("begin transaction", err)
	}
	s.tx = tx
	return tx, nil
}

func (s *SQLSink) Truncate(ctx context.Context, tables ...string) error {
	if err := ValidateIdentifiers(tables...); err != nil {
		return err
	}
	ex, err := s.execer(ctx)
	if err != nil {
		return err
	}
	if err := s.dialect.Truncate(ctx, ex, tables); err != nil {
		return Wrap("truncate", err)
	}
	return nil
}

func (s *SQLSink) Insert(ctx context.Context, table string, row Row) error {
	query, args, err := s.insertSQL(table, row)
	if err != nil {
		return err
	}
	ex, err := s.execer(ctx)
	if err != nil {
		return err
	}
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return Wrap("insert into "+table, err)
	}
	return nil
}

func (s *SQLSink) InsertReturning(ctx context.Context, table string, row Row) (int64, error) {
	query, args, err := s.insertSQL(table, row)
	if err != nil {
		return 0, err
	}
	ex, err := s.execer(ctx)
	if err != nil {
		return 0, err
	}

	if s.dialect.Returning {
		var id int64
		if err := ex.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, Wrap("insert into "+table, err)
		}
		return id, nil
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, Wrap("insert into "+table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, Wrap("last insert id for "+table, err)
	}
	return id, nil
}

func (s *SQLSink) InsertBatch(ctx context.Context, table string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	ex, err := s.execer(ctx)
	if err != nil {
		return err
	}

	for start := 0; start < len(rows); start += batchRows {
		end := start + batchRows
		if end > len(rows) {
			end = len(rows)
		}
		query, args, err := BuildBatchInsert(s.qb, table, rows[start:end])
		if err != nil {
			return err
		}
		if _, err := ex.ExecContext(ctx, query, args...); err != nil {
			return Wrap(fmt.Sprintf("batch insert into %s (%d rows)", table, end-start), err)
		}
	}
	return nil
}

func (s *SQLSink) Update(ctx context.Context, table string, id int64, set Row) error {
	query, args, err := BuildUpdate(s.qb, table, id, set)
	if err != nil {
		return err
	}
	ex, err := s.execer(ctx)
	if err != nil {
		return err
	}
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return Wrap("update "+table, err)
	}
	return nil
}

func (s *SQLSink) Commit(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return Wrap("commit", err)
	}
	return nil
}

// Close rolls back any uncommitted work and releases the connection.
func (s *SQLSink) Close() error {
	if s.tx != nil {
		s.tx.Rollback()
		s.tx = nil
	}
	if s.conn != nil {
		s.conn.Close()
	}
	return s.db.Close()
}

// Count returns the number of rows in table as seen by the sink's connection.
func (s *SQLSink) Count(ctx context.Context, table string) (int, error) {
	if err := ValidateIdentifiers(table); err != nil {
		return 0, err
	}
	var ex Execer = s.conn
	if s.tx != nil {
		ex = s.tx
	}
	var n int
	if err := ex.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, Wrap("count "+table, err)
	}
	return n, nil
}

func (s *SQLSink) insertSQL(table string, row Row) (string, []interface{}, error) {
	if err := ValidateIdentifiers(table); err != nil {
		return "", nil, err
	}
	cols := row.Columns()
	if err := ValidateIdentifiers(cols...); err != nil {
		return "", nil, err
	}
	return s.qb.Insert(table).Columns(cols...).Values(row.Values(cols)...).ToSql()
}

// BuildBatchInsert builds one multi-row INSERT. Column order comes from the
// first row; later rows missing a column insert NULL for it.
func BuildBatchInsert(qb squirrel.StatementBuilderType, table string, rows []Row) (string, []interface{}, error) {
	if err := ValidateIdentifiers(table); err != nil {
		return "", nil, err
	}
	cols := rows[0].Columns()
	if err := ValidateIdentifiers(cols...); err != nil {
		return "", nil, err
	}

	b := qb.Insert(table).Columns(cols...)
	for _, row := range rows {
		b = b.Values(row.Values(cols)...)
	}
	return b.ToSql()
}

func BuildUpdate(qb squirrel.StatementBuilderType, table string, id int64, set Row) (string, []interface{}, error) {
	if err := ValidateIdentifiers(table); err != nil {
		return "", nil, err
	}
	cols := set.Columns()
	if err := ValidateIdentifiers(cols...); err != nil {
		return "", nil, err
	}
	return qb.Update(table).SetMap(set).Where(squirrel.Eq{"id": id}).ToSql()
}
