package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/distria-seed/internal/database/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Adapter is the pgx-backed sink. The pool is capped at one connection so the
// whole run shares a single session.
type Adapter struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
	qb   squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return common.Wrap("parse connection URL", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 1
	config.MinConns = 0
	config.MaxConnLifetime = 2 * time.Hour
	config.MaxConnIdleTime = 15 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return common.Wrap("create connection pool", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return common.Wrap("ping database", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Dialect() string {
	return "postgresql"
}

func (p *Adapter) begin(ctx context.Context) (pgx.Tx, error) {
	if p.tx != nil {
		return p.tx, nil
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, common.Wrap("begin transaction", err)
	}
	p.tx = tx
	return tx, nil
}

func (p *Adapter) Truncate(ctx context.Context, tables ...string) error {
	if err := common.ValidateIdentifiers(tables...); err != nil {
		return err
	}
	tx, err := p.begin(ctx)
	if err != nil {
		return err
	}
	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		if _, err := tx.Exec(ctx, query); err != nil {
			return common.Wrap("truncate "+table, err)
		}
	}
	return nil
}

func (p *Adapter) Insert(ctx context.Context, table string, row common.Row) error {
	query, args, err := p.insertSQL(table, row)
	if err != nil {
		return err
	}
	tx, err := p.begin(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return common.Wrap("insert into "+table, err)
	}
	return nil
}

func (p *Adapter) InsertReturning(ctx context.Context, table string, row common.Row) (int64, error) {
	query, args, err := p.insertSQL(table, row)
	if err != nil {
		return 0, err
	}
	tx, err := p.begin(ctx)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRow(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
		return 0, common.Wrap("insert into "+table, err)
	}
	return id, nil
}

// InsertBatch queues one multi-row INSERT per chunk on a pgx.Batch so a
// phase costs a single round trip.
func (p *Adapter) InsertBatch(ctx context.Context, table string, rows []common.Row) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := p.begin(ctx)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for start := 0; start < len(rows); start += batchRows {
		end := start + batchRows
		if end > len(rows) {
			end = len(rows)
		}
		query, args, err := common.BuildBatchInsert(p.qb, table, rows[start:end])
		if err != nil {
			return err
		}
		batch.Queue(query, args...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return common.Wrap(fmt.Sprintf("batch insert into %s (%d rows)", table, len(rows)), err)
	}
	return nil
}

func (p *Adapter) Update(ctx context.Context, table string, id int64, set common.Row) error {
	query, args, err := common.BuildUpdate(p.qb, table, id, set)
	if err != nil {
		return err
	}
	tx, err := p.begin(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return common.Wrap("update "+table, err)
	}
	return nil
}

func (p *Adapter) Commit(ctx context.Context) error {
	if p.tx == nil {
		return nil
	}
	tx := p.tx
	p.tx = nil
	if err := tx.Commit(ctx); err != nil {
		return common.Wrap("commit", err)
	}
	return nil
}

func (p *Adapter) Close() error {
	if p.tx != nil {
		p.tx.Rollback(context.Background())
		p.tx = nil
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) insertSQL(table string, row common.Row) (string, []interface{}, error) {
	if err := common.ValidateIdentifiers(table); err != nil {
		return "", nil, err
	}
	cols := row.Columns()
	if err := common.ValidateIdentifiers(cols...); err != nil {
		return "", nil, err
	}
	return p.qb.Insert(table).Columns(cols...).Values(row.Values(cols)...).ToSql()
}
