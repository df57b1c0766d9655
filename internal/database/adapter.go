package database

import (
	"context"

	"github.com/Rana718/distria-seed/internal/database/common"
)

type Row = common.Row

// Sink is where generated rows go. Every statement joins an implicit
// transaction that stays open until Commit; Close discards uncommitted work.
type Sink interface {
	// Truncate empties tables in the given order, cascading where supported.
	Truncate(ctx context.Context, tables ...string) error
	Insert(ctx context.Context, table string, row Row) error
	// InsertReturning inserts one row and returns its generated id.
	InsertReturning(ctx context.Context, table string, row Row) (int64, error)
	InsertBatch(ctx context.Context, table string, rows []Row) error
	Update(ctx context.Context, table string, id int64, set Row) error
	Commit(ctx context.Context) error
	Close() error
}
