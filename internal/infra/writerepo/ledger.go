package writerepo

import (
	"context"
	"time"

	"liblend/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerWriteRepo appends to the checkout ledger and closes open records.
// Rows are never deleted: the ledger is the historical source of truth for
// preference mining.
type LedgerWriteRepo struct {
	pool *pgxpool.Pool
}

func NewLedgerWriteRepo(pool *pgxpool.Pool) *LedgerWriteRepo {
	return &LedgerWriteRepo{pool: pool}
}

func (r *LedgerWriteRepo) Append(ctx context.Context, bookID, userID uuid.UUID, checkedOutAt, dueDate time.Time) error {
	query, args, err := psql.Insert("checkout_history").
		Columns("id", "book_id", "user_id", "checked_out_at", "due_date").
		Values(uuid.New(), bookID, userID, checkedOutAt, dueDate).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build ledger insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to append ledger record", err)
	}
	return nil
}

// CloseOpen stamps the single open record for (book, user). The one-open-
// record invariant makes the filter unambiguous; if no open record exists
// the close is a no-op and the caller decides whether that matters.
func (r *LedgerWriteRepo) CloseOpen(ctx context.Context, bookID, userID uuid.UUID, returnedAt time.Time, wasOverdue bool) error {
	query, args, err := psql.Update("checkout_history").
		Set("returned_at", returnedAt).
		Set("was_overdue", wasOverdue).
		Where(sq.Eq{
			"book_id":     bookID,
			"user_id":     userID,
			"returned_at": nil,
		}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build ledger close", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to close ledger record", err)
	}
	return nil
}
