package readstore

import (
	"context"
	"time"

	"liblend/internal/infra"
	"liblend/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerJoinColumns selects the record plus the joined book, aliased so one
// scan covers both.
var ledgerJoinColumns = []string{
	"ch.id", "ch.book_id", "ch.user_id", "ch.checked_out_at", "ch.due_date",
	"ch.returned_at", "ch.was_overdue",
	"b.id", "b.title", "b.author", "b.genre", "b.isbn", "b.publication_year",
	"b.description", "b.publisher", "b.pages", "b.language", "b.location",
	"b.condition", "b.status", "b.checked_out_by", "b.checked_out_at", "b.due_date",
	"b.added_by", "b.created_at", "b.updated_at",
}

type LedgerReadStore struct {
	pool *pgxpool.Pool
}

func NewLedgerReadStore(pool *pgxpool.Pool) *LedgerReadStore {
	return &LedgerReadStore{pool: pool}
}

func (r *LedgerReadStore) HistoryForUser(ctx context.Context, userID uuid.UUID) ([]*queries.HistoryItem, error) {
	return r.historyWhere(ctx, sq.Eq{"ch.user_id": userID})
}

func (r *LedgerReadStore) OpenLoansForUser(ctx context.Context, userID uuid.UUID) ([]*queries.HistoryItem, error) {
	return r.historyWhere(ctx, sq.And{
		sq.Eq{"ch.user_id": userID},
		sq.Eq{"ch.returned_at": nil},
	})
}

func (r *LedgerReadStore) historyWhere(ctx context.Context, where sq.Sqlizer) ([]*queries.HistoryItem, error) {
	query, args, err := psql.Select(ledgerJoinColumns...).
		From("checkout_history ch").
		Join("books b ON b.id = ch.book_id").
		Where(where).
		OrderBy("ch.checked_out_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build history query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query checkout history", err)
	}
	defer rows.Close()

	var items []*queries.HistoryItem
	for rows.Next() {
		var item queries.HistoryItem
		b := &item.Book
		err := rows.Scan(
			&item.ID, &item.BookID, &item.UserID, &item.CheckedOutAt, &item.DueDate,
			&item.ReturnedAt, &item.WasOverdue,
			&b.ID, &b.Title, &b.Author, &b.Genre, &b.ISBN, &b.PublicationYear,
			&b.Description, &b.Publisher, &b.Pages, &b.Language, &b.Location,
			&b.Condition, &b.Status, &b.CheckedOutBy, &b.CheckedOutAt, &b.DueDate,
			&b.AddedBy, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// PopularAvailable counts checkouts per book across the whole ledger,
// restricted to currently-available books, most borrowed first.
func (r *LedgerReadStore) PopularAvailable(ctx context.Context, limit int) ([]*queries.BookCheckoutCount, error) {
	cols := append([]string{}, bookColumns...)
	for i, c := range cols {
		cols[i] = "b." + c
	}
	cols = append(cols, "count(ch.id)")

	query, args, err := psql.Select(cols...).
		From("checkout_history ch").
		Join("books b ON b.id = ch.book_id").
		Where(sq.Eq{"b.status": "available"}).
		GroupBy("b.id").
		OrderBy("count(ch.id) DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build popularity query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query popular books", err)
	}
	defer rows.Close()

	var counts []*queries.BookCheckoutCount
	for rows.Next() {
		var bc queries.BookCheckoutCount
		b := &bc.Book
		err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Genre, &b.ISBN, &b.PublicationYear,
			&b.Description, &b.Publisher, &b.Pages, &b.Language, &b.Location,
			&b.Condition, &b.Status, &b.CheckedOutBy, &b.CheckedOutAt, &b.DueDate,
			&b.AddedBy, &b.CreatedAt, &b.UpdatedAt,
			&bc.Count,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan popularity row", err)
		}
		counts = append(counts, &bc)
	}
	return counts, rows.Err()
}

func (r *LedgerReadStore) CountRecords(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, nil)
}

func (r *LedgerReadStore) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.countWhere(ctx, sq.GtOrEq{"checked_out_at": since})
}

func (r *LedgerReadStore) countWhere(ctx context.Context, where sq.Sqlizer) (int64, error) {
	builder := psql.Select("count(*)").From("checkout_history")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build ledger count query", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count ledger records", err)
	}
	return total, nil
}
