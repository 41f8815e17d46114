package writerepo

import (
	"context"
	"time"

	"liblend/internal/domain/book"
	"liblend/internal/infra"
	"liblend/internal/pkg/clock"
	"liblend/internal/usecase/commands"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookSelectColumns = []string{
	"id", "title", "author", "genre", "isbn", "publication_year",
	"description", "publisher", "pages", "language", "location",
	"condition", "status", "checked_out_by", "checked_out_at", "due_date",
	"added_by", "created_at", "updated_at",
}

func scanAggregate(row pgx.Row) (*book.Book, error) {
	var (
		id, addedBy                               uuid.UUID
		title, author, genre, language            string
		isbn, description, publisher, location    *string
		publicationYear, pages                    *int
		conditionRaw, statusRaw                   string
		checkedOutBy                              *uuid.UUID
		checkedOutAt, dueDate                     *time.Time
		createdAt, updatedAt                      time.Time
	)

	err := row.Scan(
		&id, &title, &author, &genre, &isbn, &publicationYear,
		&description, &publisher, &pages, &language, &location,
		&conditionRaw, &statusRaw, &checkedOutBy, &checkedOutAt, &dueDate,
		&addedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	condition, err := book.NewCondition(conditionRaw)
	if err != nil {
		return nil, err
	}
	status, err := book.NewStatus(statusRaw)
	if err != nil {
		return nil, err
	}

	return book.ReconstructBook(
		id, title, author, genre, isbn, publicationYear,
		description, publisher, pages, language, location,
		condition, status, checkedOutBy, checkedOutAt, dueDate,
		addedBy, createdAt, updatedAt,
	), nil
}

// BookWriteRepo applies every lending transition as one conditional UPDATE
// (update-where-status-matches). If the precondition no longer holds the
// statement touches zero rows, which closes the read-then-write race
// between concurrent checkouts.
type BookWriteRepo struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewBookWriteRepo(pool *pgxpool.Pool, clock clock.Clock) *BookWriteRepo {
	return &BookWriteRepo{pool: pool, clock: clock}
}

// FindByID loads the aggregate for command-side validation. The loaded
// snapshot is advisory only; the subsequent conditional write re-checks the
// precondition.
func (r *BookWriteRepo) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query, args, err := psql.Select(bookSelectColumns...).
		From("books").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build book query", err)
	}

	b, err := scanAggregate(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}
	return b, nil
}

func (r *BookWriteRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*book.Book, error) {
	query, args, err := psql.Select(bookSelectColumns...).
		From("books").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build books query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find books by IDs", err)
	}
	defer rows.Close()

	var books []*book.Book
	for rows.Next() {
		b, err := scanAggregate(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookWriteRepo) Insert(ctx context.Context, b *book.Book) (uuid.UUID, error) {
	now := r.clock.Now()
	query, args, err := psql.Insert("books").
		Columns(
			"id", "title", "author", "genre", "isbn", "publication_year",
			"description", "publisher", "pages", "language", "location",
			"condition", "status", "added_by", "created_at", "updated_at",
		).
		Values(
			b.ID(), b.Title(), b.Author(), b.Genre(), b.ISBN(), b.PublicationYear(),
			b.Description(), b.Publisher(), b.Pages(), b.Language(), b.Location(),
			b.Condition().String(), b.Status().String(), b.AddedBy(), now, now,
		).
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build book insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert book", err)
	}
	return b.ID(), nil
}

func (r *BookWriteRepo) Update(ctx context.Context, id uuid.UUID, patch commands.BookPatch) error {
	builder := psql.Update("books").Set("updated_at", r.clock.Now())
	for col, val := range patch.Fields() {
		builder = builder.Set(col, val)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build book update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

// ApplyCheckout performs the available -> checked_out transition. Zero rows
// affected means the book was taken (or removed) concurrently.
func (r *BookWriteRepo) ApplyCheckout(ctx context.Context, bookID uuid.UUID, loan *book.Loan) error {
	query, args, err := psql.Update("books").
		Set("status", book.StatusCheckedOut.String()).
		Set("checked_out_by", loan.UserID).
		Set("checked_out_at", loan.CheckedOutAt).
		Set("due_date", loan.DueDate).
		Set("updated_at", r.clock.Now()).
		Where(sq.Eq{"id": bookID, "status": book.StatusAvailable.String()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build checkout update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to apply checkout", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book no longer available", nil, infra.KindPreconditionFailed)
	}
	return nil
}

// ApplyCheckin clears the loan fields, conditional on the caller still
// being the holder.
func (r *BookWriteRepo) ApplyCheckin(ctx context.Context, bookID, userID uuid.UUID) error {
	query, args, err := psql.Update("books").
		Set("status", book.StatusAvailable.String()).
		Set("checked_out_by", nil).
		Set("checked_out_at", nil).
		Set("due_date", nil).
		Set("updated_at", r.clock.Now()).
		Where(sq.Eq{
			"id":             bookID,
			"status":         book.StatusCheckedOut.String(),
			"checked_out_by": userID,
		}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build checkin update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to apply checkin", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not held by user", nil, infra.KindPreconditionFailed)
	}
	return nil
}

func (r *BookWriteRepo) ApplyRenewal(ctx context.Context, bookID, userID uuid.UUID, newDueDate time.Time) error {
	query, args, err := psql.Update("books").
		Set("due_date", newDueDate).
		Set("updated_at", r.clock.Now()).
		Where(sq.Eq{
			"id":             bookID,
			"status":         book.StatusCheckedOut.String(),
			"checked_out_by": userID,
		}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build renewal update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to apply renewal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not held by user", nil, infra.KindPreconditionFailed)
	}
	return nil
}

// Delete removes a book unless it is out on loan.
func (r *BookWriteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("books").
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"status": book.StatusCheckedOut.String()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build book delete", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book checked out or missing", nil, infra.KindPreconditionFailed)
	}
	return nil
}

// DeleteMany removes the given books, skipping any that are checked out,
// and returns the IDs actually removed.
func (r *BookWriteRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := psql.Delete("books").
		Where(sq.Eq{"id": ids}).
		Where(sq.NotEq{"status": book.StatusCheckedOut.String()}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bulk delete", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to bulk delete books", err)
	}
	defer rows.Close()

	var deleted []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deleted id", err)
		}
		deleted = append(deleted, id)
	}
	return deleted, rows.Err()
}
