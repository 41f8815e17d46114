package readstore

import (
	"context"

	"liblend/internal/infra"
	"liblend/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookColumns = []string{
	"id", "title", "author", "genre", "isbn", "publication_year",
	"description", "publisher", "pages", "language", "location",
	"condition", "status", "checked_out_by", "checked_out_at", "due_date",
	"added_by", "created_at", "updated_at",
}

type BookReadStore struct {
	pool *pgxpool.Pool
}

func NewBookReadStore(pool *pgxpool.Pool) *BookReadStore {
	return &BookReadStore{pool: pool}
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	query, args, err := psql.Select(bookColumns...).
		From("books").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build book query", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)
	view, err := scanBook(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}
	return view, nil
}

func (r *BookReadStore) List(ctx context.Context, filter queries.BookFilter, limit, offset int) ([]*queries.BookView, int64, error) {
	where := buildBookFilter(filter)

	countQuery, countArgs, err := psql.Select("count(*)").From("books").Where(where).ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build book count query", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count books", err)
	}

	query, args, err := psql.Select(bookColumns...).
		From("books").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build book list query", err)
	}

	views, err := r.queryBooks(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *BookReadStore) AvailableByGenre(ctx context.Context, genre string, excludeIDs []uuid.UUID, limit int) ([]*queries.BookView, error) {
	return r.available(ctx, sq.Eq{"genre": genre}, excludeIDs, limit)
}

func (r *BookReadStore) AvailableByAuthor(ctx context.Context, author string, excludeIDs []uuid.UUID, limit int) ([]*queries.BookView, error) {
	return r.available(ctx, sq.Eq{"author": author}, excludeIDs, limit)
}

func (r *BookReadStore) AvailableBooks(ctx context.Context, excludeIDs []uuid.UUID, limit int) ([]*queries.BookView, error) {
	return r.available(ctx, nil, excludeIDs, limit)
}

func (r *BookReadStore) available(ctx context.Context, extra sq.Sqlizer, excludeIDs []uuid.UUID, limit int) ([]*queries.BookView, error) {
	builder := psql.Select(bookColumns...).
		From("books").
		Where(sq.Eq{"status": "available"})
	if extra != nil {
		builder = builder.Where(extra)
	}
	if len(excludeIDs) > 0 {
		builder = builder.Where(sq.NotEq{"id": excludeIDs})
	}

	query, args, err := builder.Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build available books query", err)
	}
	return r.queryBooks(ctx, query, args)
}

// SearchAvailable runs a case-insensitive substring match across
// title/author/genre/description, restricted to available books.
func (r *BookReadStore) SearchAvailable(ctx context.Context, search string, limit int) ([]*queries.BookView, error) {
	pattern := "%" + search + "%"
	query, args, err := psql.Select(bookColumns...).
		From("books").
		Where(sq.Eq{"status": "available"}).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
			sq.ILike{"genre": pattern},
			sq.ILike{"description": pattern},
		}).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build search query", err)
	}
	return r.queryBooks(ctx, query, args)
}

func (r *BookReadStore) DistinctGenres(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("DISTINCT genre").
		From("books").
		Where(sq.NotEq{"genre": ""}).
		OrderBy("genre").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build genres query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list genres", err)
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, infra.WrapRepoErr("failed to scan genre", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *BookReadStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.count(ctx, sq.Eq{"status": status})
}

func (r *BookReadStore) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

func (r *BookReadStore) count(ctx context.Context, where sq.Sqlizer) (int64, error) {
	builder := psql.Select("count(*)").From("books")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build count query", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count books", err)
	}
	return total, nil
}

func (r *BookReadStore) GenreCounts(ctx context.Context, limit int) ([]queries.GenreCount, error) {
	query, args, err := psql.Select("genre", "count(*)").
		From("books").
		GroupBy("genre").
		OrderBy("count(*) DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build genre counts query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count genres", err)
	}
	defer rows.Close()

	var counts []queries.GenreCount
	for rows.Next() {
		var gc queries.GenreCount
		if err := rows.Scan(&gc.Genre, &gc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan genre count", err)
		}
		counts = append(counts, gc)
	}
	return counts, rows.Err()
}

func (r *BookReadStore) queryBooks(ctx context.Context, query string, args []any) ([]*queries.BookView, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query books", err)
	}
	defer rows.Close()

	var views []*queries.BookView
	for rows.Next() {
		view, err := scanBook(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func buildBookFilter(filter queries.BookFilter) sq.And {
	var where sq.And
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}
	if filter.Condition != "" {
		where = append(where, sq.Eq{"condition": filter.Condition})
	}
	if filter.Genre != "" {
		where = append(where, sq.Eq{"genre": filter.Genre})
	}
	if filter.GenreILike != "" {
		where = append(where, sq.ILike{"genre": "%" + filter.GenreILike + "%"})
	}
	if filter.TitleILike != "" {
		where = append(where, sq.ILike{"title": "%" + filter.TitleILike + "%"})
	}
	if filter.AuthorILike != "" {
		where = append(where, sq.ILike{"author": "%" + filter.AuthorILike + "%"})
	}
	if filter.ISBN != "" {
		where = append(where, sq.Eq{"isbn": filter.ISBN})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"genre": pattern},
		})
	}
	if filter.YearFrom != 0 {
		where = append(where, sq.GtOrEq{"publication_year": filter.YearFrom})
	}
	if filter.YearTo != 0 {
		where = append(where, sq.LtOrEq{"publication_year": filter.YearTo})
	}
	if filter.CheckedOutBy != nil {
		where = append(where, sq.Eq{"checked_out_by": *filter.CheckedOutBy})
	}
	if len(where) == 0 {
		// squirrel renders an empty And as "(1=1)" equivalent via TRUE
		where = append(where, sq.Expr("TRUE"))
	}
	return where
}

func scanBook(row pgx.Row) (*queries.BookView, error) {
	var v queries.BookView
	err := row.Scan(
		&v.ID, &v.Title, &v.Author, &v.Genre, &v.ISBN, &v.PublicationYear,
		&v.Description, &v.Publisher, &v.Pages, &v.Language, &v.Location,
		&v.Condition, &v.Status, &v.CheckedOutBy, &v.CheckedOutAt, &v.DueDate,
		&v.AddedBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
