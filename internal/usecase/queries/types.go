package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookView struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Genre           string     `json:"genre"`
	ISBN            *string    `json:"isbn,omitempty"`
	PublicationYear *int       `json:"publication_year,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Publisher       *string    `json:"publisher,omitempty"`
	Pages           *int       `json:"pages,omitempty"`
	Language        string     `json:"language"`
	Location        *string    `json:"location,omitempty"`
	Condition       string     `json:"condition"`
	Status          string     `json:"status"`
	CheckedOutBy    *uuid.UUID `json:"checked_out_by,omitempty"`
	CheckedOutAt    *time.Time `json:"checked_out_at,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	AddedBy         uuid.UUID  `json:"added_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// HistoryItem is one ledger record joined with its book.
type HistoryItem struct {
	ID           uuid.UUID  `json:"id"`
	BookID       uuid.UUID  `json:"book_id"`
	UserID       uuid.UUID  `json:"user_id"`
	CheckedOutAt time.Time  `json:"checked_out_at"`
	DueDate      time.Time  `json:"due_date"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
	WasOverdue   *bool      `json:"was_overdue,omitempty"`
	Book         BookView   `json:"book"`
}

// Recommendation is transient: built, deduplicated, ranked, truncated,
// returned. Never persisted.
type Recommendation struct {
	Book   *BookView `json:"book"`
	Score  float64   `json:"score"`
	Reason string    `json:"reason"`
}

// BookCheckoutCount pairs a currently-available book with its all-time
// checkout count.
type BookCheckoutCount struct {
	Book  BookView
	Count int
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// BookFilter drives list and advanced search. Zero values mean "no filter".
type BookFilter struct {
	Status       string
	Condition    string
	Genre        string // exact match (list endpoint)
	GenreILike   string // substring match (advanced search)
	TitleILike   string
	AuthorILike  string
	ISBN         string
	Search       string // OR substring across title/author/description/genre
	YearFrom     int
	YearTo       int
	CheckedOutBy *uuid.UUID
}

// BookReadStore is the read-side store contract over the books table.
type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, filter BookFilter, limit, offset int) ([]*BookView, int64, error)
	AvailableByGenre(ctx context.Context, genre string, excludeIDs []uuid.UUID, limit int) ([]*BookView, error)
	AvailableByAuthor(ctx context.Context, author string, excludeIDs []uuid.UUID, limit int) ([]*BookView, error)
	AvailableBooks(ctx context.Context, excludeIDs []uuid.UUID, limit int) ([]*BookView, error)
	SearchAvailable(ctx context.Context, query string, limit int) ([]*BookView, error)
	DistinctGenres(ctx context.Context) ([]string, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	GenreCounts(ctx context.Context, limit int) ([]GenreCount, error)
}

// LedgerReadStore is the read-side contract over the checkout ledger.
type LedgerReadStore interface {
	HistoryForUser(ctx context.Context, userID uuid.UUID) ([]*HistoryItem, error)
	OpenLoansForUser(ctx context.Context, userID uuid.UUID) ([]*HistoryItem, error)
	PopularAvailable(ctx context.Context, limit int) ([]*BookCheckoutCount, error)
	CountRecords(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
