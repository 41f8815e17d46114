package queries

import (
	"context"
	"fmt"
	"math"
	"time"

	"liblend/internal/infra"
	"liblend/internal/pkg/clock"
	"liblend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound            = errs.New("book not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	dueSoonWindowDays  = 3
	analyticsTopGenres = 5
	analyticsWindow    = 30 * 24 * time.Hour
)

type BookListResult struct {
	Books  []*BookView `json:"books"`
	Total  int64       `json:"total"`
	Page   int         `json:"page"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

type Notification struct {
	BookID    uuid.UUID `json:"book_id"`
	Title     string    `json:"title"`
	DueDate   time.Time `json:"due_date"`
	Type      string    `json:"type"` // "overdue" or "due_soon"
	DaysValue int       `json:"days_value"`
	Message   string    `json:"message"`
}

type LibraryAnalytics struct {
	TotalBooks       int64        `json:"total_books"`
	AvailableBooks   int64        `json:"available_books"`
	CheckedOutBooks  int64        `json:"checked_out_books"`
	TopGenres        []GenreCount `json:"top_genres"`
	RecentCheckouts  int64        `json:"recent_checkouts_30d"`
	UtilizationRate  float64      `json:"utilization_rate"`
}

type BookQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, filter BookFilter, page, limit int) (*BookListResult, error)
	MyCheckouts(ctx context.Context, userID uuid.UUID) ([]*BookView, error)
	Genres(ctx context.Context) ([]string, error)
	Notifications(ctx context.Context, userID uuid.UUID) ([]*Notification, error)
	Analytics(ctx context.Context) (*LibraryAnalytics, error)
}

type bookQueriesImpl struct {
	books  BookReadStore
	ledger LedgerReadStore
	clock  clock.Clock
}

func NewBookQueries(books BookReadStore, ledger LedgerReadStore, clock clock.Clock) BookQueries {
	return &bookQueriesImpl{books: books, ledger: ledger, clock: clock}
}

func (q *bookQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookView, error) {
	view, err := q.books.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookQueriesImpl) List(ctx context.Context, filter BookFilter, page, limit int) (*BookListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	books, total, err := q.books.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if books == nil {
		books = []*BookView{}
	}

	return &BookListResult{
		Books:  books,
		Total:  total,
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (q *bookQueriesImpl) MyCheckouts(ctx context.Context, userID uuid.UUID) ([]*BookView, error) {
	filter := BookFilter{Status: "checked_out", CheckedOutBy: &userID}
	books, _, err := q.books.List(ctx, filter, 100, 0)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if books == nil {
		books = []*BookView{}
	}
	return books, nil
}

func (q *bookQueriesImpl) Genres(ctx context.Context) ([]string, error) {
	genres, err := q.books.DistinctGenres(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if genres == nil {
		genres = []string{}
	}
	return genres, nil
}

// Notifications reports the caller's overdue loans and loans due within the
// next three days. Day counts are computed against midnight so a loan due
// later today is "due in 0 days", not overdue.
func (q *bookQueriesImpl) Notifications(ctx context.Context, userID uuid.UUID) ([]*Notification, error) {
	books, err := q.MyCheckouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := clock.Today(q.clock)
	notifications := []*Notification{}
	for _, b := range books {
		if b.DueDate == nil {
			continue
		}
		d := *b.DueDate
		due := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		days := int(due.Sub(today).Hours() / 24)

		switch {
		case days < 0:
			overdue := -days
			notifications = append(notifications, &Notification{
				BookID:    b.ID,
				Title:     b.Title,
				DueDate:   *b.DueDate,
				Type:      "overdue",
				DaysValue: overdue,
				Message:   fmt.Sprintf("%q is %d days overdue", b.Title, overdue),
			})
		case days <= dueSoonWindowDays:
			notifications = append(notifications, &Notification{
				BookID:    b.ID,
				Title:     b.Title,
				DueDate:   *b.DueDate,
				Type:      "due_soon",
				DaysValue: days,
				Message:   fmt.Sprintf("%q is due in %d days", b.Title, days),
			})
		}
	}
	return notifications, nil
}

func (q *bookQueriesImpl) Analytics(ctx context.Context) (*LibraryAnalytics, error) {
	total, err := q.books.CountAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	available, err := q.books.CountByStatus(ctx, "available")
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	checkedOut, err := q.books.CountByStatus(ctx, "checked_out")
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	topGenres, err := q.books.GenreCounts(ctx, analyticsTopGenres)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	recent, err := q.ledger.CountSince(ctx, q.clock.Now().Add(-analyticsWindow))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var utilization float64
	if total > 0 {
		utilization = math.Round(float64(checkedOut)/float64(total)*10000) / 100
	}

	if topGenres == nil {
		topGenres = []GenreCount{}
	}

	return &LibraryAnalytics{
		TotalBooks:      total,
		AvailableBooks:  available,
		CheckedOutBooks: checkedOut,
		TopGenres:       topGenres,
		RecentCheckouts: recent,
		UtilizationRate: utilization,
	}, nil
}
