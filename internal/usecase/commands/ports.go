package commands

import (
	"context"
	"time"

	"liblend/internal/domain/book"

	"github.com/google/uuid"
)

// BookRepository is the write-side port for the books table. Transition
// methods are single conditional writes: they fail with a precondition
// error instead of overwriting state that changed after the read.
type BookRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*book.Book, error)
	Insert(ctx context.Context, b *book.Book) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch BookPatch) error
	ApplyCheckout(ctx context.Context, bookID uuid.UUID, loan *book.Loan) error
	ApplyCheckin(ctx context.Context, bookID, userID uuid.UUID) error
	ApplyRenewal(ctx context.Context, bookID, userID uuid.UUID, newDueDate time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

// LedgerRepository is the write-side port for the checkout ledger.
type LedgerRepository interface {
	Append(ctx context.Context, bookID, userID uuid.UUID, checkedOutAt, dueDate time.Time) error
	CloseOpen(ctx context.Context, bookID, userID uuid.UUID, returnedAt time.Time, wasOverdue bool) error
}

// BookPatch carries the optional fields of a partial book update. Nil
// means "leave unchanged".
type BookPatch struct {
	Title           *string
	Author          *string
	Genre           *string
	ISBN            *string
	PublicationYear *int
	Description     *string
	Publisher       *string
	Pages           *int
	Language        *string
	Location        *string
	Condition       *string
}

// Fields maps set patch members to their column names.
func (p BookPatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Author != nil {
		fields["author"] = *p.Author
	}
	if p.Genre != nil {
		fields["genre"] = *p.Genre
	}
	if p.ISBN != nil {
		fields["isbn"] = *p.ISBN
	}
	if p.PublicationYear != nil {
		fields["publication_year"] = *p.PublicationYear
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Publisher != nil {
		fields["publisher"] = *p.Publisher
	}
	if p.Pages != nil {
		fields["pages"] = *p.Pages
	}
	if p.Language != nil {
		fields["language"] = *p.Language
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.Condition != nil {
		fields["condition"] = *p.Condition
	}
	return fields
}

func (p BookPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}
