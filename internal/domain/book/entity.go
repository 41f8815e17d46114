package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is the lending aggregate. Status transitions are computed here and
// applied by the infra layer as single conditional writes, so a stale
// in-memory copy can never overwrite a concurrent checkout.
type Book struct {
	id              uuid.UUID
	title           string
	author          string
	genre           string
	isbn            *string
	publicationYear *int
	description     *string
	publisher       *string
	pages           *int
	language        string
	location        *string
	condition       Condition
	status          Status
	checkedOutBy    *uuid.UUID
	checkedOutAt    *time.Time
	dueDate         *time.Time
	addedBy         uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructBook(
	id uuid.UUID,
	title, author, genre string,
	isbn *string,
	publicationYear *int,
	description, publisher *string,
	pages *int,
	language string,
	location *string,
	condition Condition,
	status Status,
	checkedOutBy *uuid.UUID,
	checkedOutAt, dueDate *time.Time,
	addedBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Book {
	return &Book{
		id:              id,
		title:           title,
		author:          author,
		genre:           genre,
		isbn:            isbn,
		publicationYear: publicationYear,
		description:     description,
		publisher:       publisher,
		pages:           pages,
		language:        language,
		location:        location,
		condition:       condition,
		status:          status,
		checkedOutBy:    checkedOutBy,
		checkedOutAt:    checkedOutAt,
		dueDate:         dueDate,
		addedBy:         addedBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ValidateLoanFields enforces the aggregate invariant: the three loan
// fields are all set iff the book is checked out, all clear otherwise.
func (b *Book) ValidateLoanFields() error {
	set := b.checkedOutBy != nil && b.checkedOutAt != nil && b.dueDate != nil
	clear := b.checkedOutBy == nil && b.checkedOutAt == nil && b.dueDate == nil

	if b.status == StatusCheckedOut {
		if !set {
			return ErrLoanFieldsMismatch
		}
		return nil
	}
	if !clear {
		return ErrLoanFieldsMismatch
	}
	return nil
}

// Loan is the mutation produced by a successful checkout.
type Loan struct {
	UserID       uuid.UUID
	CheckedOutAt time.Time
	DueDate      time.Time
}

// Checkout validates the available -> checked_out transition and computes
// the due date as the checkout date plus checkoutDays whole days. Bounds on
// checkoutDays beyond positivity are the boundary layer's concern.
func (b *Book) Checkout(userID uuid.UUID, now time.Time, checkoutDays int) (*Loan, error) {
	if checkoutDays <= 0 {
		return nil, ErrInvalidCheckoutDays
	}
	if b.status != StatusAvailable {
		return nil, ErrNotAvailable
	}

	due := truncateToDate(now).AddDate(0, 0, checkoutDays)
	loan := &Loan{
		UserID:       userID,
		CheckedOutAt: now,
		DueDate:      due,
	}

	b.status = StatusCheckedOut
	b.checkedOutBy = &loan.UserID
	b.checkedOutAt = &loan.CheckedOutAt
	b.dueDate = &loan.DueDate
	return loan, nil
}

// Return is the outcome of a successful checkin.
type Return struct {
	ReturnedAt  time.Time
	WasOverdue  bool
	DaysOverdue *int
}

// Checkin validates the checked_out -> available transition. Only the
// current holder may return the book. Overdue is strictly after the due
// date: returning on the due date itself is on time.
func (b *Book) Checkin(userID uuid.UUID, now time.Time) (*Return, error) {
	if b.status != StatusCheckedOut || b.checkedOutBy == nil || *b.checkedOutBy != userID {
		return nil, ErrNotHeldByUser
	}

	today := truncateToDate(now)
	due := truncateToDate(*b.dueDate)

	ret := &Return{ReturnedAt: now}
	if today.After(due) {
		days := int(today.Sub(due).Hours() / 24)
		ret.WasOverdue = true
		ret.DaysOverdue = &days
	}

	b.status = StatusAvailable
	b.checkedOutBy = nil
	b.checkedOutAt = nil
	b.dueDate = nil
	return ret, nil
}

// Renew extends the loan additively: the new due date is the existing due
// date plus extendDays, not a fresh window from today.
func (b *Book) Renew(userID uuid.UUID, extendDays int) (time.Time, error) {
	if extendDays <= 0 {
		return time.Time{}, ErrInvalidExtendDays
	}
	if b.status != StatusCheckedOut || b.checkedOutBy == nil || *b.checkedOutBy != userID {
		return time.Time{}, ErrNotHeldByUser
	}

	newDue := b.dueDate.AddDate(0, 0, extendDays)
	b.dueDate = &newDue
	return newDue, nil
}

// EnsureDeletable blocks removal of a book that is out on loan.
func (b *Book) EnsureDeletable() error {
	if b.status == StatusCheckedOut {
		return ErrCheckedOut
	}
	return nil
}

func (b *Book) ID() uuid.UUID            { return b.id }
func (b *Book) Title() string            { return b.title }
func (b *Book) Author() string           { return b.author }
func (b *Book) Genre() string            { return b.genre }
func (b *Book) ISBN() *string            { return b.isbn }
func (b *Book) PublicationYear() *int    { return b.publicationYear }
func (b *Book) Description() *string     { return b.description }
func (b *Book) Publisher() *string       { return b.publisher }
func (b *Book) Pages() *int              { return b.pages }
func (b *Book) Language() string         { return b.language }
func (b *Book) Location() *string        { return b.location }
func (b *Book) Condition() Condition     { return b.condition }
func (b *Book) Status() Status           { return b.status }
func (b *Book) CheckedOutBy() *uuid.UUID { return b.checkedOutBy }
func (b *Book) CheckedOutAt() *time.Time { return b.checkedOutAt }
func (b *Book) DueDate() *time.Time      { return b.dueDate }
func (b *Book) AddedBy() uuid.UUID       { return b.addedBy }
func (b *Book) CreatedAt() time.Time     { return b.createdAt }
func (b *Book) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Book) IsAvailable() bool {
	return b.status == StatusAvailable
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
