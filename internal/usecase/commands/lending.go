package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"liblend/internal/domain/book"
	"liblend/internal/infra"
	"liblend/internal/pkg/clock"
	"liblend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound            = errs.New("book not found")
	ErrBookNotAvailable        = errs.New("book not available")
	ErrNotCheckedOutByUser     = errs.New("book not checked out by user")
	ErrBookCheckedOut          = errs.New("book is checked out")
	ErrInvalidLendingInput     = errs.New("invalid lending input")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CheckoutResult struct {
	BookID       uuid.UUID `json:"book_id"`
	CheckedOutBy uuid.UUID `json:"checked_out_by"`
	CheckedOutAt time.Time `json:"checked_out_at"`
	DueDate      time.Time `json:"due_date"`
	Message      string    `json:"message"`
}

type CheckinResult struct {
	BookID      uuid.UUID `json:"book_id"`
	ReturnedAt  time.Time `json:"returned_at"`
	WasOverdue  bool      `json:"was_overdue"`
	DaysOverdue *int      `json:"days_overdue,omitempty"`
	Message     string    `json:"message"`
}

type RenewResult struct {
	BookID       uuid.UUID `json:"book_id"`
	OldDueDate   time.Time `json:"old_due_date"`
	NewDueDate   time.Time `json:"new_due_date"`
	ExtendedDays int       `json:"extended_days"`
	Message      string    `json:"message"`
}

type LendingCommands interface {
	Checkout(ctx context.Context, bookID, userID uuid.UUID, checkoutDays int) (*CheckoutResult, error)
	Checkin(ctx context.Context, bookID, userID uuid.UUID) (*CheckinResult, error)
	Renew(ctx context.Context, bookID, userID uuid.UUID, extendDays int) (*RenewResult, error)
}

type lendingUseCaseImpl struct {
	bookRepo   BookRepository
	ledgerRepo LedgerRepository
	clock      clock.Clock
}

func NewLendingCommands(bookRepo BookRepository, ledgerRepo LedgerRepository, clock clock.Clock) LendingCommands {
	return &lendingUseCaseImpl{
		bookRepo:   bookRepo,
		ledgerRepo: ledgerRepo,
		clock:      clock,
	}
}

func (u *lendingUseCaseImpl) Checkout(ctx context.Context, bookID, userID uuid.UUID, checkoutDays int) (*CheckoutResult, error) {
	b, err := u.loadBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	loan, err := b.Checkout(userID, u.clock.Now(), checkoutDays)
	if err != nil {
		switch err {
		case book.ErrNotAvailable:
			return nil, ErrBookNotAvailable
		case book.ErrInvalidCheckoutDays:
			return nil, errs.Mark(err, ErrInvalidLendingInput)
		default:
			return nil, err
		}
	}

	if err := u.bookRepo.ApplyCheckout(ctx, bookID, loan); err != nil {
		if infra.IsKind(err, infra.KindPreconditionFailed) {
			// Another checkout won the race after our read.
			return nil, ErrBookNotAvailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Ledger append is best-effort: the book transition stands even if the
	// history write fails, leaving a window the ledger catches up on later.
	if err := u.ledgerRepo.Append(ctx, bookID, userID, loan.CheckedOutAt, loan.DueDate); err != nil {
		slog.Warn("failed to append checkout record", "book_id", bookID, "user_id", userID, "error", err)
	}

	return &CheckoutResult{
		BookID:       bookID,
		CheckedOutBy: userID,
		CheckedOutAt: loan.CheckedOutAt,
		DueDate:      loan.DueDate,
		Message:      fmt.Sprintf("Book checked out successfully. Due date: %s", loan.DueDate.Format("2006-01-02")),
	}, nil
}

func (u *lendingUseCaseImpl) Checkin(ctx context.Context, bookID, userID uuid.UUID) (*CheckinResult, error) {
	b, err := u.loadBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	ret, err := b.Checkin(userID, u.clock.Now())
	if err != nil {
		if err == book.ErrNotHeldByUser {
			return nil, ErrNotCheckedOutByUser
		}
		return nil, err
	}

	if err := u.bookRepo.ApplyCheckin(ctx, bookID, userID); err != nil {
		if infra.IsKind(err, infra.KindPreconditionFailed) {
			return nil, ErrNotCheckedOutByUser
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Closing the ledger record is best-effort for the same reason as the
	// checkout append.
	if err := u.ledgerRepo.CloseOpen(ctx, bookID, userID, ret.ReturnedAt, ret.WasOverdue); err != nil {
		slog.Warn("failed to close checkout record", "book_id", bookID, "user_id", userID, "error", err)
	}

	message := "Book checked in successfully"
	if ret.WasOverdue {
		message = fmt.Sprintf("Book checked in successfully (was %d days overdue)", *ret.DaysOverdue)
	}

	return &CheckinResult{
		BookID:      bookID,
		ReturnedAt:  ret.ReturnedAt,
		WasOverdue:  ret.WasOverdue,
		DaysOverdue: ret.DaysOverdue,
		Message:     message,
	}, nil
}

func (u *lendingUseCaseImpl) Renew(ctx context.Context, bookID, userID uuid.UUID, extendDays int) (*RenewResult, error) {
	b, err := u.loadBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	oldDue := b.DueDate()

	newDue, err := b.Renew(userID, extendDays)
	if err != nil {
		switch err {
		case book.ErrNotHeldByUser:
			return nil, ErrNotCheckedOutByUser
		case book.ErrInvalidExtendDays:
			return nil, errs.Mark(err, ErrInvalidLendingInput)
		default:
			return nil, err
		}
	}

	if err := u.bookRepo.ApplyRenewal(ctx, bookID, userID, newDue); err != nil {
		if infra.IsKind(err, infra.KindPreconditionFailed) {
			return nil, ErrNotCheckedOutByUser
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &RenewResult{
		BookID:       bookID,
		OldDueDate:   *oldDue,
		NewDueDate:   newDue,
		ExtendedDays: extendDays,
		Message:      fmt.Sprintf("Loan renewed for %d additional days. New due date: %s", extendDays, newDue.Format("January 2, 2006")),
	}, nil
}

func (u *lendingUseCaseImpl) loadBook(ctx context.Context, bookID uuid.UUID) (*book.Book, error) {
	b, err := u.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}
