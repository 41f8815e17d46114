//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"liblend/internal/domain/book"
	"liblend/internal/infra"
	"liblend/internal/pkg/clock"
	"liblend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookRepo struct {
	books map[uuid.UUID]*book.Book

	checkoutErr error
	checkinErr  error
	renewalErr  error

	appliedCheckout *book.Loan
	appliedRenewal  *time.Time
	checkinApplied  bool
}

func newStubBookRepo(books ...*book.Book) *stubBookRepo {
	m := make(map[uuid.UUID]*book.Book)
	for _, b := range books {
		m[b.ID()] = b
	}
	return &stubBookRepo{books: m}
}

func (s *stubBookRepo) FindByID(_ context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return nil, infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (s *stubBookRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*book.Book, error) {
	var found []*book.Book
	for _, id := range ids {
		if b, ok := s.books[id]; ok {
			found = append(found, b)
		}
	}
	return found, nil
}

func (s *stubBookRepo) Insert(_ context.Context, b *book.Book) (uuid.UUID, error) {
	s.books[b.ID()] = b
	return b.ID(), nil
}

func (s *stubBookRepo) Update(_ context.Context, id uuid.UUID, _ BookPatch) error {
	if _, ok := s.books[id]; !ok {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *stubBookRepo) ApplyCheckout(_ context.Context, _ uuid.UUID, loan *book.Loan) error {
	if s.checkoutErr != nil {
		return s.checkoutErr
	}
	s.appliedCheckout = loan
	return nil
}

func (s *stubBookRepo) ApplyCheckin(_ context.Context, _, _ uuid.UUID) error {
	if s.checkinErr != nil {
		return s.checkinErr
	}
	s.checkinApplied = true
	return nil
}

func (s *stubBookRepo) ApplyRenewal(_ context.Context, _, _ uuid.UUID, newDueDate time.Time) error {
	if s.renewalErr != nil {
		return s.renewalErr
	}
	s.appliedRenewal = &newDueDate
	return nil
}

func (s *stubBookRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.books, id)
	return nil
}

func (s *stubBookRepo) DeleteMany(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var deleted []uuid.UUID
	for _, id := range ids {
		if _, ok := s.books[id]; ok {
			delete(s.books, id)
			deleted = append(deleted, id)
		}
	}
	return deleted, nil
}

type stubLedgerRepo struct {
	appendErr error
	closeErr  error

	appended int
	closed   int
}

func (s *stubLedgerRepo) Append(_ context.Context, _, _ uuid.UUID, _, _ time.Time) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended++
	return nil
}

func (s *stubLedgerRepo) CloseOpen(_ context.Context, _, _ uuid.UUID, _ time.Time, _ bool) error {
	if s.closeErr != nil {
		return s.closeErr
	}
	s.closed++
	return nil
}

func availableBook(id uuid.UUID) *book.Book {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return book.ReconstructBook(
		id, "The Go Programming Language", "Alan Donovan", "Technology",
		nil, nil, nil, nil, nil, "English", nil,
		book.ConditionGood, book.StatusAvailable,
		nil, nil, nil,
		uuid.New(), now, now,
	)
}

func checkedOutBook(id, holderID uuid.UUID, dueDate time.Time) *book.Book {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	checkedOutAt := dueDate.AddDate(0, 0, -14)
	return book.ReconstructBook(
		id, "The Go Programming Language", "Alan Donovan", "Technology",
		nil, nil, nil, nil, nil, "English", nil,
		book.ConditionGood, book.StatusCheckedOut,
		&holderID, &checkedOutAt, &dueDate,
		uuid.New(), now, now,
	)
}

func TestLendingCommands_Checkout(t *testing.T) {
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("success sets due date 14 whole days out", func(t *testing.T) {
		repo := newStubBookRepo(availableBook(bookID))
		ledger := &stubLedgerRepo{}
		uc := NewLendingCommands(repo, ledger, clock.NewMockClock(now))

		result, err := uc.Checkout(context.Background(), bookID, userID, 14)
		require.NoError(t, err)

		wantDue := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, wantDue, result.DueDate)
		assert.Equal(t, userID, result.CheckedOutBy)
		assert.Equal(t, 1, ledger.appended)
		require.NotNil(t, repo.appliedCheckout)
		assert.Equal(t, wantDue, repo.appliedCheckout.DueDate)
	})

	t.Run("unknown book", func(t *testing.T) {
		repo := newStubBookRepo()
		uc := NewLendingCommands(repo, &stubLedgerRepo{}, clock.NewMockClock(now))

		_, err := uc.Checkout(context.Background(), bookID, userID, 14)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("already checked out", func(t *testing.T) {
		repo := newStubBookRepo(checkedOutBook(bookID, uuid.New(), now.AddDate(0, 0, 7)))
		uc := NewLendingCommands(repo, &stubLedgerRepo{}, clock.NewMockClock(now))

		_, err := uc.Checkout(context.Background(), bookID, userID, 14)
		assert.ErrorIs(t, err, ErrBookNotAvailable)
	})

	t.Run("lost race maps to not available", func(t *testing.T) {
		repo := newStubBookRepo(availableBook(bookID))
		repo.checkoutErr = infra.WrapRepoErr("book no longer available", nil, infra.KindPreconditionFailed)
		uc := NewLendingCommands(repo, &stubLedgerRepo{}, clock.NewMockClock(now))

		_, err := uc.Checkout(context.Background(), bookID, userID, 14)
		assert.ErrorIs(t, err, ErrBookNotAvailable)
	})

	t.Run("non-positive days rejected", func(t *testing.T) {
		repo := newStubBookRepo(availableBook(bookID))
		uc := NewLendingCommands(repo, &stubLedgerRepo{}, clock.NewMockClock(now))

		_, err := uc.Checkout(context.Background(), bookID, userID, 0)
		assert.ErrorIs(t, err, ErrInvalidLendingInput)
	})

	t.Run("ledger append failure does not fail the checkout", func(t *testing.T) {
		repo := newStubBookRepo(availableBook(bookID))
		ledger := &stubLedgerRepo{appendErr: errs.New("ledger down")}
		uc := NewLendingCommands(repo, ledger, clock.NewMockClock(now))

		result, err := uc.Checkout(context.Background(), bookID, userID, 14)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 0, ledger.appended)
	})
}

func TestLendingCommands_Checkin(t *testing.T) {
	bookID := uuid.New()
	userID := uuid.New()

	t.Run("on-time return", func(t *testing.T) {
		due := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
		now := time.Date(2025, 3, 24, 18, 0, 0, 0, time.UTC)
		repo := newStubBookRepo(checkedOutBook(bookID, userID, due))
		ledger := &stubLedgerRepo{}
		uc := NewLendingCommands(repo, ledger, clock.NewMockClock(now))

		result, err := uc.Checkin(context.Background(), bookID, userID)
		require.NoError(t, err)
		assert.False(t, result.WasOverdue)
		assert.Nil(t, result.DaysOverdue)
		assert.Equal(t, 1, ledger.closed)
	})

	t.Run("overdue return reports whole days late", func(t *testing.T) {
		due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
		now := time.Date(2025, 3, 21, 10, 0, 0, 0, time.UTC)
		repo := newStubBookRepo(checkedOutBook(bookID, userID, due))
		uc := NewLendingCommands(repo, &stubLedgerRepo{}, clock.NewMockClock(now))

		result, err := uc.Checkin(context.Background(), bookID, userID)
		require.NoError(t, err)
		assert.True(t, result.WasOverdue)
		require.NotNil(t, result.DaysOverdue)
		assert.Equal(t, 6, *result.DaysOverdue)
	})

	t.Run("wrong holder rejected", func(t *testing.T) {
		due := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
		repo := newStubBookRepo(checkedOutBook(bookID, uuid.New(), due))
		uc := NewLendingCommands(repo, &stubLedgerRepo{}, clock.NewMockClock(due))

		_, err := uc.Checkin(context.Background(), bookID, userID)
		assert.ErrorIs(t, err, ErrNotCheckedOutByUser)
	})

	t.Run("ledger close failure does not fail the checkin", func(t *testing.T) {
		due := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
		repo := newStubBookRepo(checkedOutBook(bookID, userID, due))
		ledger := &stubLedgerRepo{closeErr: errs.New("ledger down")}
		uc := NewLendingCommands(repo, ledger, clock.NewMockClock(due))

		result, err := uc.Checkin(context.Background(), bookID, userID)
		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestLendingCommands_Renew(t *testing.T) {
	bookID := uuid.New()
	userID := uuid.New()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("extension is additive to the current due date", func(t *testing.T) {
		due := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		repo := newStubBookRepo(checkedOutBook(bookID, userID, due))
		uc := NewLendingCommands(repo, &stubLedgerRepo{}, clock.NewMockClock(now))

		result, err := uc.Renew(context.Background(), bookID, userID, 7)
		require.NoError(t, err)

		wantDue := time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, due, result.OldDueDate)
		assert.Equal(t, wantDue, result.NewDueDate)
		require.NotNil(t, repo.appliedRenewal)
		assert.Equal(t, wantDue, *repo.appliedRenewal)
	})

	t.Run("wrong holder rejected", func(t *testing.T) {
		due := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		repo := newStubBookRepo(checkedOutBook(bookID, uuid.New(), due))
		uc := NewLendingCommands(repo, &stubLedgerRepo{}, clock.NewMockClock(now))

		_, err := uc.Renew(context.Background(), bookID, userID, 7)
		assert.ErrorIs(t, err, ErrNotCheckedOutByUser)
	})

	t.Run("non-positive extension rejected", func(t *testing.T) {
		due := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		repo := newStubBookRepo(checkedOutBook(bookID, userID, due))
		uc := NewLendingCommands(repo, &stubLedgerRepo{}, clock.NewMockClock(now))

		_, err := uc.Renew(context.Background(), bookID, userID, -1)
		assert.ErrorIs(t, err, ErrInvalidLendingInput)
	})
}

func TestLendingCommands_FullCycle(t *testing.T) {
	bookID := uuid.New()
	userID := uuid.New()
	mockClock := clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	repo := newStubBookRepo(availableBook(bookID))
	ledger := &stubLedgerRepo{}
	uc := NewLendingCommands(repo, ledger, mockClock)

	out, err := uc.Checkout(context.Background(), bookID, userID, 14)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC), out.DueDate)

	// Returned 20 days after checkout: 6 days past the due date.
	mockClock.Add(20 * 24 * time.Hour)
	in, err := uc.Checkin(context.Background(), bookID, userID)
	require.NoError(t, err)
	assert.True(t, in.WasOverdue)
	require.NotNil(t, in.DaysOverdue)
	assert.Equal(t, 6, *in.DaysOverdue)

	assert.Equal(t, 1, ledger.appended)
	assert.Equal(t, 1, ledger.closed)
}
