//go:build unit

package book_test

import (
	"testing"
	"time"

	"liblend/internal/domain/book"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func availableBook() *book.Book {
	return book.ReconstructBook(
		uuid.New(),
		"The Dispossessed", "Ursula K. Le Guin", "Science Fiction",
		nil, nil, nil, nil, nil,
		"English", nil,
		book.ConditionGood,
		book.StatusAvailable,
		nil, nil, nil,
		uuid.New(),
		date(2024, time.January, 1), date(2024, time.January, 1),
	)
}

func checkedOutBook(holder uuid.UUID, checkedOutAt, due time.Time) *book.Book {
	return book.ReconstructBook(
		uuid.New(),
		"The Dispossessed", "Ursula K. Le Guin", "Science Fiction",
		nil, nil, nil, nil, nil,
		"English", nil,
		book.ConditionGood,
		book.StatusCheckedOut,
		&holder, &checkedOutAt, &due,
		uuid.New(),
		date(2024, time.January, 1), date(2024, time.January, 1),
	)
}

func TestBook_Checkout(t *testing.T) {
	t.Run("sets loan fields and due date exactly checkout_days ahead", func(t *testing.T) {
		b := availableBook()
		userID := uuid.New()
		now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

		loan, err := b.Checkout(userID, now, 14)
		require.NoError(t, err)

		assert.Equal(t, book.StatusCheckedOut, b.Status())
		assert.Equal(t, userID, loan.UserID)
		assert.Equal(t, now, loan.CheckedOutAt)
		assert.Equal(t, date(2025, time.March, 24), loan.DueDate)
		assert.NoError(t, b.ValidateLoanFields())
	})

	t.Run("fails when book is not available", func(t *testing.T) {
		for _, status := range []book.Status{book.StatusReserved, book.StatusMaintenance} {
			b := book.ReconstructBook(
				uuid.New(), "t", "a", "g",
				nil, nil, nil, nil, nil, "English", nil,
				book.ConditionGood, status,
				nil, nil, nil,
				uuid.New(), date(2024, time.January, 1), date(2024, time.January, 1),
			)
			_, err := b.Checkout(uuid.New(), time.Now(), 14)
			assert.ErrorIs(t, err, book.ErrNotAvailable, "status %s", status)
		}
	})

	t.Run("fails when already checked out", func(t *testing.T) {
		b := checkedOutBook(uuid.New(), date(2025, time.March, 1), date(2025, time.March, 15))
		_, err := b.Checkout(uuid.New(), time.Now(), 14)
		assert.ErrorIs(t, err, book.ErrNotAvailable)
	})

	t.Run("rejects non-positive checkout days", func(t *testing.T) {
		b := availableBook()
		_, err := b.Checkout(uuid.New(), time.Now(), 0)
		assert.ErrorIs(t, err, book.ErrInvalidCheckoutDays)
		_, err = b.Checkout(uuid.New(), time.Now(), -3)
		assert.ErrorIs(t, err, book.ErrInvalidCheckoutDays)
	})
}

func TestBook_Checkin(t *testing.T) {
	holder := uuid.New()

	t.Run("on time return clears loan fields", func(t *testing.T) {
		b := checkedOutBook(holder, date(2025, time.March, 1), date(2025, time.March, 15))

		ret, err := b.Checkin(holder, date(2025, time.March, 15))
		require.NoError(t, err)

		assert.False(t, ret.WasOverdue)
		assert.Nil(t, ret.DaysOverdue)
		assert.Equal(t, book.StatusAvailable, b.Status())
		assert.Nil(t, b.CheckedOutBy())
		assert.Nil(t, b.CheckedOutAt())
		assert.Nil(t, b.DueDate())
		assert.NoError(t, b.ValidateLoanFields())
	})

	t.Run("overdue return reports days overdue", func(t *testing.T) {
		b := checkedOutBook(holder, date(2025, time.March, 1), date(2025, time.March, 15))

		ret, err := b.Checkin(holder, date(2025, time.March, 21))
		require.NoError(t, err)

		assert.True(t, ret.WasOverdue)
		require.NotNil(t, ret.DaysOverdue)
		assert.Equal(t, 6, *ret.DaysOverdue)
	})

	t.Run("only the holder may return", func(t *testing.T) {
		b := checkedOutBook(holder, date(2025, time.March, 1), date(2025, time.March, 15))
		_, err := b.Checkin(uuid.New(), date(2025, time.March, 10))
		assert.ErrorIs(t, err, book.ErrNotHeldByUser)
	})

	t.Run("fails when book is not checked out", func(t *testing.T) {
		b := availableBook()
		_, err := b.Checkin(holder, time.Now())
		assert.ErrorIs(t, err, book.ErrNotHeldByUser)
	})
}

func TestBook_Renew(t *testing.T) {
	holder := uuid.New()

	t.Run("extends the existing due date, not today", func(t *testing.T) {
		// Renewal long after checkout: extension is additive on the old due date.
		b := checkedOutBook(holder, date(2025, time.January, 1), date(2025, time.January, 15))

		newDue, err := b.Renew(holder, 7)
		require.NoError(t, err)

		assert.Equal(t, date(2025, time.January, 22), newDue)
		require.NotNil(t, b.DueDate())
		assert.Equal(t, date(2025, time.January, 22), *b.DueDate())
		assert.Equal(t, book.StatusCheckedOut, b.Status())
	})

	t.Run("only the holder may renew", func(t *testing.T) {
		b := checkedOutBook(holder, date(2025, time.January, 1), date(2025, time.January, 15))
		_, err := b.Renew(uuid.New(), 7)
		assert.ErrorIs(t, err, book.ErrNotHeldByUser)
	})

	t.Run("rejects non-positive extend days", func(t *testing.T) {
		b := checkedOutBook(holder, date(2025, time.January, 1), date(2025, time.January, 15))
		_, err := b.Renew(holder, 0)
		assert.ErrorIs(t, err, book.ErrInvalidExtendDays)
	})
}

func TestBook_EnsureDeletable(t *testing.T) {
	t.Run("available book can be deleted", func(t *testing.T) {
		assert.NoError(t, availableBook().EnsureDeletable())
	})

	t.Run("checked out book cannot be deleted", func(t *testing.T) {
		b := checkedOutBook(uuid.New(), date(2025, time.March, 1), date(2025, time.March, 15))
		assert.ErrorIs(t, b.EnsureDeletable(), book.ErrCheckedOut)
	})
}

func TestBook_ValidateLoanFields(t *testing.T) {
	holder := uuid.New()
	at := date(2025, time.March, 1)
	due := date(2025, time.March, 15)

	t.Run("checked_out requires all loan fields", func(t *testing.T) {
		b := book.ReconstructBook(
			uuid.New(), "t", "a", "g",
			nil, nil, nil, nil, nil, "English", nil,
			book.ConditionGood, book.StatusCheckedOut,
			&holder, &at, nil, // missing due date
			uuid.New(), at, at,
		)
		assert.ErrorIs(t, b.ValidateLoanFields(), book.ErrLoanFieldsMismatch)
	})

	t.Run("available requires all loan fields clear", func(t *testing.T) {
		b := book.ReconstructBook(
			uuid.New(), "t", "a", "g",
			nil, nil, nil, nil, nil, "English", nil,
			book.ConditionGood, book.StatusAvailable,
			&holder, &at, &due,
			uuid.New(), at, at,
		)
		assert.ErrorIs(t, b.ValidateLoanFields(), book.ErrLoanFieldsMismatch)
	})
}
