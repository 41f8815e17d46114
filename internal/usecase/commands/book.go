package commands

import (
	"context"
	"fmt"
	"strings"

	"liblend/internal/domain/book"
	"liblend/internal/infra"
	"liblend/internal/pkg/clock"
	"liblend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidBookInput = errs.New("invalid book input")

type CreateBookParams struct {
	Title           string
	Author          string
	Genre           string
	ISBN            *string
	PublicationYear *int
	Description     *string
	Publisher       *string
	Pages           *int
	Language        string
	Location        *string
	Condition       string
}

type BulkDeleteResult struct {
	DeletedCount int         `json:"deleted_count"`
	DeletedIDs   []uuid.UUID `json:"deleted_ids"`
	Message      string      `json:"message"`
}

type BookCommands interface {
	Create(ctx context.Context, params CreateBookParams, addedBy uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch BookPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (*BulkDeleteResult, error)
}

type bookUseCaseImpl struct {
	bookRepo BookRepository
	clock    clock.Clock
}

func NewBookCommands(bookRepo BookRepository, clock clock.Clock) BookCommands {
	return &bookUseCaseImpl{bookRepo: bookRepo, clock: clock}
}

func (u *bookUseCaseImpl) Create(ctx context.Context, params CreateBookParams, addedBy uuid.UUID) (uuid.UUID, error) {
	condition := book.ConditionGood
	if params.Condition != "" {
		var err error
		condition, err = book.NewCondition(params.Condition)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrInvalidBookInput)
		}
	}

	language := params.Language
	if language == "" {
		language = "English"
	}

	now := u.clock.Now()
	b := book.ReconstructBook(
		uuid.New(),
		params.Title, params.Author, params.Genre,
		params.ISBN, params.PublicationYear,
		params.Description, params.Publisher, params.Pages,
		language, params.Location,
		condition,
		book.StatusAvailable,
		nil, nil, nil,
		addedBy,
		now, now,
	)

	id, err := u.bookRepo.Insert(ctx, b)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (u *bookUseCaseImpl) Update(ctx context.Context, id uuid.UUID, patch BookPatch) error {
	if patch.IsEmpty() {
		return ErrInvalidBookInput
	}
	if patch.Condition != nil {
		if _, err := book.NewCondition(*patch.Condition); err != nil {
			return errs.Mark(err, ErrInvalidBookInput)
		}
	}

	if err := u.bookRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *bookUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := u.bookRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := b.EnsureDeletable(); err != nil {
		return ErrBookCheckedOut
	}

	if err := u.bookRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindPreconditionFailed) {
			// Checked out between our read and the delete.
			return ErrBookCheckedOut
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *bookUseCaseImpl) BulkDelete(ctx context.Context, ids []uuid.UUID) (*BulkDeleteResult, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidBookInput
	}

	books, err := u.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(books) == 0 {
		return nil, ErrBookNotFound
	}

	var checkedOutTitles []string
	for _, b := range books {
		if b.EnsureDeletable() != nil {
			checkedOutTitles = append(checkedOutTitles, b.Title())
		}
	}
	if len(checkedOutTitles) > 0 {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("cannot delete checked out books: %s", strings.Join(checkedOutTitles, ", "))),
			ErrBookCheckedOut,
		)
	}

	deleted, err := u.bookRepo.DeleteMany(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &BulkDeleteResult{
		DeletedCount: len(deleted),
		DeletedIDs:   deleted,
		Message:      fmt.Sprintf("Successfully deleted %d books", len(deleted)),
	}, nil
}
