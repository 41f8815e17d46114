//go:build unit

package builder

import (
	"time"

	"liblend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	ID              uuid.UUID
	Title           string
	Author          string
	Genre           string
	Language        string
	Condition       string
	Status          string
	PublicationYear *int
	Description     *string
	AddedBy         uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookBuilder() *BookBuilder {
	now := time.Now()
	year := 1965
	desc := "A desert planet, a noble house, and the spice that binds the universe."
	return &BookBuilder{
		ID:              uuid.New(),
		Title:           "Dune",
		Author:          "Frank Herbert",
		Genre:           "Science Fiction",
		Language:        "English",
		Condition:       "good",
		Status:          "available",
		PublicationYear: &year,
		Description:     &desc,
		AddedBy:         uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		PublicationYear: b.PublicationYear,
		Description:     b.Description,
		Language:        b.Language,
		Condition:       b.Condition,
		Status:          b.Status,
		AddedBy:         b.AddedBy,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"title":            b.Title,
		"author":           b.Author,
		"genre":            b.Genre,
		"publication_year": b.PublicationYear,
		"language":         b.Language,
		"condition":        b.Condition,
	}
}
