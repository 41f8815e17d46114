package response

import (
	"time"

	"liblend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookResponse struct {
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

type BookListResponse struct {
	Books []*BookResponse `json:"books"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	return &BookResponse{
		ID:              v.ID,
		Title:           v.Title,
		Author:          v.Author,
		Genre:           v.Genre,
		ISBN:            v.ISBN,
		PublicationYear: v.PublicationYear,
		Description:     v.Description,
		Publisher:       v.Publisher,
		Pages:           v.Pages,
		Language:        v.Language,
		Location:        v.Location,
		Condition:       v.Condition,
		Status:          v.Status,
		CheckedOutBy:    v.CheckedOutBy,
		CheckedOutAt:    v.CheckedOutAt,
		DueDate:         v.DueDate,
		AddedBy:         v.AddedBy,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromBookList(result *queries.BookListResult) *BookListResponse {
	books := make([]*BookResponse, len(result.Books))
	for i, v := range result.Books {
		books[i] = FromBookView(v)
	}
	return &BookListResponse{
		Books: books,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	}
}

func FromBookViews(views []*queries.BookView) []*BookResponse {
	books := make([]*BookResponse, len(views))
	for i, v := range views {
		books[i] = FromBookView(v)
	}
	return books
}

type CreatedResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}
