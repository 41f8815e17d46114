package request

import (
	"liblend/internal/usecase/commands"
	"liblend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Title           string  `json:"title" binding:"required"`
	Author          string  `json:"author" binding:"required"`
	Genre           string  `json:"genre" binding:"required"`
	ISBN            *string `json:"isbn,omitempty"`
	PublicationYear *int    `json:"publication_year,omitempty"`
	Description     *string `json:"description,omitempty"`
	Publisher       *string `json:"publisher,omitempty"`
	Pages           *int    `json:"pages,omitempty"`
	Language        string  `json:"language,omitempty"`
	Location        *string `json:"location,omitempty"`
	Condition       string  `json:"condition,omitempty"`
}

func (r CreateBookRequest) ToParams() commands.CreateBookParams {
	return commands.CreateBookParams{
		Title:           r.Title,
		Author:          r.Author,
		Genre:           r.Genre,
		ISBN:            r.ISBN,
		PublicationYear: r.PublicationYear,
		Description:     r.Description,
		Publisher:       r.Publisher,
		Pages:           r.Pages,
		Language:        r.Language,
		Location:        r.Location,
		Condition:       r.Condition,
	}
}

type UpdateBookRequest struct {
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	Genre           *string `json:"genre,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	PublicationYear *int    `json:"publication_year,omitempty"`
	Description     *string `json:"description,omitempty"`
	Publisher       *string `json:"publisher,omitempty"`
	Pages           *int    `json:"pages,omitempty"`
	Language        *string `json:"language,omitempty"`
	Location        *string `json:"location,omitempty"`
	Condition       *string `json:"condition,omitempty"`
}

func (r UpdateBookRequest) ToPatch() commands.BookPatch {
	return commands.BookPatch{
		Title:           r.Title,
		Author:          r.Author,
		Genre:           r.Genre,
		ISBN:            r.ISBN,
		PublicationYear: r.PublicationYear,
		Description:     r.Description,
		Publisher:       r.Publisher,
		Pages:           r.Pages,
		Language:        r.Language,
		Location:        r.Location,
		Condition:       r.Condition,
	}
}

type BulkDeleteRequest struct {
	BookIDs []uuid.UUID `json:"book_ids" binding:"required,min=1"`
}

// ListBooksQuery carries the list endpoint's query string. Page and limit
// default at the usecase layer.
type ListBooksQuery struct {
	Status    string `form:"status"`
	Condition string `form:"condition"`
	Genre     string `form:"genre"`
	Search    string `form:"search"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
}

// SearchBooksQuery is the advanced search surface: per-field substring
// matches plus a publication year range.
type SearchBooksQuery struct {
	Title    string `form:"title"`
	Author   string `form:"author"`
	Genre    string `form:"genre"`
	ISBN     string `form:"isbn"`
	YearFrom int    `form:"year_from"`
	YearTo   int    `form:"year_to"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=20"`
}

func (q ListBooksQuery) ToFilter() queries.BookFilter {
	return queries.BookFilter{
		Status:    q.Status,
		Condition: q.Condition,
		Genre:     q.Genre,
		Search:    q.Search,
	}
}

func (q SearchBooksQuery) ToFilter() queries.BookFilter {
	return queries.BookFilter{
		TitleILike:  q.Title,
		AuthorILike: q.Author,
		GenreILike:  q.Genre,
		ISBN:        q.ISBN,
		YearFrom:    q.YearFrom,
		YearTo:      q.YearTo,
	}
}
