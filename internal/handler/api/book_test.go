//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"liblend/internal/handler/api"
	"liblend/internal/usecase/commands"
	"liblend/internal/usecase/queries"
	"liblend/tests/common/builder"
	"liblend/tests/common/httptest"
	commandsmock "liblend/tests/mock/commands"
	queriesmock "liblend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookCommands
	mockQueries  *queriesmock.MockBookQueries
	handler      *api.BookHandler
	userID       uuid.UUID
}

func (s *BookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookQueries(s.mockCtrl)
	s.handler = api.NewBookHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.GET("/books", authMiddleware, s.handler.ListBooks)
	s.router.POST("/books", authMiddleware, s.handler.CreateBook)
	s.router.DELETE("/books", authMiddleware, s.handler.BulkDeleteBooks)
	s.router.GET("/books/search", authMiddleware, s.handler.SearchBooks)
	s.router.GET("/books/genres", authMiddleware, s.handler.ListGenres)
	s.router.GET("/books/my-checkouts", authMiddleware, s.handler.MyCheckouts)
	s.router.GET("/books/:id", authMiddleware, s.handler.GetBook)
	s.router.PUT("/books/:id", authMiddleware, s.handler.UpdateBook)
	s.router.DELETE("/books/:id", authMiddleware, s.handler.DeleteBook)
}

func (s *BookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookHandlerTestSuite))
}

func (s *BookHandlerTestSuite) TestCreateBook() {
	reqBody := builder.NewBookBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.userID).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", reqBody, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), id.String())
	})

	s.Run("missing required field returns 400", func() {
		body := builder.NewBookBuilder().BuildCreateRequestDTO()
		delete(body, "title")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("invalid condition returns 400", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.userID).
			Return(uuid.Nil, commands.ErrInvalidBookInput).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", reqBody, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BookHandlerTestSuite) TestGetBook() {
	view := builder.NewBookBuilder().BuildView()

	s.Run("success: returns the book", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/"+view.ID.String(), nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), view.Title)
	})

	s.Run("unknown book returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, queries.ErrBookNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/nope", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookHandlerTestSuite) TestListBooks() {
	s.Run("success: forwards pagination and filters", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.BookFilter{Genre: "Science Fiction"}, 2, 10).
			Return(&queries.BookListResult{
				Books: []*queries.BookView{builder.NewBookBuilder().BuildView()},
				Total: 11,
				Page:  2,
				Limit: 10,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/books?genre=Science+Fiction&page=2&limit=10", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"total":11`)
	})
}

func (s *BookHandlerTestSuite) TestSearchBooks() {
	s.Run("success: field filters map to the advanced search filter", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.BookFilter{AuthorILike: "herbert", YearFrom: 1960}, 1, 20).
			Return(&queries.BookListResult{Books: []*queries.BookView{}, Page: 1, Limit: 20}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/books/search?author=herbert&year_from=1960", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *BookHandlerTestSuite) TestDeleteBook() {
	id := uuid.New()

	s.Run("checked out book returns 409", func() {
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), id).
			Return(commands.ErrBookCheckedOut).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/books/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("success returns 200", func() {
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/books/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *BookHandlerTestSuite) TestBulkDeleteBooks() {
	s.Run("success returns the deletion summary", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockCommands.EXPECT().
			BulkDelete(gomock.Any(), ids).
			Return(&commands.BulkDeleteResult{DeletedCount: 2, DeletedIDs: ids}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/books",
			map[string]any{"book_ids": ids}, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"deleted_count":2`)
	})

	s.Run("empty id list returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/books",
			map[string]any{"book_ids": []uuid.UUID{}}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookHandlerTestSuite) TestMyCheckouts() {
	s.Run("success: lists the caller's open loans", func() {
		view := builder.NewBookBuilder().BuildView()
		s.mockQueries.EXPECT().
			MyCheckouts(gomock.Any(), s.userID).
			Return([]*queries.BookView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/my-checkouts", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"count":1`)
	})
}

func (s *BookHandlerTestSuite) TestListGenres() {
	s.Run("success: returns distinct genres", func() {
		s.mockQueries.EXPECT().
			Genres(gomock.Any()).
			Return([]string{"Fantasy", "Science Fiction"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/genres", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Fantasy")
	})
}
