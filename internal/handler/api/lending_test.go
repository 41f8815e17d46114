//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"liblend/internal/handler/api"
	"liblend/internal/pkg/config"
	"liblend/internal/usecase/commands"
	"liblend/tests/common/httptest"
	commandsmock "liblend/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LendingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockLending *commandsmock.MockLendingCommands
	handler     *api.LendingHandler
	userID      uuid.UUID
}

func (s *LendingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLending = commandsmock.NewMockLendingCommands(s.mockCtrl)
	s.handler = api.NewLendingHandler(s.mockLending, config.LendingConfig{
		DefaultCheckoutDays: 14,
		MaxCheckoutDays:     90,
		DefaultExtendDays:   7,
		MaxExtendDays:       30,
	})
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/books/:id/checkout", authMiddleware, s.handler.Checkout)
	s.router.POST("/books/:id/checkin", authMiddleware, s.handler.Checkin)
	s.router.POST("/books/:id/renew", authMiddleware, s.handler.Renew)
}

func (s *LendingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLendingHandlerSuite(t *testing.T) {
	suite.Run(t, new(LendingHandlerTestSuite))
}

func (s *LendingHandlerTestSuite) TestCheckout() {
	bookID := uuid.New()
	url := "/books/" + bookID.String() + "/checkout"

	s.Run("success: empty body uses the default loan length", func() {
		s.mockLending.EXPECT().
			Checkout(gomock.Any(), bookID, s.userID, 14).
			Return(&commands.CheckoutResult{
				BookID:       bookID,
				CheckedOutBy: s.userID,
				DueDate:      time.Now().AddDate(0, 0, 14),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: explicit checkout_days is passed through", func() {
		s.mockLending.EXPECT().
			Checkout(gomock.Any(), bookID, s.userID, 30).
			Return(&commands.CheckoutResult{BookID: bookID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"checkout_days": 30}, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("checkout_days above the maximum is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"checkout_days": 91}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unavailable book returns 409", func() {
		s.mockLending.EXPECT().
			Checkout(gomock.Any(), bookID, s.userID, 14).
			Return(nil, commands.ErrBookNotAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown book returns 404", func() {
		s.mockLending.EXPECT().
			Checkout(gomock.Any(), bookID, s.userID, 14).
			Return(nil, commands.ErrBookNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("malformed book id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books/not-a-uuid/checkout", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *LendingHandlerTestSuite) TestCheckin() {
	bookID := uuid.New()
	url := "/books/" + bookID.String() + "/checkin"

	s.Run("success returns the overdue summary", func() {
		days := 3
		s.mockLending.EXPECT().
			Checkin(gomock.Any(), bookID, s.userID).
			Return(&commands.CheckinResult{
				BookID:      bookID,
				WasOverdue:  true,
				DaysOverdue: &days,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"was_overdue":true`)
	})

	s.Run("not the holder returns 409", func() {
		s.mockLending.EXPECT().
			Checkin(gomock.Any(), bookID, s.userID).
			Return(nil, commands.ErrNotCheckedOutByUser).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *LendingHandlerTestSuite) TestRenew() {
	bookID := uuid.New()
	url := "/books/" + bookID.String() + "/renew"

	s.Run("success: empty body uses the default extension", func() {
		s.mockLending.EXPECT().
			Renew(gomock.Any(), bookID, s.userID, 7).
			Return(&commands.RenewResult{BookID: bookID, ExtendedDays: 7}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("extend_days above the maximum is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"extend_days": 31}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("not the holder returns 409", func() {
		s.mockLending.EXPECT().
			Renew(gomock.Any(), bookID, s.userID, 7).
			Return(nil, commands.ErrNotCheckedOutByUser).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
