package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "liblend/internal/handler/dto/request"
	"liblend/internal/pkg/config"
	"liblend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type LendingHandler struct {
	lendingCommands commands.LendingCommands
	cfg             config.LendingConfig
}

func NewLendingHandler(lendingCommands commands.LendingCommands, cfg config.LendingConfig) *LendingHandler {
	return &LendingHandler{
		lendingCommands: lendingCommands,
		cfg:             cfg,
	}
}

func (h *LendingHandler) Checkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	// Empty body means "use the default loan length".
	var req reqdto.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	days, valid := req.Days(h.cfg.DefaultCheckoutDays, h.cfg.MaxCheckoutDays)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "checkout_days must be between 1 and " + strconv.Itoa(h.cfg.MaxCheckoutDays),
		})
		return
	}

	result, err := h.lendingCommands.Checkout(c.Request.Context(), bookID, userID, days)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		case errors.Is(err, commands.ErrBookNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Book is not available for checkout",
			})
		case errors.Is(err, commands.ErrInvalidLendingInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid checkout parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *LendingHandler) Checkin(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.lendingCommands.Checkin(c.Request.Context(), bookID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		case errors.Is(err, commands.ErrNotCheckedOutByUser):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Book is not checked out by you",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *LendingHandler) Renew(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.RenewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	days, valid := req.Days(h.cfg.DefaultExtendDays, h.cfg.MaxExtendDays)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "extend_days must be between 1 and " + strconv.Itoa(h.cfg.MaxExtendDays),
		})
		return
	}

	result, err := h.lendingCommands.Renew(c.Request.Context(), bookID, userID, days)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		case errors.Is(err, commands.ErrNotCheckedOutByUser):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Book is not checked out by you",
			})
		case errors.Is(err, commands.ErrInvalidLendingInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid renewal parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
