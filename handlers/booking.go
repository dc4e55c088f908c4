package handlers

import (
	"errors"
	"net/http"

	"tropicab/models"
	"tropicab/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBookingHandler confirms a finished conversation into a real booking.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var in models.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := hb.Bookings.Confirm(c, in)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		hb.Logger.Error("booking: confirm failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (hb *HandlerBundle) GetBookingHandler(c *gin.Context) {
	b, err := hb.Bookings.Get(c, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	if err := hb.Bookings.Cancel(c, c.Param("id")); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		hb.Logger.Error("booking: cancel failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// BookingHistoryHandler lists past bookings for an email address.
func (hb *HandlerBundle) BookingHistoryHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	list, err := hb.Bookings.History(c, email)
	if err != nil {
		hb.Logger.Error("booking: history lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}
