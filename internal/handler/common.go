package handler

import (
	"errors"
	"net/http"

	apperrors "eventdeck/pkg/app_errors"
	"eventdeck/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// handleError 把錯誤分類對應到 HTTP status：驗證 400、找不到 404、衝突 409、其餘 500
func handleError(c *gin.Context, err error, component, operation string) {
	log := logger.WithComponent(component).With(zap.String("operation", operation), zap.Error(err))

	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrEventReferenceNotFound):
		log.Warn("Referenced event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Referenced event does not exist"})
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, apperrors.ErrDuplicateSlug):
		log.Warn("Duplicate slug")
		c.JSON(http.StatusConflict, gin.H{"error": "An event with this slug already exists"})
	case errors.Is(err, apperrors.ErrDuplicateBooking):
		log.Warn("Duplicate booking")
		c.JSON(http.StatusConflict, gin.H{"error": "A booking for this event and email already exists"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
