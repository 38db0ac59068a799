package handler

import (
	"net/http"

	"eventdeck/internal/model"
	"eventdeck/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service      service.BookingService
	eventService service.EventService
}

func NewBookingHandler(service service.BookingService, eventService service.EventService) *BookingHandler {
	return &BookingHandler{service: service, eventService: eventService}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:slug/bookings", h.Create)
		router.GET("events/:slug/bookings", h.ListByEvent)
		router.GET("events/:slug/bookings/count", h.Count)
		router.GET("bookings", h.ListByEmail)
	}
}

type CreateBookingRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	event, ok := h.resolveEvent(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.Create(c, event.ID, req.Email)
	if err != nil {
		handleError(c, err, "handler", "CreateBooking")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) ListByEvent(c *gin.Context) {
	event, ok := h.resolveEvent(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListByEvent(c, event.ID)
	if err != nil {
		handleError(c, err, "handler", "ListBookingsByEvent")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Count(c *gin.Context) {
	event, ok := h.resolveEvent(c)
	if !ok {
		return
	}

	count, err := h.service.CountByEvent(c, event.ID)
	if err != nil {
		handleError(c, err, "handler", "CountBookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": event.ID, "count": count})
}

func (h *BookingHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter email is required"})
		return
	}

	bookings, err := h.service.ListByEmail(c, email)
	if err != nil {
		handleError(c, err, "handler", "ListBookingsByEmail")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// resolveEvent 由路徑上的 slug 找出活動；格式錯誤回 400、不存在回 404
func (h *BookingHandler) resolveEvent(c *gin.Context) (*model.Event, bool) {
	slug := c.Param("slug")
	if !model.IsValidSlug(slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slug format. Slug must contain only lowercase letters, numbers, and hyphens"})
		return nil, false
	}
	event, err := h.eventService.GetBySlug(c, slug)
	if err != nil {
		handleError(c, err, "handler", "ResolveEvent")
		return nil, false
	}
	return event, true
}
