package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"eventdeck/internal/media"
	"eventdeck/internal/model"
	"eventdeck/internal/service"
	"eventdeck/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service  service.EventService
	uploader media.Uploader
}

func NewEventHandler(service service.EventService, uploader media.Uploader) *EventHandler {
	return &EventHandler{service: service, uploader: uploader}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/upcoming", h.ListUpcoming)
		router.GET("events/:slug", h.GetBySlug)
		router.POST("events", h.Create)
		router.PUT("events/:slug", h.UpdateBySlug)
	}
}

// UpdateEventRequest 部分更新請求，nil 欄位表示不變動
type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Overview    *string  `json:"overview"`
	Image       *string  `json:"image"`
	Venue       *string  `json:"venue"`
	Location    *string  `json:"location"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Mode        *string  `json:"mode"`
	Audience    *string  `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   *string  `json:"organizer"`
	Tags        []string `json:"tags"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "handler", "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) ListUpcoming(c *gin.Context) {
	events, err := h.service.ListUpcoming(c)
	if err != nil {
		handleError(c, err, "handler", "ListUpcoming")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if !model.IsValidSlug(slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slug format. Slug must contain only lowercase letters, numbers, and hyphens"})
		return
	}
	event, err := h.service.GetBySlug(c, slug)
	if err != nil {
		handleError(c, err, "handler", "GetBySlug")
		return
	}
	c.JSON(http.StatusOK, event)
}

// Create 接 multipart form：活動欄位 + 必填的 image 檔。
// 先上傳圖片拿 URL，再建立活動。
func (h *EventHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read event image file"})
		return
	}
	defer file.Close()

	imageURL, err := h.uploader.Upload(c, file)
	if err != nil {
		logger.WithComponent("handler").Error("Image upload failed",
			zap.String("operation", "Create"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	event := eventFromForm(form)
	event.Image = imageURL
	if event.CreatedBy == "" {
		event.CreatedBy = "public"
	}

	created, err := h.service.Create(c, event)
	if err != nil {
		handleError(c, err, "handler", "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) UpdateBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if !model.IsValidSlug(slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slug format. Slug must contain only lowercase letters, numbers, and hyphens"})
		return
	}

	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	params := model.UpdateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Overview:    req.Overview,
		Image:       req.Image,
		Venue:       req.Venue,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Mode:        req.Mode,
		Audience:    req.Audience,
		Agenda:      req.Agenda,
		Organizer:   req.Organizer,
		Tags:        req.Tags,
	}

	updated, err := h.service.UpdateBySlug(c, slug, params)
	if err != nil {
		handleError(c, err, "handler", "UpdateBySlug")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// eventFromForm 以已知欄位名稱建出草稿，未知欄位一律忽略。
// agenda 與 tags 接受重複欄位或逗號分隔，空白元素交給驗證層拒絕。
func eventFromForm(form *multipart.Form) *model.Event {
	return &model.Event{
		Title:       formValue(form, "title"),
		Slug:        formValue(form, "slug"),
		Description: formValue(form, "description"),
		Overview:    formValue(form, "overview"),
		Venue:       formValue(form, "venue"),
		Location:    formValue(form, "location"),
		Date:        formValue(form, "date"),
		Time:        formValue(form, "time"),
		Mode:        formValue(form, "mode"),
		Audience:    formValue(form, "audience"),
		Agenda:      formList(form, "agenda"),
		Organizer:   formValue(form, "organizer"),
		Tags:        formList(form, "tags"),
		CreatedBy:   formValue(form, "created_by"),
	}
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func formList(form *multipart.Form, key string) []string {
	values := form.Value[key]
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
