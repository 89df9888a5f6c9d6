package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/techclub-site/internal/dto"
	"github.com/noah-isme/techclub-site/internal/middleware"
	"github.com/noah-isme/techclub-site/internal/service"
	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
	"github.com/noah-isme/techclub-site/pkg/response"
)

type eventPages interface {
	EventsPage(ctx context.Context) (*dto.EventsPage, error)
	EventCard(ctx context.Context, id int) (*dto.EventCard, error)
}

type eventExporter interface {
	Events(ctx context.Context, group string, format service.ExportFormat) (*service.ExportFile, error)
}

// EventListResponse is the JSON shape of the events listing.
type EventListResponse struct {
	Upcoming []dto.EventCard `json:"upcoming"`
	Past     []dto.EventCard `json:"past"`
}

// EventHandler exposes rendered event cards as JSON.
type EventHandler struct {
	pages   eventPages
	exports eventExporter
}

// NewEventHandler constructs the handler.
func NewEventHandler(pages eventPages, exports eventExporter) *EventHandler {
	return &EventHandler{pages: pages, exports: exports}
}

// List godoc
// @Summary List event cards
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	start := time.Now()
	page, err := h.pages.EventsPage(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := middleware.ProcessingTime(c, start)
	meta["upcoming_total"] = len(page.Upcoming.Cards)
	meta["past_total"] = len(page.Past.Cards)
	response.JSON(c, http.StatusOK, EventListResponse{Upcoming: page.Upcoming.Cards, Past: page.Past.Cards}, meta)
}

// Get godoc
// @Summary Get an event card
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	start := time.Now()
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.pages.EventCard(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, middleware.ProcessingTime(c, start))
}

// Export godoc
// @Summary Download events as CSV or PDF
// @Tags Events
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Param group query string false "upcoming, past or all" default(all)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /events/export [get]
func (h *EventHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Events(c.Request.Context(), c.Query("group"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
