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

type projectPages interface {
	ProjectsPage(ctx context.Context) (*dto.ProjectsPage, error)
	ProjectCard(ctx context.Context, id int) (*dto.ProjectCard, error)
}

type projectExporter interface {
	Projects(ctx context.Context, format service.ExportFormat) (*service.ExportFile, error)
}

// ProjectHandler exposes rendered project cards as JSON.
type ProjectHandler struct {
	pages   projectPages
	exports projectExporter
}

// NewProjectHandler constructs the handler.
func NewProjectHandler(pages projectPages, exports projectExporter) *ProjectHandler {
	return &ProjectHandler{pages: pages, exports: exports}
}

// List godoc
// @Summary List project cards
// @Tags Projects
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	start := time.Now()
	page, err := h.pages.ProjectsPage(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := middleware.ProcessingTime(c, start)
	meta["total"] = len(page.Cards)
	response.JSON(c, http.StatusOK, page.Cards, meta)
}

// Get godoc
// @Summary Get a project card
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	start := time.Now()
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	card, err := h.pages.ProjectCard(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, middleware.ProcessingTime(c, start))
}

// Export godoc
// @Summary Download projects as CSV or PDF
// @Tags Projects
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /projects/export [get]
func (h *ProjectHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Projects(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
