package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/techclub-site/internal/dto"
	"github.com/noah-isme/techclub-site/internal/middleware"
	"github.com/noah-isme/techclub-site/internal/service"
	"github.com/noah-isme/techclub-site/internal/view"
	"github.com/noah-isme/techclub-site/pkg/response"
)

type pageComposer interface {
	EventsPage(ctx context.Context) (*dto.EventsPage, error)
	ProjectsPage(ctx context.Context) (*dto.ProjectsPage, error)
}

type pageCache interface {
	Enabled() bool
	GetPage(ctx context.Context, name string) (*service.CachedPage, bool)
	SetPage(ctx context.Context, name string, body []byte)
}

type snapshotGeneration interface {
	Generation() uint64
}

// PageHandler serves the server-rendered HTML pages.
type PageHandler struct {
	pages       pageComposer
	views       *view.Views
	cache       pageCache
	generations snapshotGeneration
	metrics     *service.MetricsService
	site        string
}

// NewPageHandler constructs the handler. cache, generations and metrics may
// be nil. Cached pages are keyed by the catalog generation they were
// rendered from.
func NewPageHandler(pages pageComposer, views *view.Views, cache pageCache, generations snapshotGeneration, metrics *service.MetricsService, siteName string) *PageHandler {
	return &PageHandler{pages: pages, views: views, cache: cache, generations: generations, metrics: metrics, site: siteName}
}

// Index redirects the bare root to the events page.
func (h *PageHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/events")
}

// Events renders the events page.
func (h *PageHandler) Events(c *gin.Context) {
	h.serve(c, view.PageEvents, func(ctx context.Context) (interface{}, string, error) {
		page, err := h.pages.EventsPage(ctx)
		if err != nil {
			return nil, "", err
		}
		return page, page.Hero.Title, nil
	})
}

// Projects renders the projects page.
func (h *PageHandler) Projects(c *gin.Context) {
	h.serve(c, view.PageProjects, func(ctx context.Context) (interface{}, string, error) {
		page, err := h.pages.ProjectsPage(ctx)
		if err != nil {
			return nil, "", err
		}
		return page, "Projects", nil
	})
}

// NotFound renders the HTML error page for unknown routes.
func (h *PageHandler) NotFound(c *gin.Context) {
	response.ErrorPage(c, h.site, errPageNotFound)
}

func (h *PageHandler) serve(c *gin.Context, name string, compose func(ctx context.Context) (interface{}, string, error)) {
	ctx := c.Request.Context()
	cacheOn := h.cache != nil && h.cache.Enabled()
	gen := h.generation()
	key := strconv.FormatUint(gen, 10) + ":" + name
	if cacheOn {
		if cached, hit := h.cache.GetPage(ctx, key); hit {
			middleware.SetCacheHit(c, true)
			response.HTML(c, http.StatusOK, []byte(cached.Body))
			return
		}
	}

	start := time.Now()
	content, title, err := compose(ctx)
	if err != nil {
		response.ErrorPage(c, h.site, err)
		return
	}
	body, err := h.views.Render(name, h.views.Wrap(title, name, content))
	if err != nil {
		response.ErrorPage(c, h.site, err)
		return
	}
	h.metrics.ObserveRender(name, time.Since(start))

	if cacheOn {
		// A reload during compose may already have cleared the cache.
		if h.generation() == gen {
			h.cache.SetPage(ctx, key, body)
		}
		middleware.SetCacheHit(c, false)
	} else {
		middleware.SetCacheBypass(c)
	}
	response.HTML(c, http.StatusOK, body)
}

func (h *PageHandler) generation() uint64 {
	if h.generations == nil {
		return 0
	}
	return h.generations.Generation()
}
