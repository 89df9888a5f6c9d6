package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noah-isme/techclub-site/internal/middleware"
	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
	"github.com/noah-isme/techclub-site/pkg/response"
)

// Routes bundles everything SetupRoutes mounts.
type Routes struct {
	APIPrefix     string
	Pages         *PageHandler
	Events        *EventHandler
	Projects      *ProjectHandler
	Ops           *MetricsHandler
	EnableMetrics bool
	EnableDocs    bool
}

// SetupRoutes registers pages, the JSON API and the ops endpoints on r.
func SetupRoutes(r *gin.Engine, routes Routes) {
	r.GET("/health", routes.Ops.Health)
	r.GET("/ready", routes.Ops.Ready)
	if routes.EnableMetrics {
		r.GET("/metrics", routes.Ops.Prometheus)
	}
	if routes.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/", routes.Pages.Index)
	r.GET("/events", routes.Pages.Events)
	r.GET("/projects", routes.Pages.Projects)

	prefix := "/" + strings.Trim(routes.APIPrefix, "/")
	api := r.Group(prefix, middleware.WithResponseMeta())
	{
		api.GET("/events", routes.Events.List)
		api.GET("/events/export", routes.Events.Export)
		api.GET("/events/:id", routes.Events.Get)

		api.GET("/projects", routes.Projects.List)
		api.GET("/projects/export", routes.Projects.Export)
		api.GET("/projects/:id", routes.Projects.Get)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, prefix+"/") {
			response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
			return
		}
		routes.Pages.NotFound(c)
	})
}
