package router

import (
	"html/template"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/virtualdesk/internal/handler"
	"go.uber.org/zap"
)

// Options carries router-level configuration.
type Options struct {
	GinMode       string
	SessionSecret string
	TemplateGlob  string
	StaticDir     string
}

// Setup configures the gin engine: middleware, sessions, templates and
// every route of the public and admin surface.
func Setup(api *handler.API, logger *zap.Logger, opts Options) *gin.Engine {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	store := cookie.NewStore([]byte(opts.SessionSecret))
	r.Use(sessions.Sessions("virtualdesk_session", store))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"mul": func(a, b int) int { return a * b },
	})
	if opts.TemplateGlob != "" {
		r.LoadHTMLGlob(opts.TemplateGlob)
	}
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public pages.
	r.GET("/", api.ShowHome)
	r.GET("/virtual-office/:slug", api.ShowVirtualOffice)

	// Public API.
	publicAPI := r.Group("/api")
	{
		publicAPI.GET("/locations", api.GetLocations)
		publicAPI.GET("/locations/:locationId/areas", api.GetLocationAreas)
		publicAPI.GET("/dynamic-pages", api.GetDynamicPages)
		publicAPI.GET("/dynamic-pages/slug/:slug", api.GetDynamicPageBySlug)
		publicAPI.POST("/leads", api.CreateLead)
	}

	// Admin surface.
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/pages", api.ShowPageList)
			auth.GET("/generate", api.ShowGenerate)
		}
	}

	adminAPI := r.Group("/api/admin")
	adminAPI.Use(handler.AuthRequired())
	{
		adminAPI.POST("/dynamic-pages/bulk", api.CreateDynamicPagesBulk)
		adminAPI.DELETE("/dynamic-pages/:id", api.DeleteDynamicPage)
		adminAPI.PATCH("/dynamic-pages/:id/active", api.ToggleDynamicPageActive)
		adminAPI.PUT("/dynamic-pages/:id/extra-content", api.UpdateDynamicPageExtraContent)
		adminAPI.GET("/dynamic-pages/:id/link-suggestions", api.GetLinkSuggestions)
		adminAPI.GET("/stats", api.GetPageStats)
		adminAPI.GET("/leads", api.GetLeads)
		adminAPI.GET("/settings", api.GetSiteSettings)
		adminAPI.PUT("/settings", api.UpdateSiteSettings)

		selection := adminAPI.Group("/selection")
		{
			selection.GET("", api.GetSelection)
			selection.POST("/cities/:id", api.ToggleSelectionCity)
			selection.POST("/areas/:id", api.ToggleSelectionArea)
			selection.POST("/select-all-areas", api.SelectAllSelectionAreas)
			selection.POST("/deselect-all-areas", api.DeselectAllSelectionAreas)
			selection.POST("/purposes", api.ToggleSelectionPurpose)
			selection.POST("/generate", api.GenerateSelection)
		}
	}

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
