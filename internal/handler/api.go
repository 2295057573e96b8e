package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/virtualdesk/internal/cache"
	"github.com/virtualdesk/internal/selection"
	"github.com/virtualdesk/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// Options carries the handler configuration that does not come from
// services.
type Options struct {
	SiteBaseURL string
	AIAPIKey    string
	AIBaseURL   string
	AIModel     string
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	logger     *zap.Logger
	pages      *service.DynamicPageService
	areas      *service.AreaService
	plans      *service.PlanService
	leads      *service.LeadService
	visits     *service.VisitService
	system     *service.SystemSettingService
	links      *service.AILinkService
	selections *selection.Registry
	baseURL    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, store cache.Store, logger *zap.Logger, opts Options) *API {
	if logger == nil {
		logger = zap.NewNop()
	}

	systemService := service.NewSystemSettingService(gdb)
	pageService := service.NewDynamicPageService(gdb)
	areaService := service.NewAreaService(gdb, store, logger)

	return &API{
		db:         gdb,
		logger:     logger,
		pages:      pageService,
		areas:      areaService,
		plans:      service.NewPlanService(gdb),
		leads:      service.NewLeadService(gdb),
		visits:     service.NewVisitService(gdb),
		system:     systemService,
		links:      service.NewAILinkService(systemService, pageService, opts.AIAPIKey, opts.AIBaseURL, opts.AIModel),
		selections: selection.NewRegistry(areaService),
		baseURL:    strings.TrimRight(opts.SiteBaseURL, "/"),
	}
}

const siteSettingsContextKey = "__site_settings"

type siteViewModel struct {
	Name         string
	ContactPhone string
	ContactEmail string
}

func (a *API) siteSettings(c *gin.Context) siteViewModel {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(siteViewModel); ok {
			return view
		}
	}

	settings, err := a.system.GetSettings()
	if err != nil {
		c.Error(err)
	}

	view := siteViewModel{
		Name:         settings.SiteName,
		ContactPhone: settings.ContactPhone,
		ContactEmail: settings.ContactEmail,
	}
	if view.Name == "" {
		view.Name = "VirtualDesk"
	}
	if view.ContactEmail == "" {
		view.ContactEmail = "sales@virtualdesk.in"
	}

	c.Set(siteSettingsContextKey, view)
	return view
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	view := a.siteSettings(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":         view.Name,
			"contactPhone": view.ContactPhone,
			"contactEmail": view.ContactEmail,
		}
	}

	c.HTML(status, template, payload)
}

// renderMarkdown converts admin-authored markdown to sanitized HTML.
func renderMarkdown(source string) (string, error) {
	var out strings.Builder
	if err := markdownEngine.Convert([]byte(source), &out); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(out.String()), nil
}
