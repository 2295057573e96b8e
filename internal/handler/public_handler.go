package handler

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/virtualdesk/internal/content"
	"github.com/virtualdesk/internal/db"
	"github.com/virtualdesk/internal/service"
	"go.uber.org/zap"
)

const (
	visitorCookieName   = "vd_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

type whyUsView struct {
	Title       string
	Description string
}

// ShowHome renders the public landing page with the city catalog and
// pricing plans.
func (a *API) ShowHome(c *gin.Context) {
	locations, err := a.areas.Locations(c.Request.Context())
	if err != nil {
		a.logger.Error("list locations failed", zap.Error(err))
		locations = nil
	}

	plans, err := a.plans.ListViews()
	if err != nil {
		a.logger.Error("list plans failed", zap.Error(err))
		plans = nil
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":     "Virtual Office Solutions",
		"locations": locations,
		"plans":     plans,
	})
}

// ShowVirtualOffice renders a generated landing page by slug. Unknown
// and inactive slugs get the dedicated not-found page, never a generic
// error.
func (a *API) ShowVirtualOffice(c *gin.Context) {
	slug := c.Param("slug")

	page, err := a.pages.ResolveSlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrDynamicPageNotFound) {
			a.renderHTML(c, http.StatusNotFound, "virtual_office_not_found.html", gin.H{
				"title": "Page Not Found",
				"slug":  slug,
			})
			return
		}
		a.logger.Error("resolve slug failed", zap.String("slug", slug), zap.Error(err))
		a.renderHTML(c, http.StatusInternalServerError, "virtual_office_not_found.html", gin.H{
			"title": "Something Went Wrong",
			"slug":  slug,
		})
		return
	}

	a.recordVisit(c, page)

	benefits := content.SplitList(page.BenefitsContent)

	var whyUs []whyUsView
	for _, segment := range content.SplitList(page.WhyUsContent) {
		title, description := content.SplitTitled(segment)
		whyUs = append(whyUs, whyUsView{Title: title, Description: description})
	}

	var extraHTML template.HTML
	if page.ExtraContent != "" {
		rendered, err := renderMarkdown(page.ExtraContent)
		if err != nil {
			a.logger.Warn("extra content rendering failed", zap.String("slug", slug), zap.Error(err))
		} else {
			extraHTML = template.HTML(rendered)
		}
	}

	plans, err := a.plans.ListViews()
	if err != nil {
		a.logger.Error("list plans failed", zap.Error(err))
		plans = nil
	}

	var canonical string
	if a.baseURL != "" {
		canonical = a.baseURL + "/virtual-office/" + page.Slug
	}

	a.renderHTML(c, http.StatusOK, "virtual_office.html", gin.H{
		"title":     page.AreaName + " Virtual Office for " + page.Purpose,
		"page":      page,
		"overview":  page.OverviewContent,
		"benefits":  benefits,
		"whyUs":     whyUs,
		"extra":     extraHTML,
		"plans":     plans,
		"canonical": canonical,
	})
}

// recordVisit tags the browser with a visitor id and stores one page
// view. Failures are logged, never surfaced to the visitor.
func (a *API) recordVisit(c *gin.Context, page *db.DynamicPage) {
	visitorID, err := c.Cookie(visitorCookieName)
	if err != nil || visitorID == "" {
		visitorID = uuid.NewString()
		c.SetCookie(visitorCookieName, visitorID, visitorCookieMaxAge, "/", "", false, true)
	}

	if err := a.visits.RecordVisit(page.ID, visitorID); err != nil {
		a.logger.Warn("visit recording failed", zap.String("slug", page.Slug), zap.Error(err))
	}
}
