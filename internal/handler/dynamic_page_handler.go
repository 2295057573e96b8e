package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/virtualdesk/internal/db"
	"github.com/virtualdesk/internal/service"
	"go.uber.org/zap"
)

type dynamicPageCandidate struct {
	AreaName        string `json:"areaName" binding:"required"`
	CityName        string `json:"cityName" binding:"required"`
	Purpose         string `json:"purpose" binding:"required"`
	Slug            string `json:"slug"`
	OverviewContent string `json:"overviewContent"`
	BenefitsContent string `json:"benefitsContent"`
	WhyUsContent    string `json:"whyUsContent"`
	IsActive        *bool  `json:"isActive"`
}

func (p dynamicPageCandidate) toModel() db.DynamicPage {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return db.DynamicPage{
		AreaName:        p.AreaName,
		CityName:        p.CityName,
		Purpose:         p.Purpose,
		Slug:            p.Slug,
		OverviewContent: p.OverviewContent,
		BenefitsContent: p.BenefitsContent,
		WhyUsContent:    p.WhyUsContent,
		IsActive:        active,
	}
}

// GetDynamicPages lists every generated page for the admin list view.
func (a *API) GetDynamicPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		a.logger.Error("list dynamic pages failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not load pages")
		return
	}
	c.JSON(http.StatusOK, pages)
}

// GetDynamicPageBySlug resolves one page by slug, 404 on miss.
func (a *API) GetDynamicPageBySlug(c *gin.Context) {
	page, err := a.pages.ResolveSlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrDynamicPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		a.logger.Error("resolve slug failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not load page")
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateDynamicPagesBulk accepts a batch of candidates, persists the
// new slugs and reports created/skipped counts.
func (a *API) CreateDynamicPagesBulk(c *gin.Context) {
	var payload []dynamicPageCandidate
	if !bindJSON(c, &payload, "request body must be an array of page candidates") {
		return
	}

	candidates := make([]db.DynamicPage, len(payload))
	for i, candidate := range payload {
		candidates[i] = candidate.toModel()
	}

	result, err := a.pages.CreateBatch(candidates)
	if err != nil {
		a.logger.Error("bulk page creation failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not save pages")
		return
	}

	a.logger.Info("bulk pages submitted",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))
	c.JSON(http.StatusOK, result)
}

// DeleteDynamicPage removes a page permanently.
func (a *API) DeleteDynamicPage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.pages.Delete(id); err != nil {
		if errors.Is(err, service.ErrDynamicPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		a.logger.Error("delete page failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not delete page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "page deleted"})
}

// ToggleDynamicPageActive flips a page's public visibility.
func (a *API) ToggleDynamicPageActive(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := a.pages.ToggleActive(id)
	if err != nil {
		if errors.Is(err, service.ErrDynamicPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		a.logger.Error("toggle page failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not update page")
		return
	}
	c.JSON(http.StatusOK, page)
}

type extraContentPayload struct {
	Content string `json:"content"`
}

// UpdateDynamicPageExtraContent saves the markdown appendix of a page.
func (a *API) UpdateDynamicPageExtraContent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload extraContentPayload
	if !bindJSON(c, &payload, "invalid content payload") {
		return
	}

	page, err := a.pages.UpdateExtraContent(id, payload.Content)
	if err != nil {
		if errors.Is(err, service.ErrDynamicPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		a.logger.Error("update extra content failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not update page")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetLinkSuggestions asks the AI service for internal links from one
// page to its siblings.
func (a *API) GetLinkSuggestions(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	suggestions, err := a.links.SuggestLinks(c.Request.Context(), id, 5)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDynamicPageNotFound):
			respondError(c, http.StatusNotFound, "page not found")
		case errors.Is(err, service.ErrAIKeyMissing):
			respondError(c, http.StatusConflict, "configure an AI API key first")
		default:
			a.logger.Error("link suggestion failed", zap.Error(err))
			respondError(c, http.StatusBadGateway, "link suggestion service unavailable")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// GetPageStats reports visit counts per page.
func (a *API) GetPageStats(c *gin.Context) {
	stats, err := a.visits.PageStats()
	if err != nil {
		a.logger.Error("page stats failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ShowPageList renders the admin list of generated pages.
func (a *API) ShowPageList(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		a.logger.Error("list dynamic pages failed", zap.Error(err))
		pages = nil
	}
	a.renderHTML(c, http.StatusOK, "pages.html", gin.H{
		"title": "Dynamic Pages",
		"pages": pages,
	})
}
