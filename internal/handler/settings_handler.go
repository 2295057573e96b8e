package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/virtualdesk/internal/service"
	"go.uber.org/zap"
)

type settingsPayload struct {
	SiteName     string `json:"siteName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	AIAPIKey     string `json:"aiApiKey"`
}

// GetSiteSettings returns the site settings. The AI key itself is never
// echoed back, only whether one is configured.
func (a *API) GetSiteSettings(c *gin.Context) {
	settings, err := a.system.GetSettings()
	if err != nil {
		a.logger.Error("load settings failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not load settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"siteName":        settings.SiteName,
		"contactPhone":    settings.ContactPhone,
		"contactEmail":    settings.ContactEmail,
		"aiKeyConfigured": settings.AIAPIKey != "",
	})
}

// UpdateSiteSettings upserts the site settings. An empty aiApiKey leaves
// the stored key untouched so the form can omit it on every save.
func (a *API) UpdateSiteSettings(c *gin.Context) {
	var payload settingsPayload
	if !bindJSON(c, &payload, "invalid settings payload") {
		return
	}

	current, err := a.system.GetSettings()
	if err != nil {
		a.logger.Error("load settings failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not load settings")
		return
	}

	key := strings.TrimSpace(payload.AIAPIKey)
	if key == "" {
		key = current.AIAPIKey
	}

	if err := a.system.UpdateSettings(service.SystemSettings{
		SiteName:     payload.SiteName,
		ContactPhone: payload.ContactPhone,
		ContactEmail: payload.ContactEmail,
		AIAPIKey:     key,
	}); err != nil {
		a.logger.Error("update settings failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "settings saved"})
}
