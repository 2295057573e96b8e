package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/virtualdesk/internal/content"
	"github.com/virtualdesk/internal/selection"
	"go.uber.org/zap"
)

const selectionSessionKey = "selection_key"

// sessionSelection returns the operator's selection state, creating a
// session-scoped key on first use.
func (a *API) sessionSelection(c *gin.Context) *selection.State {
	session := sessions.Default(c)
	key, ok := session.Get(selectionSessionKey).(string)
	if !ok || key == "" {
		key = uuid.NewString()
		session.Set(selectionSessionKey, key)
		if err := session.Save(); err != nil {
			a.logger.Warn("selection session save failed", zap.Error(err))
		}
	}
	return a.selections.Get(key)
}

func (a *API) respondSelection(c *gin.Context, state *selection.State, warning string) {
	snapshot := state.Snapshot()
	payload := gin.H{"selection": snapshot}
	if warning != "" {
		payload["warning"] = warning
	}
	c.JSON(http.StatusOK, payload)
}

// GetSelection returns the current selection snapshot, including the
// derived area pool and the pending page count.
func (a *API) GetSelection(c *gin.Context) {
	a.respondSelection(c, a.sessionSelection(c), "")
}

// ToggleSelectionCity flips a city and refreshes the derived area pool.
// Fetch failures degrade to a warning; the toggle itself still applies.
func (a *API) ToggleSelectionCity(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	state := a.sessionSelection(c)
	warning := ""
	if err := state.ToggleCity(c.Request.Context(), id); err != nil {
		a.logger.Warn("area fetch degraded", zap.Uint("city", id), zap.Error(err))
		warning = "some areas could not be loaded; re-toggle the city to retry"
	}
	a.respondSelection(c, state, warning)
}

// ToggleSelectionArea flips one area in the current pool.
func (a *API) ToggleSelectionArea(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	state := a.sessionSelection(c)
	if err := state.ToggleArea(id); err != nil {
		if errors.Is(err, selection.ErrAreaNotAvailable) {
			respondError(c, http.StatusBadRequest, "area does not belong to a selected city")
			return
		}
		respondError(c, http.StatusInternalServerError, "could not update selection")
		return
	}
	a.respondSelection(c, state, "")
}

type purposePayload struct {
	Purpose string `json:"purpose" binding:"required"`
}

// ToggleSelectionPurpose flips a purpose.
func (a *API) ToggleSelectionPurpose(c *gin.Context) {
	var payload purposePayload
	if !bindJSON(c, &payload, "purpose is required") {
		return
	}

	state := a.sessionSelection(c)
	state.TogglePurpose(payload.Purpose)
	a.respondSelection(c, state, "")
}

// SelectAllSelectionAreas selects every area in the pool.
func (a *API) SelectAllSelectionAreas(c *gin.Context) {
	state := a.sessionSelection(c)
	state.SelectAllAreas()
	a.respondSelection(c, state, "")
}

// DeselectAllSelectionAreas clears the area selection.
func (a *API) DeselectAllSelectionAreas(c *gin.Context) {
	state := a.sessionSelection(c)
	state.DeselectAllAreas()
	a.respondSelection(c, state, "")
}

// GenerateSelection expands the selection into candidates and submits
// them as one batch. Selections survive a failed submission so the
// operator can retry.
func (a *API) GenerateSelection(c *gin.Context) {
	state := a.sessionSelection(c)

	candidates, err := state.Candidates()
	if err != nil {
		if errors.Is(err, selection.ErrNothingSelected) {
			respondError(c, http.StatusBadRequest, "select at least one area and one purpose")
			return
		}
		respondError(c, http.StatusInternalServerError, "could not build candidates")
		return
	}

	result, err := a.pages.CreateBatch(candidates)
	if err != nil {
		a.logger.Error("generation batch failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not save generated pages")
		return
	}

	a.logger.Info("generation batch complete",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))
	c.JSON(http.StatusOK, result)
}

// ShowGenerate renders the bulk generation screen.
func (a *API) ShowGenerate(c *gin.Context) {
	locations, err := a.areas.Locations(c.Request.Context())
	if err != nil {
		a.logger.Error("list locations failed", zap.Error(err))
		locations = nil
	}

	a.renderHTML(c, http.StatusOK, "generate.html", gin.H{
		"title":     "Bulk Page Generation",
		"locations": locations,
		"purposes":  content.DefaultPurposes,
	})
}
