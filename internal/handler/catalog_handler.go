package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetLocations lists the cities the service operates in.
func (a *API) GetLocations(c *gin.Context) {
	locations, err := a.areas.Locations(c.Request.Context())
	if err != nil {
		a.logger.Error("list locations failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not load locations")
		return
	}
	c.JSON(http.StatusOK, locations)
}

// GetLocationAreas lists the areas of one city.
func (a *API) GetLocationAreas(c *gin.Context) {
	locationID, err := parseUintParam(c, "locationId")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	areas, err := a.areas.AreasForLocation(c.Request.Context(), locationID)
	if err != nil {
		a.logger.Error("list areas failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not load areas")
		return
	}
	c.JSON(http.StatusOK, areas)
}
