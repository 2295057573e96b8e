package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/virtualdesk/internal/service"
	"go.uber.org/zap"
)

type leadPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	PageSlug string `json:"pageSlug"`
}

// CreateLead stores a lead-capture submission from a landing page.
func (a *API) CreateLead(c *gin.Context) {
	var payload leadPayload
	if !bindJSON(c, &payload, "name and email are required") {
		return
	}

	lead, err := a.leads.Create(service.LeadInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Message:  payload.Message,
		PageSlug: payload.PageSlug,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeadNameMissing), errors.Is(err, service.ErrLeadEmailInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			a.logger.Error("lead creation failed", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "could not save your details, please retry")
		}
		return
	}

	a.logger.Info("lead captured", zap.String("pageSlug", lead.PageSlug))
	c.JSON(http.StatusOK, gin.H{"message": "Thanks! Our team will reach out shortly.", "id": lead.ID})
}

// GetLeads lists captured leads for the sales team.
func (a *API) GetLeads(c *gin.Context) {
	leads, err := a.leads.List()
	if err != nil {
		a.logger.Error("list leads failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not load leads")
		return
	}
	c.JSON(http.StatusOK, leads)
}
