package service

import (
	"errors"
	"strings"

	"github.com/virtualdesk/internal/db"
	"gorm.io/gorm"
)

var (
	ErrLeadNameMissing  = errors.New("lead name is required")
	ErrLeadEmailInvalid = errors.New("a valid email is required")
)

// LeadInput carries a lead-capture submission from a landing page.
type LeadInput struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	PageSlug string
}

// LeadService stores lead-capture submissions for the sales team.
type LeadService struct {
	db *gorm.DB
}

// NewLeadService returns a new LeadService instance.
func NewLeadService(gdb *gorm.DB) *LeadService {
	return &LeadService{db: gdb}
}

// Create validates and stores one lead.
func (s *LeadService) Create(input LeadInput) (*db.Lead, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrLeadNameMissing
	}

	email := strings.TrimSpace(input.Email)
	if !strings.Contains(email, "@") || strings.ContainsAny(email, " \t") {
		return nil, ErrLeadEmailInvalid
	}

	lead := db.Lead{
		Name:     name,
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		Message:  strings.TrimSpace(input.Message),
		PageSlug: strings.TrimSpace(input.PageSlug),
	}
	if err := s.db.Create(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns leads, newest first.
func (s *LeadService) List() ([]db.Lead, error) {
	var leads []db.Lead
	if err := s.db.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}
