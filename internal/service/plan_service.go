package service

import (
	"errors"
	"strings"

	"github.com/virtualdesk/internal/db"
	"gorm.io/gorm"
)

var ErrPlanNameMissing = errors.New("plan name is required")

// PlanView is a pricing plan prepared for rendering, with the feature
// column split into lines.
type PlanView struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	MonthlyPrice int      `json:"monthlyPrice"`
	YearlyPrice  int      `json:"yearlyPrice"`
	Features     []string `json:"features"`
	Highlight    bool     `json:"highlight"`
}

// PlanService manages the pricing plans shown on every landing page.
type PlanService struct {
	db *gorm.DB
}

// NewPlanService returns a new PlanService instance.
func NewPlanService(gdb *gorm.DB) *PlanService {
	return &PlanService{db: gdb}
}

// List returns the plans in display order.
func (s *PlanService) List() ([]db.Plan, error) {
	var plans []db.Plan
	if err := s.db.Order("sort_order, id").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// ListViews returns the plans prepared for rendering.
func (s *PlanService) ListViews() ([]PlanView, error) {
	plans, err := s.List()
	if err != nil {
		return nil, err
	}

	views := make([]PlanView, len(plans))
	for i, plan := range plans {
		views[i] = PlanView{
			ID:           plan.ID,
			Name:         plan.Name,
			MonthlyPrice: plan.MonthlyPrice,
			YearlyPrice:  plan.YearlyPrice,
			Features:     splitFeatures(plan.Features),
			Highlight:    plan.Highlight,
		}
	}
	return views, nil
}

// Save creates or updates a plan by ID.
func (s *PlanService) Save(plan *db.Plan) error {
	if strings.TrimSpace(plan.Name) == "" {
		return ErrPlanNameMissing
	}
	return s.db.Save(plan).Error
}

func splitFeatures(raw string) []string {
	var features []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	return features
}
