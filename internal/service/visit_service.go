package service

import (
	"strings"

	"github.com/virtualdesk/internal/db"
	"gorm.io/gorm"
)

// PageStat aggregates public traffic for one dynamic page.
type PageStat struct {
	DynamicPageID  uint   `json:"dynamicPageId"`
	Slug           string `json:"slug"`
	AreaName       string `json:"areaName"`
	Purpose        string `json:"purpose"`
	Visits         int64  `json:"visits"`
	UniqueVisitors int64  `json:"uniqueVisitors"`
}

// VisitService records and aggregates public page views.
type VisitService struct {
	db *gorm.DB
}

// NewVisitService returns a new VisitService instance.
func NewVisitService(gdb *gorm.DB) *VisitService {
	return &VisitService{db: gdb}
}

// RecordVisit stores one page view. Visitor ids longer than the column
// allows are truncated rather than rejected; traffic recording must
// never break page rendering.
func (s *VisitService) RecordVisit(pageID uint, visitorID string) error {
	trimmed := strings.TrimSpace(visitorID)
	if len(trimmed) > 64 {
		trimmed = trimmed[:64]
	}
	return s.db.Create(&db.PageVisit{DynamicPageID: pageID, VisitorID: trimmed}).Error
}

// PageStats returns per-page visit totals, most visited first.
func (s *VisitService) PageStats() ([]PageStat, error) {
	var stats []PageStat
	err := s.db.Model(&db.PageVisit{}).
		Select("page_visits.dynamic_page_id, dynamic_pages.slug, dynamic_pages.area_name, dynamic_pages.purpose, COUNT(page_visits.id) AS visits, COUNT(DISTINCT page_visits.visitor_id) AS unique_visitors").
		Joins("JOIN dynamic_pages ON dynamic_pages.id = page_visits.dynamic_page_id").
		Group("page_visits.dynamic_page_id").
		Order("visits DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
