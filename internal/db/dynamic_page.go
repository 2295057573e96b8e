package db

import "gorm.io/gorm"

// DynamicPage is a generated landing page keyed by its slug. Pages are
// created only through the bulk generation path; afterwards they are
// toggled, annotated with extra content, or deleted, never re-generated
// in place.
type DynamicPage struct {
	gorm.Model
	AreaName        string `gorm:"not null" json:"areaName"`
	CityName        string `gorm:"not null" json:"cityName"`
	Purpose         string `gorm:"not null" json:"purpose"`
	Slug            string `gorm:"uniqueIndex;not null" json:"slug"`
	OverviewContent string `gorm:"type:text" json:"overviewContent"`
	BenefitsContent string `gorm:"type:text" json:"benefitsContent"`
	WhyUsContent    string `gorm:"type:text" json:"whyUsContent"`
	ExtraContent    string `gorm:"type:text" json:"extraContent"`
	IsActive        bool   `gorm:"default:true" json:"isActive"`
}
