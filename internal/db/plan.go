package db

import "gorm.io/gorm"

// Plan is a row in the pricing comparison table shown on landing pages.
// Features holds one feature per line.
type Plan struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	MonthlyPrice int    `gorm:"not null" json:"monthlyPrice"`
	YearlyPrice  int    `gorm:"not null" json:"yearlyPrice"`
	Features     string `gorm:"type:text" json:"features"`
	Highlight    bool   `json:"highlight"`
	SortOrder    int    `gorm:"default:0" json:"sortOrder"`
}
