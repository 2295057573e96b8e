package db

import "gorm.io/gorm"

// Lead is a lead-capture submission from a landing page. PageSlug records
// which generated page the visitor was on when they submitted.
type Lead struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `json:"phone"`
	Message  string `gorm:"type:text" json:"message"`
	PageSlug string `gorm:"index" json:"pageSlug"`
}
