package db

import "gorm.io/gorm"

// PageVisit records a single public view of a dynamic page. VisitorID is
// the long-lived uuid cookie value, so repeat views by the same browser
// can be told apart from unique visitors.
type PageVisit struct {
	gorm.Model
	DynamicPageID uint   `gorm:"index;not null"`
	VisitorID     string `gorm:"index;size:64"`
}
