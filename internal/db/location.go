package db

import "gorm.io/gorm"

// Location is a city the service operates in.
type Location struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
}

// Area is a neighbourhood or business district within a Location.
type Area struct {
	gorm.Model
	Name       string   `gorm:"not null" json:"name"`
	LocationID uint     `gorm:"index;not null" json:"locationId"`
	Location   Location `json:"-"`
}
