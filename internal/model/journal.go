package model

import "gorm.io/gorm"

// Journal is a publication series journal publications appear in.
type Journal struct {
	gorm.Model
	ID    string `gorm:"primaryKey;uuid;not null;"`
	Title string `gorm:"not null"`
	ISSN  string
}
