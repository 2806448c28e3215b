package model

import "gorm.io/gorm"

type OrganisationUnit struct {
	gorm.Model
	ID      string `gorm:"primaryKey;uuid;not null;"`
	Name    string `gorm:"not null"`
	Acronym string
}
