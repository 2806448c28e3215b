package model

import "gorm.io/gorm"

type InvolvementKind string

const (
	InvolvementEmployment InvolvementKind = "employment"
	InvolvementMembership InvolvementKind = "membership"
	InvolvementEducation  InvolvementKind = "education"
)

type Person struct {
	gorm.Model
	ID        string `gorm:"primaryKey;uuid;not null;"`
	Name      string `gorm:"not null"`
	OtherName string

	Involvements []Involvement `gorm:"foreignKey:PersonID"`
}

// Involvement binds a person to an organisation unit. Only employment
// involvements are rewired when organisation units merge.
type Involvement struct {
	gorm.Model
	ID                 string `gorm:"primaryKey;uuid;not null;"`
	PersonID           string `gorm:"uuid;not null;index"`
	OrganisationUnitID string `gorm:"uuid;index"`
	Kind               InvolvementKind
}
