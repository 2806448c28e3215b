package model

import "gorm.io/gorm"

// Event is a conference or similar gathering that proceedings belong to.
// SerialEvent is carried for callers; proceedings switching does not
// enforce it.
type Event struct {
	gorm.Model
	ID          string `gorm:"primaryKey;uuid;not null;"`
	Name        string `gorm:"not null"`
	Year        int
	SerialEvent bool
}
