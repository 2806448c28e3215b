package model

import "gorm.io/gorm"

type ContributionType string

const (
	ContributionAuthor      ContributionType = "author"
	ContributionEditor      ContributionType = "editor"
	ContributionReviewer    ContributionType = "reviewer"
	ContributionAdvisor     ContributionType = "advisor"
	ContributionBoardMember ContributionType = "board_member"
)

type ApproveStatus string

const (
	ApproveRequested ApproveStatus = "requested"
	ApproveApproved  ApproveStatus = "approved"
	ApproveDeclined  ApproveStatus = "declined"
)

// Contribution links one document to one person. A contribution owns its
// person reference exclusively; merging reassigns it in place.
type Contribution struct {
	gorm.Model
	ID            string `gorm:"primaryKey;uuid;not null;"`
	DocumentID    string `gorm:"uuid;not null;index"`
	PersonID      string `gorm:"uuid;index"`
	OrderNumber   int    `gorm:"not null"`
	Type          ContributionType
	Main          bool
	Corresponding bool
	ApproveStatus ApproveStatus
}
