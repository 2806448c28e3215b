package model

import "gorm.io/gorm"

// DeduplicationSuggestion is a proposed duplicate-document pair awaiting an
// operator decision. The pair is unordered; it is stored in canonical order.
type DeduplicationSuggestion struct {
	gorm.Model
	ID              string `gorm:"primaryKey;uuid;not null;"`
	LeftDocumentID  string `gorm:"uuid;not null;index"`
	RightDocumentID string `gorm:"uuid;not null;index"`
}

// DeduplicationBlacklist permanently excludes an unordered document pair
// from future suggestion. Rows are insert-only and never expire.
type DeduplicationBlacklist struct {
	gorm.Model
	ID              string `gorm:"primaryKey;uuid;not null;"`
	LeftDocumentID  string `gorm:"uuid;not null;index"`
	RightDocumentID string `gorm:"uuid;not null;index"`
}

// CanonicalPair orders an unordered document pair so (A,B) and (B,A) map to
// the same stored row.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}

	return a, b
}
