package model

import (
	"sort"

	"gorm.io/gorm"
)

// Kind is the closed set of document types. All kinds share one
// contribution relation, so reference rewiring never branches per kind.
type Kind string

const (
	KindJournalPublication     Kind = "journal_publication"
	KindProceedingsPublication Kind = "proceedings_publication"
	KindProceedings            Kind = "proceedings"
	KindMonograph              Kind = "monograph"
	KindThesis                 Kind = "thesis"
	KindPatent                 Kind = "patent"
	KindSoftware               Kind = "software"
	KindDataset                Kind = "dataset"
)

// Kinds lists every document kind, in scan order.
var Kinds = []Kind{
	KindJournalPublication,
	KindProceedingsPublication,
	KindProceedings,
	KindMonograph,
	KindThesis,
	KindPatent,
	KindSoftware,
	KindDataset,
}

// Document is a research output. The reference fields are populated per
// kind: JournalID for journal publications, ProceedingsID for proceedings
// publications, EventID for proceedings themselves.
type Document struct {
	gorm.Model
	ID            string `gorm:"primaryKey;uuid;not null;"`
	Kind          Kind   `gorm:"not null;index"`
	Title         string `gorm:"not null"`
	TitleOther    string
	Year          int
	JournalID     string `gorm:"uuid;index"`
	ProceedingsID string `gorm:"uuid;index"`
	EventID       string `gorm:"uuid;index"`

	Contributions []Contribution `gorm:"foreignKey:DocumentID"`
}

// OrderedContributions returns the document contributions sorted by their
// order number. Order numbers are unique within a document.
func (d *Document) OrderedContributions() []Contribution {
	contributions := make([]Contribution, len(d.Contributions))
	copy(contributions, d.Contributions)
	sort.Slice(contributions, func(i, j int) bool {
		return contributions[i].OrderNumber < contributions[j].OrderNumber
	})

	return contributions
}
