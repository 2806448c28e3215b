package index

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrClaimerMismatch is returned when the claimer id and ordinal lists of a
// document entry diverge in length.
var ErrClaimerMismatch = errors.New("claimer ids and ordinals must have the same length")

// DocumentEntry is the denormalized search projection of one document. The
// id lists are stored as JSON in string columns.
type DocumentEntry struct {
	DocumentID      string `gorm:"primaryKey;uuid;not null;"`
	UpdatedAt       time.Time
	Kind            string `gorm:"index"`
	Title           string
	TitleOther      string
	Year            int
	AuthorIDs       string
	JournalID       string `gorm:"uuid;index"`
	ProceedingsID   string `gorm:"uuid;index"`
	EventID         string `gorm:"uuid;index"`
	ClaimerIDs      string
	ClaimerOrdinals string
}

func (DocumentEntry) TableName() string {
	return "document_index"
}

// Authors returns the ordered author id list.
func (e *DocumentEntry) Authors() []string {
	return decodeIDs(e.AuthorIDs)
}

func (e *DocumentEntry) SetAuthors(ids []string) {
	e.AuthorIDs = encodeIDs(ids)
}

// Claimers returns the claimer id list and the parallel ordinal list.
func (e *DocumentEntry) Claimers() ([]string, []int) {
	var ordinals []int
	if e.ClaimerOrdinals != "" {
		_ = json.Unmarshal([]byte(e.ClaimerOrdinals), &ordinals)
	}

	return decodeIDs(e.ClaimerIDs), ordinals
}

// SetClaimers sets the claimer lists. The lists are parallel and must have
// the same length.
func (e *DocumentEntry) SetClaimers(ids []string, ordinals []int) error {
	if len(ids) != len(ordinals) {
		return ErrClaimerMismatch
	}

	e.ClaimerIDs = encodeIDs(ids)
	data, err := json.Marshal(ordinals)
	if err != nil {
		return err
	}
	e.ClaimerOrdinals = string(data)

	return nil
}

// PersonEntry is the denormalized search projection of one person.
type PersonEntry struct {
	PersonID                 string `gorm:"primaryKey;uuid;not null;"`
	UpdatedAt                time.Time
	Name                     string
	OtherName                string
	EmploymentInstitutionIDs string
}

func (PersonEntry) TableName() string {
	return "person_index"
}

// EmploymentInstitutions returns the organisation unit ids of the person's
// employment involvements.
func (e *PersonEntry) EmploymentInstitutions() []string {
	return decodeIDs(e.EmploymentInstitutionIDs)
}

func (e *PersonEntry) SetEmploymentInstitutions(ids []string) {
	e.EmploymentInstitutionIDs = encodeIDs(ids)
}

// OrgUnitEntry is the denormalized search projection of one organisation unit.
type OrgUnitEntry struct {
	OrganisationUnitID string `gorm:"primaryKey;uuid;not null;"`
	UpdatedAt          time.Time
	Name               string
	Acronym            string
}

func (OrgUnitEntry) TableName() string {
	return "organisation_unit_index"
}

func encodeIDs(ids []string) string {
	if ids == nil {
		ids = []string{}
	}

	data, _ := json.Marshal(ids)
	return string(data)
}

func decodeIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}

	return ids
}
