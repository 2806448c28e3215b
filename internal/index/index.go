package index

import (
	"context"
	"errors"
)

// ErrEntryNotFound is returned when no index entry exists for an id.
var ErrEntryNotFound = errors.New("index entry not found")

// DocumentCriteria filters document entries. Zero-valued fields are ignored;
// set fields are ANDed together.
type DocumentCriteria struct {
	Kind          string
	Title         string
	Year          int
	JournalID     string
	ProceedingsID string
	EventID       string
	AuthorID      string
}

// PersonCriteria filters person entries.
type PersonCriteria struct {
	Name                    string
	EmploymentInstitutionID string
}

// Index is the queryable projection of documents, persons and organisation
// units, keyed by the stable database id of the indexed entity.
type Index interface {
	// SaveDocumentEntry inserts or replaces a document entry.
	SaveDocumentEntry(ctx context.Context, entry *DocumentEntry) error
	// GetDocumentEntry retrieves a document entry by document id.
	GetDocumentEntry(ctx context.Context, documentID string) (*DocumentEntry, error)
	// DeleteDocumentEntry removes a document entry.
	DeleteDocumentEntry(ctx context.Context, documentID string) error
	// FindDocumentEntries retrieves one page of entries matching the criteria.
	FindDocumentEntries(ctx context.Context, criteria DocumentCriteria, page, size int) ([]*DocumentEntry, error)

	// SavePersonEntry inserts or replaces a person entry.
	SavePersonEntry(ctx context.Context, entry *PersonEntry) error
	// GetPersonEntry retrieves a person entry by person id.
	GetPersonEntry(ctx context.Context, personID string) (*PersonEntry, error)
	// DeletePersonEntry removes a person entry.
	DeletePersonEntry(ctx context.Context, personID string) error
	// FindPersonEntries retrieves one page of entries matching the criteria.
	FindPersonEntries(ctx context.Context, criteria PersonCriteria, page, size int) ([]*PersonEntry, error)

	// SaveOrgUnitEntry inserts or replaces an organisation unit entry.
	SaveOrgUnitEntry(ctx context.Context, entry *OrgUnitEntry) error
	// GetOrgUnitEntry retrieves an organisation unit entry by id.
	GetOrgUnitEntry(ctx context.Context, unitID string) (*OrgUnitEntry, error)
	// DeleteOrgUnitEntry removes an organisation unit entry.
	DeleteOrgUnitEntry(ctx context.Context, unitID string) error
}
