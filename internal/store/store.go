package store

import (
	"context"
	"errors"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/model"
)

// ErrNotFound is returned when a referenced id does not exist in the store.
var ErrNotFound = errors.New("record not found")

type Store interface {
	DocumentStore
	PersonStore
	DeduplicationStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type DocumentStore interface {
	// GetDocument retrieves a document with its contributions.
	GetDocument(ctx context.Context, id string) (*model.Document, error)
	// SaveDocument persists a document and its contributions.
	SaveDocument(ctx context.Context, doc *model.Document) error
	// ListDocuments retrieves one page of documents with their contributions.
	ListDocuments(ctx context.Context, page, size int) ([]*model.Document, error)
	// GetJournal retrieves a journal by ID.
	GetJournal(ctx context.Context, id string) (*model.Journal, error)
	// GetEvent retrieves a conference or other event by ID.
	GetEvent(ctx context.Context, id string) (*model.Event, error)
}

type PersonStore interface {
	// GetPerson retrieves a person with their involvements.
	GetPerson(ctx context.Context, id string) (*model.Person, error)
	// SavePerson persists a person and their involvements.
	SavePerson(ctx context.Context, person *model.Person) error
	// ListPersons retrieves one page of persons with their involvements.
	ListPersons(ctx context.Context, page, size int) ([]*model.Person, error)
	// GetOrganisationUnit retrieves an organisation unit by ID.
	GetOrganisationUnit(ctx context.Context, id string) (*model.OrganisationUnit, error)
	// ListOrganisationUnits retrieves one page of organisation units.
	ListOrganisationUnits(ctx context.Context, page, size int) ([]*model.OrganisationUnit, error)
}

type DeduplicationStore interface {
	// CreateSuggestion persists a new duplicate-document suggestion.
	CreateSuggestion(ctx context.Context, suggestion *model.DeduplicationSuggestion) error
	// GetSuggestion retrieves a suggestion by ID.
	GetSuggestion(ctx context.Context, id string) (*model.DeduplicationSuggestion, error)
	// ListSuggestions retrieves one page of open suggestions and the total count.
	ListSuggestions(ctx context.Context, page, size int) ([]*model.DeduplicationSuggestion, int64, error)
	// DeleteSuggestion deletes a suggestion by ID.
	DeleteSuggestion(ctx context.Context, id string) error
	// SuggestionExists reports whether an open suggestion exists for the
	// unordered document pair.
	SuggestionExists(ctx context.Context, leftID, rightID string) (bool, error)
	// CreateBlacklistEntry persists a dismissed document pair.
	CreateBlacklistEntry(ctx context.Context, entry *model.DeduplicationBlacklist) error
	// BlacklistExists reports whether the unordered document pair was
	// dismissed before.
	BlacklistExists(ctx context.Context, leftID, rightID string) (bool, error)
}
