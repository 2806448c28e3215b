package cache

import (
	"context"
	"errors"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
)

// ErrCacheMiss is returned when the cache holds no entry for an id.
var ErrCacheMiss = errors.New("cache miss")

// EntryCache keeps document index entries close to readers. Suggestion
// listing reads through it; rewrites and reindexing invalidate.
type EntryCache interface {
	// GetDocumentEntry gets a cached document entry by document id.
	GetDocumentEntry(ctx context.Context, documentID string) (*index.DocumentEntry, error)
	// SetDocumentEntry caches a document entry.
	SetDocumentEntry(ctx context.Context, entry *index.DocumentEntry) error
	// DeleteDocumentEntry drops a cached document entry.
	DeleteDocumentEntry(ctx context.Context, documentID string) error
}
