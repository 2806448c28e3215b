package cache

import (
	"context"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
)

var _ EntryCache = (*Nop)(nil)

// Nop is the cache for tests and cache-less deployments. Every read misses.
type Nop struct {
}

func NewNop() *Nop {
	return &Nop{}
}

func (n *Nop) GetDocumentEntry(ctx context.Context, documentID string) (*index.DocumentEntry, error) {
	return nil, ErrCacheMiss
}

func (n *Nop) SetDocumentEntry(ctx context.Context, entry *index.DocumentEntry) error {
	return nil
}

func (n *Nop) DeleteDocumentEntry(ctx context.Context, documentID string) error {
	return nil
}
