package index

import (
	"context"
	"strings"
)

// Similarity proposes near-duplicate candidates for a document entry. The
// scoring model behind it is an external concern; the deduplication scan
// only consumes its results.
type Similarity interface {
	// CandidatesFor returns document entries that probably describe the same
	// work as the given entry. The entry itself may appear in the result.
	CandidatesFor(ctx context.Context, entry *DocumentEntry) ([]*DocumentEntry, error)
}

// TitleSimilarity is the built-in fallback matcher: entries of the same kind
// whose titles match case-insensitively. Deployments with a real similarity
// backend plug it in through the Similarity interface.
type TitleSimilarity struct {
	index Index
	size  int
}

func NewTitleSimilarity(index Index, size int) *TitleSimilarity {
	if size <= 0 {
		size = DefaultPageSize
	}

	return &TitleSimilarity{index: index, size: size}
}

var _ Similarity = (*TitleSimilarity)(nil)

func (t *TitleSimilarity) CandidatesFor(ctx context.Context, entry *DocumentEntry) ([]*DocumentEntry, error) {
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		return nil, nil
	}

	return t.index.FindDocumentEntries(ctx, DocumentCriteria{
		Kind:  entry.Kind,
		Title: title,
	}, 0, t.size)
}
