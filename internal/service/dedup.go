package service

import (
	"context"
	"errors"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/cache"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/model"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/store"
)

// NewDeduplicationService creates a new DeduplicationService.
func NewDeduplicationService(store store.Store, idx index.Index, entryCache cache.EntryCache, similarity index.Similarity, pageSize int) *DeduplicationService {
	if pageSize <= 0 {
		pageSize = index.DefaultPageSize
	}

	return &DeduplicationService{
		store:      store,
		index:      idx,
		cache:      entryCache,
		similarity: similarity,
		pageSize:   pageSize,
	}
}

// DeduplicationService produces and manages duplicate-document suggestions.
// A pair an operator already dismissed is never proposed again.
type DeduplicationService struct {
	store      store.Store
	index      index.Index
	cache      cache.EntryCache
	similarity index.Similarity
	pageSize   int

	// scanning guards the single-flight scan. Only the caller that flips it
	// from false to true runs; everyone else is turned away immediately.
	scanning atomic.Bool
}

// SuggestionView is one open suggestion resolved for an operator UI. Left
// and Right are nil when the index no longer holds the document.
type SuggestionView struct {
	ID      string
	LeftID  string
	RightID string
	Left    *index.DocumentEntry
	Right   *index.DocumentEntry
}

// StartScan runs a duplicate scan over the whole document index. It returns
// false without error when a scan is already running; that is an expected
// outcome, not a failure. The lock is released on every exit path.
func (s *DeduplicationService) StartScan(ctx context.Context) (bool, error) {
	if !s.scanning.CompareAndSwap(false, true) {
		logrus.Warn("duplicate scan already in progress, skipping")
		return false, nil
	}
	defer s.scanning.Store(false)

	logrus.Info("starting duplicate scan")
	if err := s.scan(ctx); err != nil {
		return true, err
	}
	logrus.Info("duplicate scan finished")

	return true, nil
}

func (s *DeduplicationService) scan(ctx context.Context) error {
	// Pair keys checked in this run. Candidates are symmetric, so (B,A)
	// shows up again when B is scanned.
	checked := mapset.NewThreadUnsafeSet[string]()

	for _, kind := range model.Kinds {
		criteria := index.DocumentCriteria{Kind: string(kind)}
		err := index.EachPage(s.pageSize, func(page, size int) ([]*index.DocumentEntry, error) {
			return s.index.FindDocumentEntries(ctx, criteria, page, size)
		}, func(entry *index.DocumentEntry) error {
			return s.suggestCandidates(ctx, entry, checked)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *DeduplicationService) suggestCandidates(ctx context.Context, entry *index.DocumentEntry, checked mapset.Set[string]) error {
	candidates, err := s.similarity.CandidatesFor(ctx, entry)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		if candidate.DocumentID == entry.DocumentID {
			continue
		}

		left, right := model.CanonicalPair(entry.DocumentID, candidate.DocumentID)
		if !checked.Add(left + ":" + right) {
			continue
		}

		blacklisted, err := s.store.BlacklistExists(ctx, left, right)
		if err != nil {
			return err
		}
		if blacklisted {
			continue
		}

		open, err := s.store.SuggestionExists(ctx, left, right)
		if err != nil {
			return err
		}
		if open {
			continue
		}

		err = s.store.CreateSuggestion(ctx, &model.DeduplicationSuggestion{
			ID:              uuid.New().String(),
			LeftDocumentID:  left,
			RightDocumentID: right,
		})
		if err != nil {
			return err
		}
		logrus.Infof("suggested duplicate pair (%s, %s)", left, right)
	}

	return nil
}

// Suggestions returns one page of open suggestions with both documents
// resolved, and the total number of open suggestions.
func (s *DeduplicationService) Suggestions(ctx context.Context, page, size int) ([]*SuggestionView, int64, error) {
	if size <= 0 {
		size = s.pageSize
	}

	suggestions, total, err := s.store.ListSuggestions(ctx, page, size)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*SuggestionView, 0, len(suggestions))
	for _, suggestion := range suggestions {
		views = append(views, &SuggestionView{
			ID:      suggestion.ID,
			LeftID:  suggestion.LeftDocumentID,
			RightID: suggestion.RightDocumentID,
			Left:    s.resolveEntry(ctx, suggestion.LeftDocumentID),
			Right:   s.resolveEntry(ctx, suggestion.RightDocumentID),
		})
	}

	return views, total, nil
}

// resolveEntry reads a document entry through the cache. A document missing
// from the index resolves to nil; the suggestion is still listed.
func (s *DeduplicationService) resolveEntry(ctx context.Context, documentID string) *index.DocumentEntry {
	entry, err := s.cache.GetDocumentEntry(ctx, documentID)
	if err == nil {
		return entry
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logrus.Errorf("reading document entry %s from cache: %v", documentID, err)
	}

	entry, err = s.index.GetDocumentEntry(ctx, documentID)
	if err != nil {
		if !errors.Is(err, index.ErrEntryNotFound) {
			logrus.Errorf("reading document entry %s from index: %v", documentID, err)
		}
		return nil
	}

	if err := s.cache.SetDocumentEntry(ctx, entry); err != nil {
		logrus.Errorf("caching document entry %s: %v", documentID, err)
	}

	return entry
}

// FlagNotDuplicate dismisses a suggestion permanently: the pair goes to the
// blacklist (at most once, whatever the pair orientation) and the suggestion
// is deleted. A missing suggestion is a no-op.
func (s *DeduplicationService) FlagNotDuplicate(ctx context.Context, suggestionID string) error {
	suggestion, err := s.store.GetSuggestion(ctx, suggestionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	blacklisted, err := s.store.BlacklistExists(ctx, suggestion.LeftDocumentID, suggestion.RightDocumentID)
	if err != nil {
		return err
	}
	if !blacklisted {
		err = s.store.CreateBlacklistEntry(ctx, &model.DeduplicationBlacklist{
			ID:              uuid.New().String(),
			LeftDocumentID:  suggestion.LeftDocumentID,
			RightDocumentID: suggestion.RightDocumentID,
		})
		if err != nil {
			return err
		}
	}

	return s.store.DeleteSuggestion(ctx, suggestionID)
}

// DeleteSuggestion removes a suggestion without blacklisting the pair, for
// the merge path and for dismissals without judgment.
func (s *DeduplicationService) DeleteSuggestion(ctx context.Context, suggestionID string) error {
	return s.store.DeleteSuggestion(ctx, suggestionID)
}
