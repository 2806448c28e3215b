package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/model"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/store"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/tester"
)

func TestDeduplicationService_ScanCreatesSuggestionOnce(t *testing.T) {
	tester.Setup()
	graph := store.NewGormStore(tester.TestDB())
	idx := index.NewGormIndex(tester.TestDB())

	doc1 := seedDocument(t, idx, &model.Document{Kind: model.KindJournalPublication, Title: "Graph Consolidation"})
	doc2 := seedDocument(t, idx, &model.Document{Kind: model.KindJournalPublication, Title: "graph consolidation"})
	seedDocument(t, idx, &model.Document{Kind: model.KindJournalPublication, Title: "Something Else"})

	dedup := NewDeduplicationService(graph, idx, tester.Cache(), index.NewTitleSimilarity(idx, 10), 10)

	started, err := dedup.StartScan(context.TODO())
	assert.NoError(t, err)
	assert.True(t, started)

	views, total, err := dedup.Suggestions(context.TODO(), 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)

	left, right := model.CanonicalPair(doc1.ID, doc2.ID)
	assert.Equal(t, left, views[0].LeftID)
	assert.Equal(t, right, views[0].RightID)
	assert.NotNil(t, views[0].Left)
	assert.NotNil(t, views[0].Right)

	// A rescan over unchanged data must not duplicate the open suggestion.
	started, err = dedup.StartScan(context.TODO())
	assert.NoError(t, err)
	assert.True(t, started)

	_, total, err = dedup.Suggestions(context.TODO(), 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestDeduplicationService_FlagNotDuplicateIsIdempotent(t *testing.T) {
	tester.Setup()
	graph := store.NewGormStore(tester.TestDB())
	idx := index.NewGormIndex(tester.TestDB())

	docA := uuid.New().String()
	docB := uuid.New().String()

	// Two suggestions resolving to the same unordered pair.
	first := &model.DeduplicationSuggestion{ID: uuid.New().String(), LeftDocumentID: docA, RightDocumentID: docB}
	second := &model.DeduplicationSuggestion{ID: uuid.New().String(), LeftDocumentID: docB, RightDocumentID: docA}
	assert.NoError(t, graph.CreateSuggestion(context.TODO(), first))
	assert.NoError(t, graph.CreateSuggestion(context.TODO(), second))

	dedup := NewDeduplicationService(graph, idx, tester.Cache(), index.NewTitleSimilarity(idx, 10), 10)

	assert.NoError(t, dedup.FlagNotDuplicate(context.TODO(), first.ID))
	assert.NoError(t, dedup.FlagNotDuplicate(context.TODO(), second.ID))

	var blacklisted int64
	assert.NoError(t, tester.TestDB().Model(&model.DeduplicationBlacklist{}).Count(&blacklisted).Error)
	assert.Equal(t, int64(1), blacklisted)

	_, total, err := dedup.Suggestions(context.TODO(), 0, 10)
	assert.NoError(t, err)
	assert.Zero(t, total)
}

func TestDeduplicationService_FlagMissingSuggestionIsNoop(t *testing.T) {
	tester.Setup()
	graph := store.NewGormStore(tester.TestDB())
	idx := index.NewGormIndex(tester.TestDB())

	dedup := NewDeduplicationService(graph, idx, tester.Cache(), index.NewTitleSimilarity(idx, 10), 10)

	assert.NoError(t, dedup.FlagNotDuplicate(context.TODO(), uuid.New().String()))

	var blacklisted int64
	assert.NoError(t, tester.TestDB().Model(&model.DeduplicationBlacklist{}).Count(&blacklisted).Error)
	assert.Zero(t, blacklisted)
}

func TestDeduplicationService_DismissedPairIsNeverReproposed(t *testing.T) {
	tester.Setup()
	graph := store.NewGormStore(tester.TestDB())
	idx := index.NewGormIndex(tester.TestDB())

	seedDocument(t, idx, &model.Document{Kind: model.KindJournalPublication, Title: "Duplicate Work"})
	seedDocument(t, idx, &model.Document{Kind: model.KindJournalPublication, Title: "Duplicate Work"})

	dedup := NewDeduplicationService(graph, idx, tester.Cache(), index.NewTitleSimilarity(idx, 10), 10)

	started, err := dedup.StartScan(context.TODO())
	assert.NoError(t, err)
	assert.True(t, started)

	views, total, err := dedup.Suggestions(context.TODO(), 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)

	assert.NoError(t, dedup.FlagNotDuplicate(context.TODO(), views[0].ID))

	// The similarity backend still proposes the pair, the blacklist wins.
	started, err = dedup.StartScan(context.TODO())
	assert.NoError(t, err)
	assert.True(t, started)

	_, total, err = dedup.Suggestions(context.TODO(), 0, 10)
	assert.NoError(t, err)
	assert.Zero(t, total)
}

func TestDeduplicationService_ScanIsSingleFlight(t *testing.T) {
	tester.Setup()
	graph := store.NewGormStore(tester.TestDB())
	idx := index.NewGormIndex(tester.TestDB())

	seedDocument(t, idx, &model.Document{Kind: model.KindJournalPublication, Title: "Busy Document"})

	similarity := newBlockingSimilarity()
	dedup := NewDeduplicationService(graph, idx, tester.Cache(), similarity, 10)

	firstDone := make(chan bool)
	go func() {
		started, err := dedup.StartScan(context.TODO())
		assert.NoError(t, err)
		firstDone <- started
	}()

	// Wait until the first scan is parked inside the similarity call, then
	// probe the lock.
	<-similarity.entered
	started, err := dedup.StartScan(context.TODO())
	assert.NoError(t, err)
	assert.False(t, started)

	close(similarity.release)
	assert.True(t, <-firstDone)

	// The lock is free again once the scan completes.
	started, err = dedup.StartScan(context.TODO())
	assert.NoError(t, err)
	assert.True(t, started)
}

func TestDeduplicationService_ScanFailureReleasesLock(t *testing.T) {
	tester.Setup()
	graph := store.NewGormStore(tester.TestDB())
	idx := index.NewGormIndex(tester.TestDB())

	seedDocument(t, idx, &model.Document{Kind: model.KindJournalPublication, Title: "Fragile Document"})

	wantErr := errors.New("similarity backend down")
	dedup := NewDeduplicationService(graph, idx, tester.Cache(), &failingSimilarity{err: wantErr}, 10)

	started, err := dedup.StartScan(context.TODO())
	assert.True(t, started)
	assert.ErrorIs(t, err, wantErr)

	// The failed run must not leave the lock stuck.
	started, err = dedup.StartScan(context.TODO())
	assert.True(t, started)
	assert.ErrorIs(t, err, wantErr)
}

func TestDeduplicationService_SuggestionsResolveMissingDocuments(t *testing.T) {
	tester.Setup()
	graph := store.NewGormStore(tester.TestDB())
	idx := index.NewGormIndex(tester.TestDB())

	doc := seedDocument(t, idx, &model.Document{Kind: model.KindJournalPublication, Title: "Survivor"})
	gone := uuid.New().String()

	assert.NoError(t, graph.CreateSuggestion(context.TODO(), &model.DeduplicationSuggestion{
		ID:              uuid.New().String(),
		LeftDocumentID:  doc.ID,
		RightDocumentID: gone,
	}))

	dedup := NewDeduplicationService(graph, idx, tester.Cache(), index.NewTitleSimilarity(idx, 10), 10)

	views, total, err := dedup.Suggestions(context.TODO(), 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)

	for _, view := range views {
		if view.LeftID == doc.ID {
			assert.NotNil(t, view.Left)
			assert.Equal(t, "Survivor", view.Left.Title)
		}
		if view.RightID == gone {
			assert.Nil(t, view.Right)
		}
		if view.LeftID == gone {
			assert.Nil(t, view.Left)
		}
	}
}
