package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/cache"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/model"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/store"
)

// NewReindexService creates a new ReindexService.
func NewReindexService(store store.Store, idx index.Index, entryCache cache.EntryCache, pageSize int) *ReindexService {
	if pageSize <= 0 {
		pageSize = index.DefaultPageSize
	}

	return &ReindexService{
		store:    store,
		index:    idx,
		cache:    entryCache,
		pageSize: pageSize,
	}
}

// ReindexService re-derives the whole search projection from the system of
// record, page by page. It is the recovery path for index staleness left
// behind by a crash between a graph save and the paired index save.
type ReindexService struct {
	store    store.Store
	index    index.Index
	cache    cache.EntryCache
	pageSize int
}

// RebuildAll re-derives every document, person and organisation unit entry.
func (r *ReindexService) RebuildAll(ctx context.Context) error {
	if err := r.RebuildDocuments(ctx); err != nil {
		return err
	}

	if err := r.RebuildPersons(ctx); err != nil {
		return err
	}

	return r.RebuildOrganisationUnits(ctx)
}

func (r *ReindexService) RebuildDocuments(ctx context.Context) error {
	count := 0
	err := index.EachPage(r.pageSize, func(page, size int) ([]*model.Document, error) {
		return r.store.ListDocuments(ctx, page, size)
	}, func(doc *model.Document) error {
		if err := r.index.SaveDocumentEntry(ctx, index.DeriveDocumentEntry(doc)); err != nil {
			return err
		}
		if err := r.cache.DeleteDocumentEntry(ctx, doc.ID); err != nil {
			logrus.Errorf("dropping cached entry for document %s: %v", doc.ID, err)
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Infof("reindexed %d documents", count)
	return nil
}

func (r *ReindexService) RebuildPersons(ctx context.Context) error {
	count := 0
	err := index.EachPage(r.pageSize, func(page, size int) ([]*model.Person, error) {
		return r.store.ListPersons(ctx, page, size)
	}, func(person *model.Person) error {
		if err := r.index.SavePersonEntry(ctx, index.DerivePersonEntry(person)); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Infof("reindexed %d persons", count)
	return nil
}

func (r *ReindexService) RebuildOrganisationUnits(ctx context.Context) error {
	count := 0
	err := index.EachPage(r.pageSize, func(page, size int) ([]*model.OrganisationUnit, error) {
		return r.store.ListOrganisationUnits(ctx, page, size)
	}, func(unit *model.OrganisationUnit) error {
		if err := r.index.SaveOrgUnitEntry(ctx, index.DeriveOrgUnitEntry(unit)); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Infof("reindexed %d organisation units", count)
	return nil
}
