package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/cache"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/model"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/store"
)

// NewMergeService creates a new MergeService.
func NewMergeService(store store.Store, idx index.Index, entryCache cache.EntryCache, users UserService, pageSize int) *MergeService {
	if pageSize <= 0 {
		pageSize = index.DefaultPageSize
	}

	return &MergeService{
		store:    store,
		index:    idx,
		cache:    entryCache,
		users:    users,
		pageSize: pageSize,
	}
}

// MergeService reassigns references from a source entity to a target entity
// everywhere they occur, keeping the search index in step with the system
// of record. Every mutation persists the graph record first and then
// re-derives the index projection; a crash in between leaves the index
// stale, which a reindex sweep repairs.
type MergeService struct {
	store    store.Store
	index    index.Index
	cache    cache.EntryCache
	users    UserService
	pageSize int
}

// SwitchJournalPublicationToOtherJournal points one publication at another
// journal. Missing publication or journal ids surface as ErrNotFound.
func (m *MergeService) SwitchJournalPublicationToOtherJournal(ctx context.Context, targetJournalID, publicationID string) error {
	doc, err := m.store.GetDocument(ctx, publicationID)
	if err != nil {
		return err
	}

	journal, err := m.store.GetJournal(ctx, targetJournalID)
	if err != nil {
		return err
	}

	doc.JournalID = journal.ID
	if err := m.store.SaveDocument(ctx, doc); err != nil {
		return err
	}

	return m.reindexDocument(ctx, doc)
}

// SwitchAllPublicationsToOtherJournal rewires every publication of the
// source journal to the target journal, one index page at a time.
func (m *MergeService) SwitchAllPublicationsToOtherJournal(ctx context.Context, sourceJournalID, targetJournalID string) error {
	if _, err := m.store.GetJournal(ctx, targetJournalID); err != nil {
		return err
	}

	criteria := index.DocumentCriteria{JournalID: sourceJournalID}
	var progress bulkProgress
	err := index.DrainPages(m.pageSize, func(size int) ([]*index.DocumentEntry, error) {
		return m.index.FindDocumentEntries(ctx, criteria, 0, size)
	}, documentEntryID, func(entry *index.DocumentEntry) error {
		progress.record("journal switch", entry.DocumentID,
			m.SwitchJournalPublicationToOtherJournal(ctx, targetJournalID, entry.DocumentID))
		return nil
	})
	if err != nil {
		return err
	}

	return progress.err()
}

// SwitchPublicationToOtherProceedings points one proceedings publication at
// another proceedings document.
func (m *MergeService) SwitchPublicationToOtherProceedings(ctx context.Context, targetProceedingsID, publicationID string) error {
	doc, err := m.store.GetDocument(ctx, publicationID)
	if err != nil {
		return err
	}

	proceedings, err := m.store.GetDocument(ctx, targetProceedingsID)
	if err != nil {
		return err
	}

	doc.ProceedingsID = proceedings.ID
	if err := m.store.SaveDocument(ctx, doc); err != nil {
		return err
	}

	return m.reindexDocument(ctx, doc)
}

// SwitchAllPublicationsToOtherProceedings rewires every publication of the
// source proceedings to the target proceedings.
func (m *MergeService) SwitchAllPublicationsToOtherProceedings(ctx context.Context, sourceProceedingsID, targetProceedingsID string) error {
	if _, err := m.store.GetDocument(ctx, targetProceedingsID); err != nil {
		return err
	}

	criteria := index.DocumentCriteria{ProceedingsID: sourceProceedingsID}
	var progress bulkProgress
	err := index.DrainPages(m.pageSize, func(size int) ([]*index.DocumentEntry, error) {
		return m.index.FindDocumentEntries(ctx, criteria, 0, size)
	}, documentEntryID, func(entry *index.DocumentEntry) error {
		progress.record("proceedings switch", entry.DocumentID,
			m.SwitchPublicationToOtherProceedings(ctx, targetProceedingsID, entry.DocumentID))
		return nil
	})
	if err != nil {
		return err
	}

	return progress.err()
}

// SwitchProceedingsToOtherConference points one proceedings at another
// conference. The target's serial-event flag is not enforced here; callers
// wanting that constraint check it themselves.
func (m *MergeService) SwitchProceedingsToOtherConference(ctx context.Context, targetConferenceID, proceedingsID string) error {
	doc, err := m.store.GetDocument(ctx, proceedingsID)
	if err != nil {
		return err
	}

	event, err := m.store.GetEvent(ctx, targetConferenceID)
	if err != nil {
		return err
	}

	doc.EventID = event.ID
	if err := m.store.SaveDocument(ctx, doc); err != nil {
		return err
	}

	return m.reindexDocument(ctx, doc)
}

// SwitchAllProceedingsToOtherConference rewires every proceedings of the
// source conference to the target conference.
func (m *MergeService) SwitchAllProceedingsToOtherConference(ctx context.Context, sourceConferenceID, targetConferenceID string) error {
	if _, err := m.store.GetEvent(ctx, targetConferenceID); err != nil {
		return err
	}

	criteria := index.DocumentCriteria{
		Kind:    string(model.KindProceedings),
		EventID: sourceConferenceID,
	}
	var progress bulkProgress
	err := index.DrainPages(m.pageSize, func(size int) ([]*index.DocumentEntry, error) {
		return m.index.FindDocumentEntries(ctx, criteria, 0, size)
	}, documentEntryID, func(entry *index.DocumentEntry) error {
		progress.record("conference switch", entry.DocumentID,
			m.SwitchProceedingsToOtherConference(ctx, targetConferenceID, entry.DocumentID))
		return nil
	})
	if err != nil {
		return err
	}

	return progress.err()
}

// SwitchPublicationToOtherPerson reassigns every contribution of the
// publication that points at the source person to the target person. The
// document is persisted once, whatever the number of touched contributions.
func (m *MergeService) SwitchPublicationToOtherPerson(ctx context.Context, sourcePersonID, targetPersonID, publicationID string) error {
	doc, err := m.store.GetDocument(ctx, publicationID)
	if err != nil {
		return err
	}

	target, err := m.store.GetPerson(ctx, targetPersonID)
	if err != nil {
		return err
	}

	changed := false
	for i := range doc.Contributions {
		if doc.Contributions[i].PersonID == sourcePersonID {
			doc.Contributions[i].PersonID = target.ID
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := m.store.SaveDocument(ctx, doc); err != nil {
		return err
	}

	return m.reindexDocument(ctx, doc)
}

// SwitchAllPublicationsToOtherPerson reassigns the source person's
// contributions to the target person across all their publications. Index
// rows resolving to the same underlying document are rewired once.
func (m *MergeService) SwitchAllPublicationsToOtherPerson(ctx context.Context, sourcePersonID, targetPersonID string) error {
	if _, err := m.store.GetPerson(ctx, targetPersonID); err != nil {
		return err
	}

	criteria := index.DocumentCriteria{AuthorID: sourcePersonID}
	var progress bulkProgress
	err := index.DrainPages(m.pageSize, func(size int) ([]*index.DocumentEntry, error) {
		return m.index.FindDocumentEntries(ctx, criteria, 0, size)
	}, documentEntryID, func(entry *index.DocumentEntry) error {
		progress.record("person switch", entry.DocumentID,
			m.SwitchPublicationToOtherPerson(ctx, sourcePersonID, targetPersonID, entry.DocumentID))
		return nil
	})
	if err != nil {
		return err
	}

	return progress.err()
}

// SwitchPersonToOtherOrganisationUnit moves the person's employment
// involvements from the source unit to the target unit, re-derives the
// person's index entry, and asks the user service to refresh the cached
// current organisation unit it derives from these bindings.
func (m *MergeService) SwitchPersonToOtherOrganisationUnit(ctx context.Context, sourceUnitID, targetUnitID, personID string) error {
	person, err := m.store.GetPerson(ctx, personID)
	if err != nil {
		return err
	}

	unit, err := m.store.GetOrganisationUnit(ctx, targetUnitID)
	if err != nil {
		return err
	}

	changed := false
	for i := range person.Involvements {
		involvement := &person.Involvements[i]
		if involvement.Kind != model.InvolvementEmployment {
			continue
		}
		if involvement.OrganisationUnitID == sourceUnitID {
			involvement.OrganisationUnitID = unit.ID
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := m.store.SavePerson(ctx, person); err != nil {
		return err
	}

	if err := m.index.SavePersonEntry(ctx, index.DerivePersonEntry(person)); err != nil {
		return err
	}

	return m.users.RefreshCurrentOrganisationUnit(ctx, person.ID)
}

// SwitchAllPersonsToOtherOrganisationUnit moves every person employed at the
// source unit to the target unit.
func (m *MergeService) SwitchAllPersonsToOtherOrganisationUnit(ctx context.Context, sourceUnitID, targetUnitID string) error {
	if _, err := m.store.GetOrganisationUnit(ctx, targetUnitID); err != nil {
		return err
	}

	criteria := index.PersonCriteria{EmploymentInstitutionID: sourceUnitID}
	var progress bulkProgress
	err := index.DrainPages(m.pageSize, func(size int) ([]*index.PersonEntry, error) {
		return m.index.FindPersonEntries(ctx, criteria, 0, size)
	}, func(entry *index.PersonEntry) string {
		return entry.PersonID
	}, func(entry *index.PersonEntry) error {
		progress.record("organisation unit switch", entry.PersonID,
			m.SwitchPersonToOtherOrganisationUnit(ctx, sourceUnitID, targetUnitID, entry.PersonID))
		return nil
	})
	if err != nil {
		return err
	}

	return progress.err()
}

// reindexDocument re-derives the document's index projection and drops the
// cached copy. Skipping this after a rewrite would serve stale search
// results, so an index failure is surfaced, not logged away.
func (m *MergeService) reindexDocument(ctx context.Context, doc *model.Document) error {
	if err := m.index.SaveDocumentEntry(ctx, index.DeriveDocumentEntry(doc)); err != nil {
		return err
	}

	if err := m.cache.DeleteDocumentEntry(ctx, doc.ID); err != nil {
		logrus.Errorf("dropping cached entry for document %s: %v", doc.ID, err)
	}

	return nil
}

func documentEntryID(entry *index.DocumentEntry) string {
	return entry.DocumentID
}

// bulkProgress counts per-item outcomes of a bulk switch. Item failures are
// logged and counted instead of aborting the page, so one bad record cannot
// silently sink the rest of the run.
type bulkProgress struct {
	total  int
	failed int
}

func (p *bulkProgress) record(op, id string, err error) {
	p.total++
	if err == nil {
		return
	}

	p.failed++
	if errors.Is(err, ErrNotFound) {
		logrus.Errorf("%s: entity %s vanished from the store mid-run: %v", op, id, err)
		return
	}
	logrus.Errorf("%s: entity %s: %v", op, id, err)
}

func (p *bulkProgress) err() error {
	if p.failed == 0 {
		return nil
	}

	return &BulkError{Failed: p.failed, Total: p.total}
}
