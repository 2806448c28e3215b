package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/model"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/store"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/tester"
)

func seedJournal(t *testing.T, title string) *model.Journal {
	t.Helper()
	journal := &model.Journal{ID: uuid.New().String(), Title: title}
	assert.NoError(t, tester.TestDB().Create(journal).Error)
	return journal
}

func seedEvent(t *testing.T, name string) *model.Event {
	t.Helper()
	event := &model.Event{ID: uuid.New().String(), Name: name}
	assert.NoError(t, tester.TestDB().Create(event).Error)
	return event
}

func seedOrgUnit(t *testing.T, name string) *model.OrganisationUnit {
	t.Helper()
	unit := &model.OrganisationUnit{ID: uuid.New().String(), Name: name}
	assert.NoError(t, tester.TestDB().Create(unit).Error)
	return unit
}

func seedPerson(t *testing.T, name string, involvements ...model.Involvement) *model.Person {
	t.Helper()
	person := &model.Person{ID: uuid.New().String(), Name: name}
	for i := range involvements {
		involvements[i].ID = uuid.New().String()
		involvements[i].PersonID = person.ID
	}
	person.Involvements = involvements
	assert.NoError(t, tester.TestDB().Create(person).Error)
	return person
}

func authoredBy(personID string, order int) model.Contribution {
	return model.Contribution{
		ID:            uuid.New().String(),
		PersonID:      personID,
		OrderNumber:   order,
		Type:          model.ContributionAuthor,
		ApproveStatus: model.ApproveApproved,
	}
}

// seedDocument stores the document and derives its index entry, the way the
// out-of-scope CRUD layer would.
func seedDocument(t *testing.T, idx index.Index, doc *model.Document) *model.Document {
	t.Helper()
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	for i := range doc.Contributions {
		doc.Contributions[i].DocumentID = doc.ID
	}
	assert.NoError(t, tester.TestDB().Create(doc).Error)
	assert.NoError(t, idx.SaveDocumentEntry(context.TODO(), index.DeriveDocumentEntry(doc)))
	return doc
}

type countingStore struct {
	store.Store
	docSaves    int
	personSaves int
}

func (c *countingStore) SaveDocument(ctx context.Context, doc *model.Document) error {
	c.docSaves++
	return c.Store.SaveDocument(ctx, doc)
}

func (c *countingStore) SavePerson(ctx context.Context, person *model.Person) error {
	c.personSaves++
	return c.Store.SavePerson(ctx, person)
}

type countingIndex struct {
	index.Index
	documentFinds int
}

func (c *countingIndex) FindDocumentEntries(ctx context.Context, criteria index.DocumentCriteria, page, size int) ([]*index.DocumentEntry, error) {
	c.documentFinds++
	return c.Index.FindDocumentEntries(ctx, criteria, page, size)
}

// scriptedIndex serves pre-built finder pages while delegating everything
// else to a real index.
type scriptedIndex struct {
	index.Index
	pages [][]*index.DocumentEntry
	calls int
}

func (s *scriptedIndex) FindDocumentEntries(ctx context.Context, criteria index.DocumentCriteria, page, size int) ([]*index.DocumentEntry, error) {
	if s.calls >= len(s.pages) {
		s.calls++
		return nil, nil
	}

	entries := s.pages[s.calls]
	s.calls++
	return entries, nil
}

// blockingSimilarity parks the first scan inside the similarity call so the
// test can probe the scan lock from another goroutine.
type blockingSimilarity struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingSimilarity() *blockingSimilarity {
	return &blockingSimilarity{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingSimilarity) CandidatesFor(ctx context.Context, entry *index.DocumentEntry) ([]*index.DocumentEntry, error) {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return nil, nil
}

type failingSimilarity struct {
	err error
}

func (f *failingSimilarity) CandidatesFor(ctx context.Context, entry *index.DocumentEntry) ([]*index.DocumentEntry, error) {
	return nil, f.err
}

type recordingUserService struct {
	refreshed []string
}

func (r *recordingUserService) RefreshCurrentOrganisationUnit(ctx context.Context, personID string) error {
	r.refreshed = append(r.refreshed, personID)
	return nil
}
