package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/model"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	var doc model.Document
	err := g.db.WithContext(ctx).Preload("Contributions").Where("id = ?", id).First(&doc).Error
	if err != nil {
		return nil, translate(err)
	}

	return &doc, nil
}

func (g *GormStore) SaveDocument(ctx context.Context, doc *model.Document) error {
	return g.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(doc).Error
}

func (g *GormStore) ListDocuments(ctx context.Context, page, size int) ([]*model.Document, error) {
	var docs []*model.Document
	err := g.db.WithContext(ctx).Preload("Contributions").
		Order("id").Offset(page * size).Limit(size).Find(&docs).Error
	return docs, err
}

func (g *GormStore) GetJournal(ctx context.Context, id string) (*model.Journal, error) {
	var journal model.Journal
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&journal).Error
	if err != nil {
		return nil, translate(err)
	}

	return &journal, nil
}

func (g *GormStore) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, translate(err)
	}

	return &event, nil
}

func (g *GormStore) GetPerson(ctx context.Context, id string) (*model.Person, error) {
	var person model.Person
	err := g.db.WithContext(ctx).Preload("Involvements").Where("id = ?", id).First(&person).Error
	if err != nil {
		return nil, translate(err)
	}

	return &person, nil
}

func (g *GormStore) SavePerson(ctx context.Context, person *model.Person) error {
	return g.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(person).Error
}

func (g *GormStore) ListPersons(ctx context.Context, page, size int) ([]*model.Person, error) {
	var persons []*model.Person
	err := g.db.WithContext(ctx).Preload("Involvements").
		Order("id").Offset(page * size).Limit(size).Find(&persons).Error
	return persons, err
}

func (g *GormStore) GetOrganisationUnit(ctx context.Context, id string) (*model.OrganisationUnit, error) {
	var unit model.OrganisationUnit
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&unit).Error
	if err != nil {
		return nil, translate(err)
	}

	return &unit, nil
}

func (g *GormStore) ListOrganisationUnits(ctx context.Context, page, size int) ([]*model.OrganisationUnit, error) {
	var units []*model.OrganisationUnit
	err := g.db.WithContext(ctx).Order("id").Offset(page * size).Limit(size).Find(&units).Error
	return units, err
}

func (g *GormStore) CreateSuggestion(ctx context.Context, suggestion *model.DeduplicationSuggestion) error {
	suggestion.LeftDocumentID, suggestion.RightDocumentID =
		model.CanonicalPair(suggestion.LeftDocumentID, suggestion.RightDocumentID)
	return g.db.WithContext(ctx).Create(suggestion).Error
}

func (g *GormStore) GetSuggestion(ctx context.Context, id string) (*model.DeduplicationSuggestion, error) {
	var suggestion model.DeduplicationSuggestion
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&suggestion).Error
	if err != nil {
		return nil, translate(err)
	}

	return &suggestion, nil
}

func (g *GormStore) ListSuggestions(ctx context.Context, page, size int) ([]*model.DeduplicationSuggestion, int64, error) {
	var total int64
	if err := g.db.WithContext(ctx).Model(&model.DeduplicationSuggestion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suggestions []*model.DeduplicationSuggestion
	err := g.db.WithContext(ctx).Order("created_at").Offset(page * size).Limit(size).Find(&suggestions).Error
	return suggestions, total, err
}

func (g *GormStore) DeleteSuggestion(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DeduplicationSuggestion{}).Error
}

func (g *GormStore) SuggestionExists(ctx context.Context, leftID, rightID string) (bool, error) {
	left, right := model.CanonicalPair(leftID, rightID)
	var count int64
	err := g.db.WithContext(ctx).Model(&model.DeduplicationSuggestion{}).
		Where("left_document_id = ? AND right_document_id = ?", left, right).
		Count(&count).Error
	return count > 0, err
}

func (g *GormStore) CreateBlacklistEntry(ctx context.Context, entry *model.DeduplicationBlacklist) error {
	entry.LeftDocumentID, entry.RightDocumentID =
		model.CanonicalPair(entry.LeftDocumentID, entry.RightDocumentID)
	return g.db.WithContext(ctx).Create(entry).Error
}

func (g *GormStore) BlacklistExists(ctx context.Context, leftID, rightID string) (bool, error) {
	left, right := model.CanonicalPair(leftID, rightID)
	var count int64
	err := g.db.WithContext(ctx).Model(&model.DeduplicationBlacklist{}).
		Where("left_document_id = ? AND right_document_id = ?", left, right).
		Count(&count).Error
	return count > 0, err
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}
