package index

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewGormIndex(db *gorm.DB) *GormIndex {
	return &GormIndex{
		db: db,
	}
}

var _ Index = (*GormIndex)(nil)

// GormIndex keeps the search projection in index tables alongside the
// system of record. The id-list columns hold JSON arrays of quoted uuids,
// so membership filters use LIKE on the quoted id.
type GormIndex struct {
	db *gorm.DB
}

func Migrate(db *gorm.DB) error {
	for _, m := range []any{
		&DocumentEntry{},
		&PersonEntry{},
		&OrgUnitEntry{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}

	return nil
}

func (g *GormIndex) SaveDocumentEntry(ctx context.Context, entry *DocumentEntry) error {
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(entry).Error
}

func (g *GormIndex) GetDocumentEntry(ctx context.Context, documentID string) (*DocumentEntry, error) {
	var entry DocumentEntry
	err := g.db.WithContext(ctx).Where("document_id = ?", documentID).First(&entry).Error
	if err != nil {
		return nil, translate(err)
	}

	return &entry, nil
}

func (g *GormIndex) DeleteDocumentEntry(ctx context.Context, documentID string) error {
	return g.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&DocumentEntry{}).Error
}

func (g *GormIndex) FindDocumentEntries(ctx context.Context, criteria DocumentCriteria, page, size int) ([]*DocumentEntry, error) {
	query := g.db.WithContext(ctx).Model(&DocumentEntry{})
	if criteria.Kind != "" {
		query = query.Where("kind = ?", criteria.Kind)
	}
	if criteria.Title != "" {
		query = query.Where("LOWER(title) = LOWER(?)", criteria.Title)
	}
	if criteria.Year != 0 {
		query = query.Where("year = ?", criteria.Year)
	}
	if criteria.JournalID != "" {
		query = query.Where("journal_id = ?", criteria.JournalID)
	}
	if criteria.ProceedingsID != "" {
		query = query.Where("proceedings_id = ?", criteria.ProceedingsID)
	}
	if criteria.EventID != "" {
		query = query.Where("event_id = ?", criteria.EventID)
	}
	if criteria.AuthorID != "" {
		query = query.Where("author_ids LIKE ?", quoted(criteria.AuthorID))
	}

	var entries []*DocumentEntry
	err := query.Order("document_id").Offset(page * size).Limit(size).Find(&entries).Error
	return entries, err
}

func (g *GormIndex) SavePersonEntry(ctx context.Context, entry *PersonEntry) error {
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(entry).Error
}

func (g *GormIndex) GetPersonEntry(ctx context.Context, personID string) (*PersonEntry, error) {
	var entry PersonEntry
	err := g.db.WithContext(ctx).Where("person_id = ?", personID).First(&entry).Error
	if err != nil {
		return nil, translate(err)
	}

	return &entry, nil
}

func (g *GormIndex) DeletePersonEntry(ctx context.Context, personID string) error {
	return g.db.WithContext(ctx).Where("person_id = ?", personID).Delete(&PersonEntry{}).Error
}

func (g *GormIndex) FindPersonEntries(ctx context.Context, criteria PersonCriteria, page, size int) ([]*PersonEntry, error) {
	query := g.db.WithContext(ctx).Model(&PersonEntry{})
	if criteria.Name != "" {
		query = query.Where("LOWER(name) = LOWER(?)", criteria.Name)
	}
	if criteria.EmploymentInstitutionID != "" {
		query = query.Where("employment_institution_ids LIKE ?", quoted(criteria.EmploymentInstitutionID))
	}

	var entries []*PersonEntry
	err := query.Order("person_id").Offset(page * size).Limit(size).Find(&entries).Error
	return entries, err
}

func (g *GormIndex) SaveOrgUnitEntry(ctx context.Context, entry *OrgUnitEntry) error {
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(entry).Error
}

func (g *GormIndex) GetOrgUnitEntry(ctx context.Context, unitID string) (*OrgUnitEntry, error) {
	var entry OrgUnitEntry
	err := g.db.WithContext(ctx).Where("organisation_unit_id = ?", unitID).First(&entry).Error
	if err != nil {
		return nil, translate(err)
	}

	return &entry, nil
}

func (g *GormIndex) DeleteOrgUnitEntry(ctx context.Context, unitID string) error {
	return g.db.WithContext(ctx).Where("organisation_unit_id = ?", unitID).Delete(&OrgUnitEntry{}).Error
}

func quoted(id string) string {
	return `%"` + id + `"%`
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEntryNotFound
	}

	return err
}
