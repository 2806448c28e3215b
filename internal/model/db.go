package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	for _, m := range []any{
		&Document{},
		&Contribution{},
		&Person{},
		&Involvement{},
		&OrganisationUnit{},
		&Journal{},
		&Event{},
		&DeduplicationSuggestion{},
		&DeduplicationBlacklist{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}

	return nil
}
