// Package store owns the relational connection and the query catalog.
package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"intranet/models"
)

// Tables that share the Profile row shape.
const (
	TableCompanies  = "companies"
	TableAssociates = "associates"
)

// Open connects to postgres through gorm.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table the directory uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Event{}); err != nil {
		return err
	}
	for _, table := range []string{TableCompanies, TableAssociates} {
		if err := db.Table(table).AutoMigrate(&models.Profile{}); err != nil {
			return err
		}
	}
	return nil
}
