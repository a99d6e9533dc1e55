package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"cost-item-service/internal/costitem/repository"
	"cost-item-service/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the cost item domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("costitem/repository/postgres: db is required")
	}
	return &implRepository{db: db, l: l}
}

// AutoMigrate creates or updates the cost_items table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&costItemRecord{})
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("costitem/repository/postgres.%s", method)
}
