package database

import (
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	db *sql.DB
	*ProjectRepo
	*ColumnRepo
	*BoardRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:          db,
		ProjectRepo: &ProjectRepo{db: db},
		ColumnRepo:  &ColumnRepo{db: db},
		BoardRepo:   &BoardRepo{db: db},
	}
}
