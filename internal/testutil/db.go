package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/types"
)

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})
	return db
}

// CreateTestProject creates a project with no columns and returns its ID
func CreateTestProject(t *testing.T, db *sql.DB, title string) types.ProjectID {
	t.Helper()
	p, err := database.NewRepository(db).CreateProject(context.Background(), title)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return p.ID
}

// CreateTestColumn appends a column to the project and returns its ID
func CreateTestColumn(t *testing.T, db *sql.DB, projectID types.ProjectID, title string) types.ColumnID {
	t.Helper()
	c, err := database.NewRepository(db).CreateColumn(context.Background(), projectID, title)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return c.ID
}

// CreateTestBoard appends a board to the column and returns its ID
func CreateTestBoard(t *testing.T, db *sql.DB, columnID types.ColumnID, title string) types.BoardID {
	t.Helper()
	b, err := database.NewRepository(db).CreateBoard(context.Background(), columnID, title)
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return b.ID
}
