package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// setupTestDB creates an in-memory database with the real migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})
	return db
}

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t))
}

func createTestProject(t *testing.T, repo *Repository, title string) *models.Project {
	t.Helper()
	p, err := repo.CreateProject(context.Background(), title)
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	return p
}

func createTestColumns(t *testing.T, repo *Repository, projectID types.ProjectID, titles ...string) []*models.Column {
	t.Helper()
	out := make([]*models.Column, 0, len(titles))
	for _, title := range titles {
		c, err := repo.CreateColumn(context.Background(), projectID, title)
		if err != nil {
			t.Fatalf("Failed to create column %q: %v", title, err)
		}
		out = append(out, c)
	}
	return out
}

func createTestBoards(t *testing.T, repo *Repository, columnID types.ColumnID, titles ...string) []*models.Board {
	t.Helper()
	out := make([]*models.Board, 0, len(titles))
	for _, title := range titles {
		b, err := repo.CreateBoard(context.Background(), columnID, title)
		if err != nil {
			t.Fatalf("Failed to create board %q: %v", title, err)
		}
		out = append(out, b)
	}
	return out
}

func columnTitles(t *testing.T, repo *Repository, projectID types.ProjectID) []string {
	t.Helper()
	columns, err := repo.GetOrderedColumns(context.Background(), projectID)
	if err != nil {
		t.Fatalf("Failed to get ordered columns: %v", err)
	}
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title
	}
	return titles
}

func boardTitles(t *testing.T, repo *Repository, columnID types.ColumnID) []string {
	t.Helper()
	boards, err := repo.GetOrderedBoards(context.Background(), columnID)
	if err != nil {
		t.Fatalf("Failed to get ordered boards: %v", err)
	}
	titles := make([]string, len(boards))
	for i, b := range boards {
		titles[i] = b.Title
	}
	return titles
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
