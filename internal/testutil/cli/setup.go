// Package cli holds helpers for tests of the kanban subcommands. It lives
// apart from testutil so service tests importing testutil do not pull in cobra.
package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/types"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The App has no event publisher; event publishing is tested elsewhere.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(database.NewRepository(db))
}

// CreateTestProject wraps testutil.CreateTestProject for CLI tests
func CreateTestProject(t *testing.T, db *sql.DB, title string) types.ProjectID {
	t.Helper()
	return testutil.CreateTestProject(t, db, title)
}

// CreateTestColumn wraps testutil.CreateTestColumn for CLI tests
func CreateTestColumn(t *testing.T, db *sql.DB, projectID types.ProjectID, title string) types.ColumnID {
	t.Helper()
	return testutil.CreateTestColumn(t, db, projectID, title)
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests
func CreateTestBoard(t *testing.T, db *sql.DB, columnID types.ColumnID, title string) types.BoardID {
	t.Helper()
	return testutil.CreateTestBoard(t, db, columnID, title)
}
