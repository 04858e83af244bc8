package database

import (
	"context"
	"errors"
	"testing"
)

func TestRunInTx_ProjectCascadeStages(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	p := createTestProject(t, repo, "P")
	cols := createTestColumns(t, repo, p.ID, "A", "B")
	createTestBoards(t, repo, cols[0].ID, "1", "2", "3")
	createTestBoards(t, repo, cols[1].ID, "4", "5", "6")

	var boards, columns, projects int64
	err := repo.RunInTx(ctx, func(tx *Tx) error {
		var err error
		if boards, err = tx.DeleteBoardsByProject(ctx, p.ID); err != nil {
			return err
		}
		if columns, err = tx.DeleteColumnsByProject(ctx, p.ID); err != nil {
			return err
		}
		projects, err = tx.DeleteProject(ctx, p.ID)
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx failed: %v", err)
	}
	if boards != 6 || columns != 2 || projects != 1 {
		t.Errorf("deleted boards=%d columns=%d projects=%d, want 6/2/1", boards, columns, projects)
	}
}

func TestRunInTx_RollsBackOnError(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	p := createTestProject(t, repo, "P")
	col := createTestColumns(t, repo, p.ID, "A")[0]
	createTestBoards(t, repo, col.ID, "1", "2")

	boom := errors.New("boom")
	err := repo.RunInTx(ctx, func(tx *Tx) error {
		if _, err := tx.DeleteBoardsByColumn(ctx, col.ID); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if got := boardTitles(t, repo, col.ID); !equalStrings(got, []string{"1", "2"}) {
		t.Errorf("boards should survive a rolled back tx, got %v", got)
	}
}

func TestDeleteProject_RefusesWithChildren(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	p := createTestProject(t, repo, "P")
	createTestColumns(t, repo, p.ID, "A")

	// foreign keys keep a project with columns from disappearing on its own
	err := repo.RunInTx(ctx, func(tx *Tx) error {
		_, err := tx.DeleteProject(ctx, p.ID)
		return err
	})
	if err == nil {
		t.Fatal("expected a foreign key error")
	}
}

func TestUnlinkColumn_RepairsProjectChain(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	p := createTestProject(t, repo, "P")
	cols := createTestColumns(t, repo, p.ID, "a", "b", "c")

	err := repo.RunInTx(ctx, func(tx *Tx) error {
		projectID, err := tx.ProjectIDForColumn(ctx, cols[1].ID)
		if err != nil {
			return err
		}
		if projectID != p.ID {
			t.Errorf("project = %s, want %s", projectID, p.ID)
		}
		_, err = tx.UnlinkColumn(ctx, cols[1].ID)
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx failed: %v", err)
	}

	if got := columnTitles(t, repo, p.ID); !equalStrings(got, []string{"a", "c"}) {
		t.Errorf("order = %v, want [a c]", got)
	}
}
