package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/kanban/internal/ordering"
)

func TestCheckProject_Healthy(t *testing.T) {
	repo := setupRepo(t)
	p := createTestProject(t, repo, "P")
	cols := createTestColumns(t, repo, p.ID, "A", "B")
	createTestBoards(t, repo, cols[0].ID, "1", "2")

	statuses, err := repo.CheckProject(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("CheckProject failed: %v", err)
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(statuses))
	}
	for _, st := range statuses {
		if !st.Healthy() {
			t.Errorf("%s of %s: %s", st.Kind, st.GroupID, st.Problem)
		}
	}
	if statuses[1].Members != 2 {
		t.Errorf("first column should have 2 boards, got %d", statuses[1].Members)
	}
}

func TestCheckProject_DetectsCycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	p := createTestProject(t, repo, "P")
	cols := createTestColumns(t, repo, p.ID, "a", "b", "c")

	// close the chain into a loop: c -> a
	if _, err := db.ExecContext(ctx, `UPDATE columns SET next_id = ? WHERE id = ?`, cols[0].ID.String(), cols[2].ID.String()); err != nil {
		t.Fatalf("corrupting chain: %v", err)
	}

	statuses, err := repo.CheckProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("CheckProject failed: %v", err)
	}
	if statuses[0].Healthy() || !strings.Contains(statuses[0].Problem, "0 tails") {
		t.Errorf("expected a missing tail, got %+v", statuses[0])
	}

	// reads terminate and report the broken chain
	_, err = repo.GetOrderedColumns(ctx, p.ID)
	if !errors.Is(err, ordering.ErrBrokenChain) {
		t.Errorf("expected ErrBrokenChain, got %v", err)
	}
}
