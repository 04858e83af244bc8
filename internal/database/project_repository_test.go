package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/kanban/internal/types"
)

func TestProjectCRUD(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p1 := createTestProject(t, repo, "Alpha")
	p2 := createTestProject(t, repo, "Beta")

	got, err := repo.GetProjectByID(ctx, p1.ID)
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if got.Title != "Alpha" || got.CreatedAt.IsZero() {
		t.Errorf("unexpected project: %+v", got)
	}

	all, err := repo.GetAllProjects(ctx)
	if err != nil {
		t.Fatalf("GetAllProjects failed: %v", err)
	}
	if len(all) != 2 || all[0].ID != p1.ID || all[1].ID != p2.ID {
		t.Errorf("expected [Alpha Beta], got %d projects", len(all))
	}

	renamed, err := repo.UpdateProjectTitle(ctx, p2.ID, "Gamma")
	if err != nil {
		t.Fatalf("UpdateProjectTitle failed: %v", err)
	}
	if renamed.Title != "Gamma" {
		t.Errorf("title = %q, want Gamma", renamed.Title)
	}
}

func TestGetProjectByID_NotFound(t *testing.T) {
	repo := setupRepo(t)
	id := types.NewProjectID()

	_, err := repo.GetProjectByID(context.Background(), id)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "project "+id.String()+" not found" {
		t.Errorf("unexpected message: %v", err)
	}

	_, err = repo.UpdateProjectTitle(context.Background(), id, "x")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on update, got %v", err)
	}
}

func TestGetAllProjects_EmptyIsNotNil(t *testing.T) {
	repo := setupRepo(t)

	all, err := repo.GetAllProjects(context.Background())
	if err != nil {
		t.Fatalf("GetAllProjects failed: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Errorf("expected empty slice, got %v", all)
	}
}
