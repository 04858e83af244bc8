package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/ordering"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ChainStatus is the health of one ordered group
type ChainStatus struct {
	Kind    string `json:"kind"` // "columns" or "boards"
	GroupID string `json:"groupId"`
	Members int    `json:"members"`
	Problem string `json:"problem,omitempty"`
}

// Healthy reports whether the group forms a single chain
func (s ChainStatus) Healthy() bool {
	return s.Problem == ""
}

// CheckProject validates the column chain of a project and the board chain of
// each of its columns. Broken chains are reported in the result, not as an error.
func (r *Repository) CheckProject(ctx context.Context, projectID types.ProjectID) ([]ChainStatus, error) {
	columns, err := r.GetColumnsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	statuses := make([]ChainStatus, 0, len(columns)+1)
	_, err = OrderColumns(columns)
	st, err := chainStatus("columns", projectID.String(), len(columns), err)
	if err != nil {
		return nil, err
	}
	statuses = append(statuses, st)

	for _, c := range columns {
		boards, err := r.GetBoardsByColumn(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		_, err = OrderBoards(boards)
		st, err := chainStatus("boards", c.ID.String(), len(boards), err)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func chainStatus(kind, group string, members int, err error) (ChainStatus, error) {
	st := ChainStatus{Kind: kind, GroupID: group, Members: members}
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, ordering.ErrBrokenChain) {
		return st, fmt.Errorf("checking %s of %s: %w", kind, group, err)
	}
	st.Problem = err.Error()
	return st, nil
}
