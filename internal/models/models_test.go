package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/thenoetrevino/kanban/internal/types"
)

func TestColumn_IsTail(t *testing.T) {
	next := types.NewColumnID()
	tests := []struct {
		name   string
		column Column
		want   bool
	}{
		{"no next is tail", Column{ID: types.NewColumnID()}, true},
		{"with next is not tail", Column{ID: types.NewColumnID(), NextID: &next}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.column.IsTail(); got != tt.want {
				t.Errorf("IsTail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoard_JSONOmitsNilNext(t *testing.T) {
	b := Board{ID: types.NewBoardID(), ColumnID: types.NewColumnID(), Title: "Write docs"}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if strings.Contains(string(data), "nextId") {
		t.Errorf("tail board should not carry nextId, got %s", data)
	}
	if !strings.Contains(string(data), `"columnId"`) {
		t.Errorf("expected camelCase columnId field, got %s", data)
	}
}
