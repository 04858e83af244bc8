package types

import (
	"fmt"

	"github.com/google/uuid"
)

// ID types give each identifier its own type so a column id can never be passed
// where a board id is expected. All of them are UUID strings on the wire and in the store.

// ProjectID identifies a unique project in the system
type ProjectID string

// ColumnID identifies a unique column within a project
type ColumnID string

// BoardID identifies a unique board (card) within a column
type BoardID string

// NewProjectID generates a fresh random project id
func NewProjectID() ProjectID {
	return ProjectID(uuid.NewString())
}

// NewColumnID generates a fresh random column id
func NewColumnID() ColumnID {
	return ColumnID(uuid.NewString())
}

// NewBoardID generates a fresh random board id
func NewBoardID() BoardID {
	return BoardID(uuid.NewString())
}

// ParseProjectID validates s and returns it in canonical form
func ParseProjectID(s string) (ProjectID, error) {
	id, err := parse(s)
	return ProjectID(id), err
}

// ParseColumnID validates s and returns it in canonical form
func ParseColumnID(s string) (ColumnID, error) {
	id, err := parse(s)
	return ColumnID(id), err
}

// ParseBoardID validates s and returns it in canonical form
func ParseBoardID(s string) (BoardID, error) {
	id, err := parse(s)
	return BoardID(id), err
}

func parse(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid id %q: %w", s, err)
	}
	return u.String(), nil
}

func (id ProjectID) String() string { return string(id) }
func (id ColumnID) String() string  { return string(id) }
func (id BoardID) String() string   { return string(id) }

// Valid reports whether the id is a well-formed UUID
func (id ProjectID) Valid() bool { return valid(string(id)) }
func (id ColumnID) Valid() bool  { return valid(string(id)) }
func (id BoardID) Valid() bool   { return valid(string(id)) }

func valid(s string) bool {
	return uuid.Validate(s) == nil
}
