package cli

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/kanban/internal/types"
)

// ProjectID parses raw, reporting a usage error through f when it is malformed
func (f *OutputFormatter) ProjectID(raw string) (types.ProjectID, error) {
	id, err := types.ParseProjectID(raw)
	if err != nil {
		return "", f.Usage("INVALID_PROJECT_ID", err.Error(), "List projects with: kanban project list")
	}
	return id, nil
}

// ColumnID parses raw, reporting a usage error through f when it is malformed
func (f *OutputFormatter) ColumnID(raw string) (types.ColumnID, error) {
	id, err := types.ParseColumnID(raw)
	if err != nil {
		return "", f.Usage("INVALID_COLUMN_ID", err.Error(), "List columns with: kanban column list <project-id>")
	}
	return id, nil
}

// BoardID parses raw, reporting a usage error through f when it is malformed
func (f *OutputFormatter) BoardID(raw string) (types.BoardID, error) {
	id, err := types.ParseBoardID(raw)
	if err != nil {
		return "", f.Usage("INVALID_BOARD_ID", err.Error(), "List boards with: kanban board list <column-id>")
	}
	return id, nil
}

// Plural returns "n noun" with an s appended unless n is 1
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ProjectEnv names the variable set by "kanban use project"
const ProjectEnv = "KANBAN_PROJECT"

// ResolveProjectID parses raw, falling back to $KANBAN_PROJECT when raw is empty
func (f *OutputFormatter) ResolveProjectID(raw string) (types.ProjectID, error) {
	if raw == "" {
		raw = os.Getenv(ProjectEnv)
	}
	if raw == "" {
		return "", f.Usage("NO_PROJECT", "no project given",
			"Pass a project ID or set one with: eval $(kanban use project <project-id>)")
	}
	return f.ProjectID(raw)
}
