// Package doctor checks that the stored ordering chains are intact
package doctor

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ErrBrokenChains is returned when at least one group does not form a single chain
var ErrBrokenChains = errors.New("broken ordering chains found")

// DoctorCmd returns the doctor command
func DoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor [project-id]",
		Short: "Check the column and board order of projects",
		Long: `Verify that the columns of each project, and the boards of each column,
form exactly one chain from head to tail. Without a project ID every project
is checked. Exits with status 4 when a broken chain is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDoctor,
	}

	cli.AddOutputFlags(cmd, "Only print the groups that are broken")

	return cmd
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	var only types.ProjectID
	if len(args) == 1 {
		id, err := formatter.ProjectID(args[0])
		if err != nil {
			return err
		}
		only = id
	}

	cliInstance, closeCLI, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	var projectIDs []types.ProjectID
	if only != "" {
		if _, err := cliInstance.App.ProjectService.GetProject(ctx, only); err != nil {
			return formatter.Fail(err)
		}
		projectIDs = append(projectIDs, only)
	} else {
		projects, err := cliInstance.App.ProjectService.ListProjects(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		for _, p := range projects {
			projectIDs = append(projectIDs, p.ID)
		}
	}

	var all []database.ChainStatus
	for _, id := range projectIDs {
		statuses, err := cliInstance.App.Repo().CheckProject(ctx, id)
		if err != nil {
			return formatter.Fail(err)
		}
		all = append(all, statuses...)
	}

	broken := 0
	for _, st := range all {
		if !st.Healthy() {
			broken++
		}
	}

	switch {
	case formatter.JSON:
		if all == nil {
			all = []database.ChainStatus{}
		}
		if err := formatter.WriteJSON(map[string]any{
			"success": broken == 0,
			"chains":  all,
		}); err != nil {
			return err
		}
	case formatter.Quiet:
		for _, st := range all {
			if !st.Healthy() {
				fmt.Printf("%s %s: %s\n", st.Kind, st.GroupID, st.Problem)
			}
		}
	default:
		styles.Init(cliInstance.Config.ColorScheme)
		for _, st := range all {
			if st.Healthy() {
				formatter.Printf("%s %s %s (%s)\n", styles.SuccessStyle.Render("✓"), st.Kind, st.GroupID,
					cli.Plural(st.Members, "member"))
				continue
			}
			formatter.Printf("%s %s %s: %s\n", styles.ErrorStyle.Render("✗"), st.Kind, st.GroupID, st.Problem)
		}
		if broken == 0 {
			formatter.Printf("\nAll %s healthy\n", cli.Plural(len(all), "chain"))
		} else {
			formatter.Printf("\n%s broken\n", cli.Plural(broken, "chain"))
		}
	}

	if broken > 0 {
		return &cli.CodeError{Code: cli.ExitDataErr, Err: ErrBrokenChains}
	}
	return nil
}
