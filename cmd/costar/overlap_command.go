package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"costar/internal/api"
)

const (
	absentCell  = "—"
	unnamedRole = "(unnamed role)"
)

func newOverlapCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "overlap <movie> <movie> [movie...]",
		Short: "List actors who appear in at least two of the given movies",
		Long: `Each movie is a TMDB id or a title. Titles are searched and the best
match is used; add a bracketed year such as "Heat (1995)" to disambiguate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}
			resp, err := svc.OverlapByArgs(cmd.Context(), args)
			if err != nil {
				return err
			}
			return emit(cmd, asJSON, resp, func(out io.Writer, colorize bool) {
				renderOverlap(out, resp, colorize)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func renderOverlap(out io.Writer, resp api.OverlapResponse, colorize bool) {
	fmt.Fprintln(out, renderSectionHeader("Movies", colorize))
	for i, movie := range resp.Movies {
		fmt.Fprintf(out, "%s%d. %s\n", statusIndent, i+1, movieLabel(movie))
	}
	fmt.Fprintln(out)

	if len(resp.Actors) == 0 {
		fmt.Fprintln(out, renderStatusLine("Shared actors", statusWarn, "no actor appears in more than one movie", colorize))
		return
	}

	cols := []column{textColumn("Actor"), numberColumn("Movies")}
	for _, movie := range resp.Movies {
		cols = append(cols, textColumn(movieLabel(movie)))
	}
	rows := make([][]string, 0, len(resp.Actors))
	for _, actor := range resp.Actors {
		row := []string{actor.Name, strconv.Itoa(actor.Count)}
		for i := range resp.Movies {
			row = append(row, roleCell(actor, i))
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(out, renderTable(cols, rows))

	summary := fmt.Sprintf("%d across %d movies, %d in all of them",
		resp.Summary.SharedActors, resp.Summary.Movies, resp.Summary.InAllMovies)
	fmt.Fprintln(out, renderStatusLine("Shared actors", statusOK, summary, colorize))
}

func movieLabel(movie api.Movie) string {
	if movie.Year == "" || movie.Year == "N/A" {
		return movie.Title
	}
	return fmt.Sprintf("%s (%s)", movie.Title, movie.Year)
}

func roleCell(actor api.Actor, movieIndex int) string {
	role, ok := actor.RoleIn(movieIndex)
	switch {
	case !ok:
		return absentCell
	case role == "":
		return unnamedRole
	}
	return role
}
