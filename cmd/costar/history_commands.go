package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"costar/internal/api"
	"costar/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past overlap runs",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent overlap runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureHistory()
			if err != nil {
				return userError(err)
			}
			if limit <= 0 {
				limit = ctx.config.History.Limit
			}
			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			resp := api.HistoryResponse{Runs: api.FromHistoryRuns(runs)}
			return emit(cmd, asJSON, resp, func(out io.Writer, _ bool) {
				if len(resp.Runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return
				}
				rows := make([][]string, 0, len(resp.Runs))
				for _, run := range resp.Runs {
					rows = append(rows, []string{
						shortRunID(run.ID),
						run.CreatedAt,
						joinMovieTitles(run.Movies),
						strconv.Itoa(run.SharedActors),
					})
				}
				fmt.Fprintln(out, renderTable([]column{
					textColumn("Run"), textColumn("When"), textColumn("Movies"), numberColumn("Shared"),
				}, rows))
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum runs to show (defaults to history.limit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one overlap run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureHistory()
			if err != nil {
				return userError(err)
			}
			id, err := resolveRunID(cmd, store, args[0])
			if err != nil {
				return err
			}
			run, err := store.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			dto := api.FromHistoryRun(run)
			return emit(cmd, asJSON, dto, func(out io.Writer, colorize bool) {
				fmt.Fprintln(out, renderSectionHeader("Run "+dto.ID, colorize))
				fmt.Fprintln(out, renderStatusLine("Recorded", statusInfo, dto.CreatedAt, colorize))
				fmt.Fprintln(out, renderStatusLine("Movies", statusInfo, joinMovieTitles(dto.Movies), colorize))
				fmt.Fprintln(out, renderStatusLine("Shared actors", statusInfo, strconv.Itoa(dto.SharedActors), colorize))
				if len(dto.TopActors) == 0 {
					return
				}
				rows := make([][]string, 0, len(dto.TopActors))
				for _, actor := range dto.TopActors {
					rows = append(rows, []string{actor.Name, strconv.Itoa(actor.Appearances)})
				}
				fmt.Fprintln(out, renderTable([]column{textColumn("Actor"), numberColumn("Movies")}, rows))
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureHistory()
			if err != nil {
				return userError(err)
			}
			var removed int64
			if keep > 0 {
				removed, err = store.Prune(cmd.Context(), keep)
			} else {
				removed, err = store.Clear(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d run(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 0, "Keep the newest N runs instead of clearing everything")
	return cmd
}

type runLister interface {
	List(ctx context.Context, limit int) ([]history.Run, error)
}

// resolveRunID expands an id prefix as printed by `history list`.
func resolveRunID(cmd *cobra.Command, store runLister, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	runs, err := store.List(cmd.Context(), 0)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, run := range runs {
		if run.ID == prefix {
			return run.ID, nil
		}
		if strings.HasPrefix(run.ID, prefix) {
			matches = append(matches, run.ID)
		}
	}
	switch len(matches) {
	case 0:
		return prefix, nil
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("run id %q is ambiguous (%d matches)", prefix, len(matches))
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func joinMovieTitles(movies []api.HistoryMovie) string {
	titles := make([]string, len(movies))
	for i, movie := range movies {
		titles[i] = movie.Title
	}
	return strings.Join(titles, " / ")
}
