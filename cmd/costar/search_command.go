package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Search TMDB for movies by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}
			resp, err := svc.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return emit(cmd, asJSON, resp, func(out io.Writer, _ bool) {
				if len(resp.Results) == 0 {
					fmt.Fprintln(out, "No movies found")
					return
				}
				fmt.Fprintln(out, renderMovieTable(resp.Results, 0))
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
