package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"costar/internal/api"
	"costar/internal/selection"
)

func newPickCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose movies one search at a time, then list their shared actors",
		Long: `Prompts for a title, shows the matching movies and asks which one to use.
Repeat for as many movies as you like; a blank title ends the selection.
Prompts go to stderr so --json output stays clean.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}
			p := &picker{
				model:  svc.NewSelection(),
				lines:  bufio.NewScanner(cmd.InOrStdin()),
				prompt: cmd.ErrOrStderr(),
			}
			if err := p.fill(cmd.Context()); err != nil {
				return err
			}
			resp, err := svc.OverlapSelection(cmd.Context(), p.model)
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

type picker struct {
	model  *selection.Model
	lines  *bufio.Scanner
	prompt io.Writer
}

// ask prints a prompt and reads one line. ok is false once input ends.
func (p *picker) ask(format string, args ...any) (string, bool) {
	fmt.Fprintf(p.prompt, format, args...)
	if !p.lines.Scan() {
		return "", false
	}
	return strings.TrimRight(p.lines.Text(), "\r"), true
}

// fill walks the slots in order, adding one whenever the last is filled,
// until a blank title or the end of input.
func (p *picker) fill(ctx context.Context) error {
	for slot := 0; ; slot++ {
		if slot == p.model.Len() {
			p.model.Add()
		}
		done, err := p.fillSlot(ctx, slot)
		if err != nil || done {
			p.model.Dismiss(-1)
			return err
		}
	}
}

func (p *picker) fillSlot(ctx context.Context, slot int) (bool, error) {
	for {
		query, ok := p.ask("Movie %d title (blank to finish): ", slot+1)
		if !ok || strings.TrimSpace(query) == "" {
			return true, nil
		}
		if err := p.model.SetInput(ctx, slot, query); err != nil {
			return false, err
		}
		results := p.model.Slots()[slot].Results
		if len(results) == 0 {
			fmt.Fprintf(p.prompt, "No movies match %q\n", query)
			continue
		}
		fmt.Fprintln(p.prompt, renderMovieTable(api.FromMovies(results), 1))

		answer, ok := p.ask("Pick 1-%d (blank to search again): ", len(results))
		if !ok {
			return true, nil
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(results) {
			fmt.Fprintf(p.prompt, "%q is not one of the listed movies\n", answer)
			continue
		}
		return false, p.model.SelectResult(slot, n-1)
	}
}
