package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// emit writes v to stdout as indented JSON when asJSON is set. Otherwise
// render draws the human view, colorized only on a terminal.
func emit(cmd *cobra.Command, asJSON bool, v any, render func(out io.Writer, colorize bool)) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	render(out, shouldColorize(out))
	return nil
}
