package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"costar/internal/api"
)

// maxCellWidth wraps long titles and character names.
const maxCellWidth = 32

// column is one table column. Numeric columns are right aligned.
type column struct {
	title   string
	numeric bool
}

func textColumn(title string) column { return column{title: title} }

func numberColumn(title string) column { return column{title: title, numeric: true} }

// renderTable draws rows under cols. Short rows are padded with blanks.
func renderTable(cols []column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(cols))
	configs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		header[i] = c.title
		align := text.AlignLeft
		if c.numeric {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    maxCellWidth,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(cols))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

// renderMovieTable lists search hits. A non-zero first number prefixes
// each row with a pick number starting there.
func renderMovieTable(movies []api.Movie, firstPick int) string {
	cols := []column{numberColumn("ID"), textColumn("Title"), textColumn("Year")}
	if firstPick > 0 {
		cols = append([]column{numberColumn("#")}, cols...)
	}
	rows := make([][]string, 0, len(movies))
	for i, movie := range movies {
		row := []string{strconv.FormatInt(movie.ID, 10), movie.Title, movie.Year}
		if firstPick > 0 {
			row = append([]string{strconv.Itoa(firstPick + i)}, row...)
		}
		rows = append(rows, row)
	}
	return renderTable(cols, rows)
}
