package session

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"filmshelf/internal/library"
)

// renderMovies prints a movie table to the controller's output.
func (c *Controller) renderMovies(movies []library.Movie) {
	tw := table.NewWriter()
	tw.SetOutputMirror(c.out)
	if c.styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}

	tw.AppendHeader(table.Row{"Title", "Year", "Rating", "Director", "Genre"})
	for _, movie := range movies {
		year := ""
		if movie.Year != 0 {
			year = strconv.Itoa(movie.Year)
		}
		tw.AppendRow(table.Row{movie.Title, year, formatRating(movie.Rating), movie.Director, movie.Genre})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	tw.Render()
}
