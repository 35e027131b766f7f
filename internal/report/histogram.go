package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"filmshelf/internal/library"
)

// histogramBins spans ratings 1 through 10 in ten equal-width bins.
const histogramBins = 10

const (
	histogramLo = 1.0
	histogramHi = 10.0
)

// Bin is one histogram bucket over the rating axis. The upper edge is
// exclusive except for the final bin, which includes 10.0.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram buckets the collection's ratings into the fixed bins. Ratings
// outside [1,10] are dropped, matching a plot constrained to that range.
func Histogram(movies []library.Movie) []Bin {
	width := (histogramHi - histogramLo) / histogramBins
	bins := make([]Bin, histogramBins)
	for i := range bins {
		bins[i].Lo = histogramLo + float64(i)*width
		bins[i].Hi = bins[i].Lo + width
	}
	bins[histogramBins-1].Hi = histogramHi

	for _, movie := range movies {
		r := movie.Rating
		if r < histogramLo || r > histogramHi {
			continue
		}
		idx := int((r - histogramLo) / width)
		if idx >= histogramBins {
			idx = histogramBins - 1
		}
		bins[idx].Count++
	}
	return bins
}

// RenderHistogram writes one bar row per bin plus a mean footer. Bars scale
// to a fixed width so large collections stay readable.
func RenderHistogram(w io.Writer, bins []Bin, mean float64, styled bool) {
	const maxBarWidth = 40

	maxCount := 0
	for _, bin := range bins {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.AppendHeader(table.Row{"Rating", "Movies", ""})

	for _, bin := range bins {
		width := 0
		if maxCount > 0 {
			width = bin.Count * maxBarWidth / maxCount
		}
		if bin.Count > 0 && width == 0 {
			width = 1
		}
		label := fmt.Sprintf("%.1f-%.1f", bin.Lo, bin.Hi)
		if bin.Lo <= mean && mean < bin.Hi || (bin.Hi == histogramHi && mean == histogramHi) {
			label += " *"
		}
		tw.AppendRow(table.Row{label, bin.Count, strings.Repeat("#", width)})
	}
	tw.AppendFooter(table.Row{"mean *", fmt.Sprintf("%.1f", mean), ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})
	tw.Render()
}
