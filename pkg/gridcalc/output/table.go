package output

import (
	"bufio"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/models"
)

// TableOptions configures RenderTable.
type TableOptions struct {
	// ErrorToken marks cells to highlight. If empty, nothing is highlighted.
	ErrorToken string
	// Color enables ANSI colors for headers and highlighted cells.
	Color bool
}

// RenderTable prints the cells of area with column letters on top and row
// numbers on the left. Each cell shows its computed value, or its raw value
// when nothing was computed.
func RenderTable(w io.Writer, grid models.Grid, area models.Area, opts TableOptions) error {
	if area.Empty() {
		return nil
	}

	header := color.New(color.Faint)
	errCell := color.New(color.FgRed, color.Bold)
	if opts.Color {
		header.EnableColor()
		errCell.EnableColor()
	} else {
		header.DisableColor()
		errCell.DisableColor()
	}

	cols := area.C2 - area.C1 + 1
	names := make([]string, cols)
	widths := make([]int, cols)
	for i := range names {
		name, err := excelize.ColumnNumberToName(area.C1 + i)
		if err != nil {
			return err
		}
		names[i] = name
		widths[i] = runewidth.StringWidth(name)
	}

	texts := make([][]string, 0, area.R2-area.R1+1)
	for row := area.R1; row <= area.R2; row++ {
		line := make([]string, cols)
		for i := range line {
			cellName := names[i] + strconv.Itoa(row)
			line[i] = grid[cellName].Display()
			widths[i] = max(widths[i], runewidth.StringWidth(line[i]))
		}
		texts = append(texts, line)
	}
	gutter := len(strconv.Itoa(area.R2))

	bw := bufio.NewWriter(w)
	bw.WriteString(runewidth.FillRight("", gutter))
	for i, name := range names {
		bw.WriteString("  ")
		bw.WriteString(header.Sprint(pad(name, widths[i], i == cols-1)))
	}
	bw.WriteString("\n")

	for r, line := range texts {
		bw.WriteString(header.Sprint(runewidth.FillLeft(strconv.Itoa(area.R1+r), gutter)))
		for i, text := range line {
			bw.WriteString("  ")
			cell := pad(text, widths[i], i == cols-1)
			if opts.ErrorToken != "" && text == opts.ErrorToken {
				cell = errCell.Sprint(cell)
			}
			bw.WriteString(cell)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// pad fills text to width, except in the last column.
func pad(text string, width int, last bool) string {
	if last {
		return text
	}
	return runewidth.FillRight(text, width)
}
