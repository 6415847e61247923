package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"hnsearch/internal/domain"
	"hnsearch/internal/logic"
)

const (
	columnGap     = 1
	minTableWidth = 40
)

// Columns holds the cell widths of the result table
type Columns struct {
	Title    int
	Author   int
	Comments int
	Points   int
}

// ColumnWidths splits width into Title 40%, Author 30%, Comments and Points 10% each
func ColumnWidths(width int) Columns {
	if width < minTableWidth {
		width = minTableWidth
	}
	return Columns{
		Title:    width * 40 / 100,
		Author:   width * 30 / 100,
		Comments: width * 10 / 100,
		Points:   width * 10 / 100,
	}
}

// Total is the width of a full row including gaps
func (c Columns) Total() int {
	return c.Title + c.Author + c.Comments + c.Points + 3*columnGap
}

// TableRenderer handles rendering of the result table rows
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// RenderHeader renders the column titles, marking the sorted column
func (r *TableRenderer) RenderHeader(cols Columns, sort logic.SortState) string {
	titles := []string{"Title", "Author", "Comments", "Points"}
	if sort.Key != logic.SortNone {
		arrow := strings.TrimPrefix(sort.Label(), sort.Key.String()+" ")
		titles[int(sort.Key)-1] += " " + arrow
	}
	line := joinCells(cols, titles[0], titles[1], titles[2], titles[3])
	return r.styles.Header.Render(line)
}

// RenderRow renders one hit, highlighted when it is under the cursor
func (r *TableRenderer) RenderRow(hit domain.Hit, cols Columns, isSelected bool) string {
	title := hit.Title
	if title == "" {
		title = "(untitled)"
	}
	line := joinCells(cols,
		title,
		hit.Author,
		fmt.Sprintf("%d", hit.NumComments),
		fmt.Sprintf("%d", hit.Points),
	)
	if isSelected {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

// RenderLink renders the link of the hit under the cursor
func (r *TableRenderer) RenderLink(hit domain.Hit, cols Columns) string {
	link := runewidth.Truncate("↳ "+hit.Link(), cols.Total(), "…")
	return r.styles.Link.Render(link)
}

func joinCells(cols Columns, title, author, comments, points string) string {
	gap := strings.Repeat(" ", columnGap)
	return strings.Join([]string{
		cell(title, cols.Title, false),
		cell(author, cols.Author, false),
		cell(comments, cols.Comments, true),
		cell(points, cols.Points, true),
	}, gap)
}

// cell truncates s to width display columns and pads it, right-aligned for numbers
func cell(s string, width int, rightAlign bool) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = runewidth.Truncate(s, width, "…")
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	if rightAlign {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
