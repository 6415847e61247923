package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hnsearch/internal/domain"
	"hnsearch/internal/logic"
	"hnsearch/internal/ui/input/modes"
	nav "hnsearch/internal/ui/logic"
)

// ReservedLines is the height taken by everything except the table rows:
// container padding, title, input area, table header, link, footer, status and help
const ReservedLines = 10

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Term            string
	Rows            []domain.Hit
	SelectedIndex   int
	ViewportOffset  int
	ViewportHeight  int
	Loading         bool
	Spinner         string
	Err             error
	Page            int
	NbPages         int
	NbHits          int
	HasMore         bool
	HasEntry        bool
	Sort            logic.SortState
	ShowURL         bool
	StatusMessage   string
	StatusIsError   bool
	InputMode       string
	TextInput       string
	SortOptionIndex int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	table  *TableRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		table:  NewTableRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	cols := ColumnWidths(availableWidth)

	content.WriteString(r.renderTitleLine(state, availableWidth))
	content.WriteString("\n")

	// Input area is always two lines so the table does not jump
	switch state.InputMode {
	case "search":
		content.WriteString(r.styles.Input.Render(state.TextInput))
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render("Enter to search • Esc to cancel"))
	case "sort":
		content.WriteString(r.renderSortOptions(state))
	default:
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(r.table.RenderHeader(cols, state.Sort))
	content.WriteString("\n")

	// Main content
	mainContent := ""
	switch {
	case state.Err != nil:
		mainContent = r.styles.StatusError.Render("Something went wrong.") + "\n" +
			r.styles.Dim.Render(state.Err.Error())
	case len(state.Rows) == 0 && state.Loading:
		mainContent = r.styles.Dim.Render("Searching Hacker News...")
	case len(state.Rows) == 0 && state.HasEntry:
		mainContent = r.styles.Dim.Render("No stories match. Press / to search for something else.")
	case len(state.Rows) == 0:
		mainContent = r.styles.Dim.Render("Nothing here yet. Press / to search.")
	default:
		mainContent = r.renderTable(state, cols)
	}
	content.WriteString(mainContent)

	// Pad so the footer sits at the bottom
	usedLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	footerLines := 4 // link, footer, status, help
	if pad := availableLines - usedLines - footerLines; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}

	content.WriteString("\n")
	if state.ShowURL && state.Err == nil && state.SelectedIndex >= 0 && state.SelectedIndex < len(state.Rows) {
		content.WriteString(r.table.RenderLink(state.Rows[state.SelectedIndex], cols))
	}
	content.WriteString("\n")
	content.WriteString(r.renderFooter(state))
	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render("Press ? for help"))

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the logo and active term with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState, availableWidth int) string {
	left := r.styles.Title.Render("hnsearch")
	if state.Term != "" {
		left += "  " + r.styles.Term.Render(fmt.Sprintf("%q", state.Term))
	}

	var indicators []string
	if state.Loading {
		indicators = append(indicators, r.styles.StatusLoading.Render(strings.TrimSpace(state.Spinner+" Loading")))
	}
	indicators = append(indicators, r.styles.Dim.Render("sort: "+state.Sort.Label()))
	right := strings.Join(indicators, "  ")

	paddingWidth := availableWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return left + strings.Repeat(" ", paddingWidth) + right
}

// renderTable renders the visible rows with scroll indicators
func (r *Renderer) renderTable(state ViewState, cols Columns) string {
	total := len(state.Rows)
	effective, top, bottom := nav.Window(state.ViewportOffset, state.ViewportHeight, total)

	var lines []string
	if top {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}

	end := state.ViewportOffset + effective
	if end > total {
		end = total
	}
	for i := state.ViewportOffset; i < end; i++ {
		lines = append(lines, r.table.RenderRow(state.Rows[i], cols, i == state.SelectedIndex))
	}

	if bottom {
		itemsBelow := total - end
		if itemsBelow < 0 {
			itemsBelow = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", itemsBelow)))
	}

	return strings.Join(lines, "\n")
}

// renderFooter shows paging and the "more" control, replaced by the loading indicator
func (r *Renderer) renderFooter(state ViewState) string {
	var parts []string
	if state.HasEntry {
		if state.NbPages > 0 {
			parts = append(parts, fmt.Sprintf("page %d of %d", state.Page+1, state.NbPages))
		} else {
			parts = append(parts, fmt.Sprintf("page %d", state.Page+1))
		}
		parts = append(parts, fmt.Sprintf("%d shown", len(state.Rows)))
		if state.NbHits > 0 {
			parts = append(parts, fmt.Sprintf("%d total", state.NbHits))
		}
	}
	footer := r.styles.Status.Render(strings.Join(parts, " • "))

	var control string
	switch {
	case state.Loading:
		control = r.styles.StatusLoading.Render("Loading…")
	case state.HasMore:
		control = r.styles.More.Render("[m] More")
	}
	if control == "" {
		return footer
	}
	if footer == "" {
		return control
	}
	return footer + "  " + control
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	if state.StatusIsError {
		return r.styles.StatusError.Render(state.StatusMessage)
	}
	return r.styles.StatusSuccess.Render(state.StatusMessage)
}

// renderSortOptions renders the sort mode selection interface
func (r *Renderer) renderSortOptions(state ViewState) string {
	if state.SortOptionIndex < 0 || state.SortOptionIndex >= len(modes.SortOptions) {
		return "\n"
	}
	option := modes.SortOptions[state.SortOptionIndex]
	sortLine := fmt.Sprintf("Sort by: %s - %s", option.Name, option.Description)
	helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
	return sortLine + "\n" + helpLine
}
