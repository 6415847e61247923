package ui

import (
	"fmt"
	"html"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
	"github.com/noborus/ov/oviewer"

	"hnsearch/internal/domain"
)

var (
	pagerTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	pagerSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginTop(1)

	pagerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	pagerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	pagerLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Underline(true)
)

// Pager shows long-form content in the ov pager
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a pager; SetProgram must be called before Show
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the pager can take over the terminal
func (p *Pager) Available() bool {
	return p.program != nil
}

// Show runs ov on content until the user exits it
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// ov needs a moment to give the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move up/down"},
		{"PgUp/PgDn", "Page up/down"},
		{"gg/G, Home/End", "Go to top/bottom"},
	}},
	{"Stories", []helpEntry{
		{"Enter, o", "Open story in browser"},
		{"i", "Show story details"},
		{"x, d, Delete", "Dismiss story"},
		{"m", "Load more results"},
	}},
	{"Search & Sort", []helpEntry{
		{"/", "Search Hacker News"},
		{"t/a/c/p", "Sort by title/author/comments/points"},
		{"0", "Clear sort"},
		{"S", "Sort options"},
	}},
	{"Other", []helpEntry{
		{"?", "Show this help"},
		{"q, Ctrl+C", "Quit"},
	}},
}

// HelpContent renders the key binding reference
func HelpContent() string {
	width := 0
	for _, section := range helpSections {
		for _, e := range section.entries {
			width = max(width, lipgloss.Width(e.keys))
		}
	}

	var b strings.Builder
	b.WriteString(pagerTitleStyle.Render("HN Search Help"))
	b.WriteString("\n")
	for _, section := range helpSections {
		b.WriteString(pagerSectionStyle.Render(section.title))
		b.WriteString("\n")
		for _, e := range section.entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.keys))
			fmt.Fprintf(&b, "  %s%s  %s\n", pagerKeyStyle.Render(e.keys), pad, pagerDescStyle.Render(e.desc))
		}
	}
	return b.String()
}

var storyTextPolicy = bluemonday.StrictPolicy()

// DetailsContent renders everything known about a hit
func DetailsContent(hit domain.Hit) string {
	var b strings.Builder

	title := hit.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(pagerTitleStyle.Render(title))
	b.WriteString("\n")

	field := func(name, value string) {
		fmt.Fprintf(&b, "  %s  %s\n", pagerKeyStyle.Render(fmt.Sprintf("%-9s", name)), pagerDescStyle.Render(value))
	}
	field("Author", hit.Author)
	field("Points", fmt.Sprint(hit.Points))
	field("Comments", fmt.Sprint(hit.NumComments))
	if created := formatCreatedAt(hit.CreatedAt); created != "" {
		field("Posted", created)
	}

	b.WriteString(pagerSectionStyle.Render("Links"))
	b.WriteString("\n")
	if hit.URL != "" {
		fmt.Fprintf(&b, "  %s\n", pagerLinkStyle.Render(hit.URL))
	}
	fmt.Fprintf(&b, "  %s\n", pagerLinkStyle.Render(hit.ItemURL()))

	if text := StoryText(hit.StoryText); text != "" {
		b.WriteString(pagerSectionStyle.Render("Text"))
		b.WriteString("\n")
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// StoryText converts the HTML body of Ask/Show posts to plain text
func StoryText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	raw = strings.ReplaceAll(raw, "<p>", "\n\n")
	text := html.UnescapeString(storyTextPolicy.Sanitize(raw))
	return strings.TrimSpace(text)
}

func formatCreatedAt(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2006-01-02 15:04 MST")
}
