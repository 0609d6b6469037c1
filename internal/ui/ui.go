// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orbits/internal/orbit"
	"github.com/litescript/ls-orbits/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewElements ViewMode = iota
	ViewState
	ViewClock
)

const viewCount = 3

// TickMsg triggers the periodic clock refresh.
type TickMsg time.Time

// Model is the root Bubble Tea model. The calculation happens once, up
// front; the views only render the results.
type Model struct {
	viewMode ViewMode
	width    int
	height   int
	ready    bool

	elements ElementsModel
	state    StateModel
	clock    ClockModel
}

// New creates the root UI model for a parsed element set. The state vector
// transform runs here so every view works from the same results.
func New(el orbit.Elements) Model {
	sv, svErr := el.StateVector()
	return Model{
		viewMode: ViewElements,
		elements: NewElementsModel(el),
		state:    NewStateModel(sv, el, svErr),
		clock:    NewClockModel(el.Epoch),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "e":
			m.viewMode = ViewElements
		case "2", "s":
			m.viewMode = ViewState
		case "3", "c":
			m.viewMode = ViewClock
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		m.clock = m.clock.SetNow(time.Time(msg))
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body string
	switch m.viewMode {
	case ViewElements:
		body = m.elements.View()
	case ViewState:
		body = m.state.View()
	case ViewClock:
		body = m.clock.View()
	}

	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9D4EDD")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func (m Model) renderHeader() string {
	title := titleStyle.Render("ls-orbits") + dimStyle.Render(" v"+version.Version)
	return "  " + title + "\n" + m.renderTabs()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Elements", "[2] State Vector", "[3] Clock"}

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeTabStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	return "  " + dimStyle.Render("tab: switch view | q: quit")
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// row renders a label/value pair as one table line.
func row(label, value string) string {
	return "  " + labelStyle.Render(padRight(label, 22)) + valueStyle.Render(value)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
