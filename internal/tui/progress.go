package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StageStartMsg reports that a pipeline stage began executing.
type StageStartMsg struct{ Name string }

// StageDoneMsg reports that a pipeline stage finished.
type StageDoneMsg struct{ Name string }

// BuildDoneMsg reports that the whole pipeline finished.
type BuildDoneMsg struct{ Err error }

// ProgressModel renders live stage progress for a running build.
type ProgressModel struct {
	styles *StyleSet
	spin   spinner.Model

	stages    []string
	completed map[string]bool
	current   string

	done bool
	err  error
}

// NewProgressModel creates a progress display for the given stage names.
func NewProgressModel(theme TermTheme, stages []string) ProgressModel {
	styles := NewStyleSet(theme)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return ProgressModel{
		styles:    styles,
		spin:      sp,
		stages:    stages,
		completed: make(map[string]bool),
	}
}

// Init starts the spinner.
func (m ProgressModel) Init() tea.Cmd {
	return m.spin.Tick
}

// Update handles stage events and spinner ticks.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}

	case StageStartMsg:
		m.current = msg.Name
		return m, nil

	case StageDoneMsg:
		m.completed[msg.Name] = true
		if m.current == msg.Name {
			m.current = ""
		}
		return m, nil

	case BuildDoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders one line per stage.
func (m ProgressModel) View() string {
	var out string
	for _, name := range m.stages {
		switch {
		case m.completed[name]:
			out += "  " + m.styles.SuccessTxt.Render("✓") + " " + m.styles.PrimaryTxt.Render(name) + "\n"
		case name == m.current && !m.done:
			out += "  " + m.spin.View() + m.styles.AccentTxt.Render(name) + "\n"
		default:
			out += "  " + m.styles.DimTxt.Render("· "+name) + "\n"
		}
	}
	return out
}

// Err returns the pipeline error reported via BuildDoneMsg, if any.
func (m ProgressModel) Err() error {
	return m.err
}
