package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// WizardResult holds the answers collected by the init wizard.
type WizardResult struct {
	AppID        string
	Entry        string
	Dependencies []string
}

type wizardField struct {
	label       string
	placeholder string
	validate    func(string) error
	value       string
}

// WizardModel is the bubbletea model for the `bento init` question flow.
type WizardModel struct {
	styles  *StyleSet
	fields  []wizardField
	input   textinput.Model
	current int
	errMsg  string
	done    bool
	aborted bool
}

// NewWizardModel creates the init wizard.
func NewWizardModel(theme TermTheme) WizardModel {
	styles := NewStyleSet(theme)

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 200

	fields := []wizardField{
		{
			label:       "Application name",
			placeholder: "my-tool",
			validate: func(s string) error {
				if s == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			},
		},
		{
			label:       "Entry source file",
			placeholder: "main.py",
		},
		{
			label:       "Dependencies (comma separated)",
			placeholder: "click, requests",
		},
	}
	ti.Placeholder = fields[0].placeholder

	return WizardModel{
		styles: styles,
		fields: fields,
		input:  ti,
	}
}

// Init focuses the first input.
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key messages.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			val := strings.TrimSpace(m.input.Value())
			field := &m.fields[m.current]
			if field.validate != nil {
				if err := field.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			field.value = val
			m.errMsg = ""
			m.current++
			if m.current >= len(m.fields) {
				m.done = true
				return m, tea.Quit
			}
			m.input.SetValue("")
			m.input.Placeholder = m.fields[m.current].placeholder
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.errMsg = ""
	return m, cmd
}

// View renders completed answers and the active prompt.
func (m WizardModel) View() string {
	var out string
	out += "\n  " + m.styles.Title.Render("bento init") + "\n\n"

	for i := 0; i < m.current && i < len(m.fields); i++ {
		out += "  " + m.styles.SuccessTxt.Render("✓") + " " +
			m.styles.SummaryKey.Render(m.fields[i].label) +
			m.styles.PrimaryTxt.Render(m.fields[i].value) + "\n"
	}

	if m.current < len(m.fields) {
		out += "\n  " + m.styles.PrimaryTxt.Render(m.fields[m.current].label) + "\n"
		out += "  " + m.styles.InputBorder.Render(m.input.View()) + "\n"
		if m.errMsg != "" {
			out += "  " + m.styles.ErrorTxt.Render("✗ "+m.errMsg) + "\n"
		}
		out += "\n  " + m.styles.DimTxt.Render("enter to confirm · esc to cancel") + "\n"
	}

	return out
}

// Done reports whether all questions were answered.
func (m WizardModel) Done() bool { return m.done }

// Aborted reports whether the user cancelled the wizard.
func (m WizardModel) Aborted() bool { return m.aborted }

// Result returns the collected answers.
func (m WizardModel) Result() WizardResult {
	res := WizardResult{
		AppID: m.fields[0].value,
		Entry: m.fields[1].value,
	}
	if res.Entry == "" {
		res.Entry = "main.py"
	}
	for _, dep := range strings.Split(m.fields[2].value, ",") {
		if d := strings.TrimSpace(dep); d != "" {
			res.Dependencies = append(res.Dependencies, d)
		}
	}
	return res
}
