package display

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerShouldShow returns true if the spinner should be displayed.
// The spinner is hidden for quiet mode, JSON output, or non-TTY (piped)
// output.
func SpinnerShouldShow(quiet, json, nonTTY bool) bool {
	return !quiet && !json && !nonTTY
}

// SpinnerRun shows a spinner labeled with the date being fetched while fn
// runs. It blocks until fn returns.
func SpinnerRun(label string, fn func()) error {
	m := newSpinnerModel(label)
	p := tea.NewProgram(m)

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
		p.Send(spinnerDoneMsg{})
	}()

	_, err := p.Run()
	<-done
	if err != nil {
		return fmt.Errorf("running spinner: %w", err)
	}
	return nil
}

type spinnerDoneMsg struct{}

type spinnerModel struct {
	spinner  spinner.Model
	label    string
	quitting bool
}

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spinner: s, label: label}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m spinnerModel) View() string {
	// When done, return empty — the spinner is transient progress UI
	if m.quitting {
		return ""
	}
	return m.spinner.View() + " fetching " + m.label
}
