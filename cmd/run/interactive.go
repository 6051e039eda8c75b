package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veritest/veritest/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	testStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectTest modelState = iota
	stateRunning
	stateShowResult
)

type interactiveModel struct {
	suite    *engine.Suite
	cfg      *engine.Config
	result   *engine.Result
	spin     spinner.Model
	selected int
	state    modelState
}

type testDoneMsg struct {
	result engine.Result
}

func newInteractiveModel(suite *engine.Suite, cfg *engine.Config) *interactiveModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	return &interactiveModel{
		suite: suite,
		cfg:   cfg,
		spin:  sp,
		state: stateSelectTest,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) runSelected() tea.Cmd {
	index := m.selected
	return func() tea.Msg {
		return testDoneMsg{result: m.suite.RunOne(context.Background(), index, m.cfg)}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectTest && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectTest && m.selected < len(m.suite.Tests())-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectTest:
				m.state = stateRunning
				return m, tea.Batch(m.spin.Tick, m.runSelected())
			case stateShowResult:
				m.state = stateSelectTest
				m.result = nil
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateSelectTest
				m.result = nil
			}
		}

	case testDoneMsg:
		r := msg.result
		m.result = &r
		m.state = stateShowResult

	case spinner.TickMsg:
		if m.state == stateRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("veritest · " + m.suite.Name()))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectTest:
		for i, t := range m.suite.Tests() {
			line := "  " + t.Name
			if i == m.selected {
				line = selectedStyle.Render("> " + t.Name)
			} else {
				line = testStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select · enter run · q quit"))

	case stateRunning:
		b.WriteString(m.spin.View())
		b.WriteString(" running ")
		b.WriteString(m.suite.Tests()[m.selected].Name)
		b.WriteByte('\n')

	case stateShowResult:
		r := m.result
		b.WriteString(testStyle.Render(r.Name))
		b.WriteString("\n\n")
		if r.Err == nil {
			b.WriteString(resultStyle.Render(fmt.Sprintf("%s in %s", r.Status, r.Duration)))
		} else {
			b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", r.Status, r.Err)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter/esc back · q quit"))
	}

	b.WriteByte('\n')
	return b.String()
}

func runInteractive(suite *engine.Suite, cfg *engine.Config) error {
	p := tea.NewProgram(newInteractiveModel(suite, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
