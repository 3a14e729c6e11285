package ui

import (
	"strings"

	"benchline/logging"
	"benchline/runner"
	"benchline/suite"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type uiState int

const (
	statePicking uiState = iota
	stateRunning
	stateDone
	stateFailed
)

// workloadDoneMsg is sent when one workload finishes
type workloadDoneMsg struct {
	row runner.Row
	err error
}

// Model is the interactive runner: a workload picker, then a spinner while
// each selected workload runs, with results appearing as they complete.
// Workloads are always measured one at a time, in suite order.
type Model struct {
	all      suite.Suite
	form     *huh.Form
	selected []int
	spinner  spinner.Model
	state    uiState
	queue    []suite.Workload
	rows     []runner.Row
	err      error
	width    int
	height   int
}

// NewModel creates the interactive runner for the given suite.
func NewModel(s suite.Suite) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	opts := make([]huh.Option[int], len(s.Workloads))
	for i, w := range s.Workloads {
		opts[i] = huh.NewOption(headline(w), i).Selected(true)
	}

	m := &Model{
		all:     s,
		spinner: sp,
		state:   statePicking,
	}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[int]().
			Title("Workloads").
			Description("Pick the workloads to benchmark").
			Options(opts...).
			Value(&m.selected),
	))
	return m
}

// Err returns the error that aborted the run, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.state {
	case statePicking:
		return m.updatePicking(msg)
	case stateRunning:
		return m.updateRunning(msg)
	default:
		return m.updateDone(msg)
	}
}

func (m *Model) updatePicking(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateAborted {
		return m, tea.Quit
	}
	if m.form.State == huh.StateCompleted {
		if len(m.selected) == 0 {
			return m, tea.Quit
		}
		for _, idx := range m.selected {
			m.queue = append(m.queue, m.all.Workloads[idx])
		}
		logging.Logger.Info("Starting interactive run", "workloads", len(m.queue))
		m.state = stateRunning
		return m, tea.Batch(m.spinner.Tick, m.runNext())
	}
	return m, cmd
}

func (m *Model) updateRunning(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case workloadDoneMsg:
		if msg.err != nil {
			logging.Logger.Error("Workload failed", "error", msg.err)
			m.err = msg.err
			m.state = stateFailed
			return m, tea.Quit
		}
		m.rows = append(m.rows, msg.row)
		if len(m.rows) == len(m.queue) {
			m.state = stateDone
			return m, nil
		}
		return m, m.runNext()
	}
	return m, nil
}

func (m *Model) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

// runNext benchmarks the next queued workload. Each tea.Cmd runs a single
// workload to completion before the next one is scheduled, so measurements
// never overlap.
func (m *Model) runNext() tea.Cmd {
	w := m.queue[len(m.rows)]
	return func() tea.Msg {
		row, err := runner.RunWorkload(w)
		return workloadDoneMsg{row: row, err: err}
	}
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(RenderBanner())
	b.WriteString("\n\n")

	switch m.state {
	case statePicking:
		b.WriteString(m.form.View())
	case stateRunning:
		for i, row := range m.rows {
			b.WriteString(RenderRow(i, row))
			b.WriteString("\n")
		}
		b.WriteString(m.spinner.View())
		b.WriteString(dimStyle.Render(" running " + headline(m.queue[len(m.rows)]) + "..."))
	case stateDone:
		for i, row := range m.rows {
			b.WriteString(RenderRow(i, row))
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render("press q to quit"))
	case stateFailed:
		b.WriteString(mismatchStyle.Render("run aborted: " + m.err.Error()))
	}

	b.WriteString("\n")
	return b.String()
}
