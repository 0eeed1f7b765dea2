// Package tui renders a live view of a running benchmark suite.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/algobench/internal/benchmark"
)

type testStartedMsg struct{ name string }

type versionStartedMsg struct{ test, version string }

type versionFinishedMsg struct{ result benchmark.VersionResult }

type suiteDoneMsg struct{ err error }

// entry is one rendered block: a test header or a finished version.
type entry struct {
	header string
	result *benchmark.VersionResult
}

var (
	titleStyle   = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Width(30)
	timeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 0)
)

// model is the Bubble Tea model driven by suite events.
type model struct {
	spinner        spinner.Model
	cancel         context.CancelFunc
	entries        []entry
	currentTest    string
	currentVersion string
	versionStart   time.Time
	cancelling     bool
	done           bool
	err            error
}

func newModel(cancel context.CancelFunc) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &model{spinner: s, cancel: cancel}
}

func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.done {
				return m, tea.Quit
			}
			// The suite stops at its next repetition boundary and then
			// reports through suiteDoneMsg.
			m.cancelling = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil
	case testStartedMsg:
		m.entries = append(m.entries, entry{header: msg.name})
		m.currentTest = msg.name
		return m, nil
	case versionStartedMsg:
		m.currentTest = msg.test
		m.currentVersion = msg.version
		m.versionStart = time.Now()
		return m, nil
	case versionFinishedMsg:
		result := msg.result
		m.entries = append(m.entries, entry{result: &result})
		m.currentVersion = ""
		return m, nil
	case suiteDoneMsg:
		m.done = true
		m.err = msg.err
		m.currentVersion = ""
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("algobench"))
	b.WriteString("\n")

	for _, e := range m.entries {
		if e.result == nil {
			b.WriteString(headerStyle.Render(e.header))
			b.WriteString("\n")
			continue
		}
		b.WriteString(renderResult(*e.result))
		b.WriteString("\n")
	}

	switch {
	case m.done && m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Run aborted: %v", m.err)))
		b.WriteString("\n")
	case m.done:
		b.WriteString(mutedStyle.Render("\nDone."))
		b.WriteString("\n")
	case m.currentVersion != "":
		elapsed := time.Since(m.versionStart).Truncate(100 * time.Millisecond)
		status := fmt.Sprintf(" Running %s / %s... %s", m.currentTest, m.currentVersion, elapsed)
		if m.cancelling {
			status += " (cancelling)"
		}
		b.WriteString("\n" + m.spinner.View() + status + "\n")
	}
	return b.String()
}

func renderResult(r benchmark.VersionResult) string {
	stats := fmt.Sprintf("avg %s  min %s  max %s  (%d runs)",
		benchmark.FormatMillis(r.Stats.Average),
		benchmark.FormatMillis(r.Stats.Minimum),
		benchmark.FormatMillis(r.Stats.Maximum),
		len(r.Samples),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, "  ", versionStyle.Render(r.Version), timeStyle.Render(stats))
}

// programReporter forwards suite events into the running program.
type programReporter struct {
	send func(tea.Msg)
}

func (r *programReporter) TestStarted(name string) {
	r.send(testStartedMsg{name: name})
}

func (r *programReporter) VersionStarted(test, version string) {
	r.send(versionStartedMsg{test: test, version: version})
}

func (r *programReporter) VersionFinished(result benchmark.VersionResult) {
	r.send(versionFinishedMsg{result: result})
}

// Run executes suite while rendering its progress. The suite still runs its
// repetitions one at a time on a single goroutine; the program only draws.
// Any reporter already set on the suite keeps receiving events.
func Run(ctx context.Context, suite *benchmark.TestSuite, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(cancel), opts...)

	previous := suite.Reporter
	forward := &programReporter{send: p.Send}
	if previous != nil {
		suite.Reporter = benchmark.MultiReporter{previous, forward}
	} else {
		suite.Reporter = forward
	}
	defer func() { suite.Reporter = previous }()

	done := make(chan error, 1)
	go func() {
		err := suite.Run(ctx)
		done <- err
		p.Send(suiteDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-done
		return fmt.Errorf("run progress view: %w", err)
	}
	return <-done
}
