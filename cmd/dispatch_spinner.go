package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/chatgate/internal/application"
	"github.com/bnema/chatgate/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	dispatchKeywordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	dispatchHintStyle    = lipgloss.NewStyle().Faint(true)
)

type dispatchedMsg struct {
	result *application.CommandResult
}

// dispatchModel spins while a single message goes through the handler chain
// and keeps the handler's result once it arrives.
type dispatchModel struct {
	spinner  spinner.Model
	keyword  string
	dispatch func() *application.CommandResult

	result  *application.CommandResult
	claimed bool
}

func newDispatchModel(body string, dispatch func() *application.CommandResult) dispatchModel {
	return dispatchModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(dispatchKeywordStyle),
		),
		keyword:  commandKeyword(body),
		dispatch: dispatch,
	}
}

func (m dispatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return dispatchedMsg{result: m.dispatch()}
	})
}

func (m dispatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchedMsg:
		m.result = msg.result
		m.claimed = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dispatchModel) View() string {
	if m.claimed {
		return ""
	}
	if m.keyword == "" {
		return m.spinner.View() + " " + dispatchHintStyle.Render("checking message for commands")
	}
	return m.spinner.View() + " " + dispatchKeywordStyle.Render(m.keyword) + " " + dispatchHintStyle.Render("running")
}

// commandKeyword names what the handler chain is about to see: the slash
// command, "abort" for a bare abort phrase, or "" for ordinary text.
func commandKeyword(body string) string {
	trimmed := strings.TrimSpace(body)
	if domain.IsAbortTrigger(trimmed) {
		return "abort"
	}
	if !strings.HasPrefix(trimmed, "/") {
		return ""
	}
	keyword, _, _ := strings.Cut(trimmed, " ")
	keyword, _, _ = strings.Cut(keyword, ":")
	return strings.ToLower(keyword)
}

// dispatchWithSpinner runs dispatch under a spinner drawn on output.
func dispatchWithSpinner(ctx context.Context, output io.Writer, body string, dispatch func() *application.CommandResult) (*application.CommandResult, error) {
	final, err := tea.NewProgram(
		newDispatchModel(body, dispatch),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return nil, fmt.Errorf("dispatch %q: %w", commandKeyword(body), err)
	}

	model, ok := final.(dispatchModel)
	if !ok {
		return nil, fmt.Errorf("unexpected dispatch model %T", final)
	}
	return model.result, nil
}
