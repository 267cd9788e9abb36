package reply

import (
	"errors"
	"io"

	"github.com/bnema/chatgate/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	exchange Exchange
	opts     RenderOptions
	styles   styles
	output   string
}

// Exchange is one message sent through the dispatcher and what came back.
// A nil Result means no command claimed the message.
type Exchange struct {
	Input  string
	Result *application.CommandResult
}

func newModel(exchange Exchange, opts RenderOptions) model {
	return model{
		exchange: exchange,
		opts:     opts,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.exchange, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(exchange Exchange, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(exchange, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
