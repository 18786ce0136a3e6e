package social

import (
	"errors"
	"io"

	"github.com/bnema/devconnect-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	doc    Document
	opts   RenderOptions
	styles styles
	output string
}

func newModel(doc Document, opts RenderOptions) model {
	return model{
		doc:    doc,
		opts:   opts,
		styles: newStyles(),
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
		m.output = m.doc.render(m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(doc Document, opts RenderOptions) (string, error) {
	if doc == nil {
		return "", errors.New("render: nil document")
	}

	p := tea.NewProgram(
		newModel(doc, opts),
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

// RenderNotices renders inline without a program; it runs after every command.
func RenderNotices(items []domain.Notification) string {
	return Notices{Items: items}.render(RenderOptions{}, newStyles())
}
