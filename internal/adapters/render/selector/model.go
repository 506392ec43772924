package selector

import (
	"errors"
	"io"

	"github.com/bnema/nirogya-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	slots  []Slot
	single bool
	opts   RenderOptions
	styles styles
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		if m.single && len(m.slots) == 1 {
			m.output = renderSelector(m.slots[0].State, m.opts, m.styles)
		} else {
			m.output = renderBoard(m.slots, m.opts, m.styles)
		}
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws a single selector line.
func Render(state domain.LanguageSelectorState, opts RenderOptions) (string, error) {
	return run(model{
		slots:  []Slot{{State: state}},
		single: true,
		opts:   opts,
		styles: newStyles(),
	})
}

// RenderBoard draws one selector line per participant slot.
func RenderBoard(slots []Slot, opts RenderOptions) (string, error) {
	return run(model{
		slots:  slots,
		opts:   opts,
		styles: newStyles(),
	})
}

// View renders the board without running a program, for use inside another bubbletea model.
func View(slots []Slot, opts RenderOptions) string {
	return renderBoard(slots, opts, newStyles())
}

func run(m model) (string, error) {
	p := tea.NewProgram(
		m,
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
