package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/nirogya-cli/internal/adapters/engine/wsfeed"
	"github.com/bnema/nirogya-cli/internal/adapters/render/selector"
	"github.com/bnema/nirogya-cli/internal/application"
	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type selectorWatchOptions struct {
	feedURL  string
	slot     string
	language domain.LanguageCode
	render   selector.RenderOptions
}

type boardChangedMsg struct{}

type feedDoneMsg struct {
	err error
}

type selectorWatchModel struct {
	spinner spinner.Model
	board   *application.SelectorBoard
	opts    selector.RenderOptions
	events  int
	err     error
	done    bool
}

func newSelectorWatchModel(board *application.SelectorBoard, opts selector.RenderOptions) selectorWatchModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return selectorWatchModel{
		spinner: s,
		board:   board,
		opts:    opts,
	}
}

func (m selectorWatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m selectorWatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case boardChangedMsg:
		m.events++
		return m, nil
	case feedDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m selectorWatchModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s\n%s following engine status (%d events)", m.boardView(), m.spinner.View(), m.events)
}

func (m selectorWatchModel) boardView() string {
	return selector.View(boardSlots(m.board), m.opts)
}

func boardSlots(board *application.SelectorBoard) []selector.Slot {
	names := board.Slots()
	slots := make([]selector.Slot, 0, len(names))
	for _, name := range names {
		slots = append(slots, selector.Slot{Name: name, State: board.State(name)})
	}
	return slots
}

func runSelectorWatch(ctx context.Context, output io.Writer, app *app, opts selectorWatchOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	board := application.NewSelectorBoard(app.logger)
	board.OnLanguageChanged(func(slot string, code domain.LanguageCode) {
		app.logger.WithField("slot", slot).WithField("language", code).Info("selector language changed")
	})
	board.Select(opts.slot, opts.language)

	p := tea.NewProgram(
		newSelectorWatchModel(board, opts.render),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	feed := wsfeed.New(opts.feedURL, opts.slot, app.logger)
	go func() {
		err := feed.Run(ctx, func(event domain.EngineEvent) error {
			if err := board.ApplyEngineEvent(event); err != nil {
				app.logger.WithError(err).Warn("ignoring engine event")
				return nil
			}
			p.Send(boardChangedMsg{})
			return nil
		})
		p.Send(feedDoneMsg{err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(selectorWatchModel)
	if !ok {
		return fmt.Errorf("unexpected final watch model type %T", finalModel)
	}
	if result.err != nil {
		return result.err
	}

	rendered, err := app.boardRenderer(boardSlots(result.board), result.opts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(output, rendered)
	return err
}
