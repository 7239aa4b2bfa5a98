package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/lora-bbs/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	progressSpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	progressElapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type modelsListedMsg struct {
	models []string
	err    error
}

// modelsProgress shows a spinner and the elapsed wait while the LLM server
// answers a model listing.
type modelsProgress struct {
	spinner  spinner.Model
	endpoint string
	started  time.Time
	list     tea.Cmd

	models []string
	err    error
	done   bool
}

func newModelsProgress(ctx context.Context, model ports.LanguageModel, endpoint string) modelsProgress {
	return modelsProgress{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(progressSpinnerStyle),
		),
		endpoint: endpoint,
		started:  time.Now(),
		list: func() tea.Msg {
			models, err := model.ListModels(ctx)
			return modelsListedMsg{models: models, err: err}
		},
	}
}

func (m modelsProgress) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.list)
}

func (m modelsProgress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case modelsListedMsg:
		m.models, m.err, m.done = msg.models, msg.err, true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m modelsProgress) View() string {
	if m.done {
		return ""
	}

	elapsed := time.Since(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s Listing models from %s %s", m.spinner.View(), m.endpoint, progressElapsedStyle.Render(elapsed.String()))
}

// listModelsWithProgress renders the progress view on output and returns the
// listing once the server answers or ctx ends.
func listModelsWithProgress(ctx context.Context, output io.Writer, model ports.LanguageModel, endpoint string) ([]string, error) {
	p := tea.NewProgram(
		newModelsProgress(ctx, model, endpoint),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	progress, ok := final.(modelsProgress)
	if !ok {
		return nil, fmt.Errorf("unexpected progress model type %T", final)
	}
	if progress.err != nil {
		return nil, fmt.Errorf("list models: %w", progress.err)
	}
	return progress.models, nil
}
