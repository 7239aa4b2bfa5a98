package inspect

import (
	"fmt"
	"io"

	"github.com/bnema/lora-bbs/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

// snapshotView holds an already laid out snapshot. It quits on start, so the
// program only settles terminal state before returning.
type snapshotView struct {
	body string
}

func (v snapshotView) Init() tea.Cmd                       { return tea.Quit }
func (v snapshotView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v snapshotView) View() string                        { return v.body }

// Render lays out the stored documents for a terminal.
func Render(snapshot application.Snapshot, opts RenderOptions) (string, error) {
	view := snapshotView{body: renderSnapshot(snapshot, opts.withDefaults(), newStyles())}

	final, err := tea.NewProgram(view,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	).Run()
	if err != nil {
		return "", fmt.Errorf("run snapshot view: %w", err)
	}

	done, ok := final.(snapshotView)
	if !ok {
		return "", fmt.Errorf("unexpected snapshot view type %T", final)
	}
	return done.body, nil
}
