package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glied2m/xp-tracker/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service, date time.Time, out io.Writer) error {
	m := newBoardModel(ctx, svc, date)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
