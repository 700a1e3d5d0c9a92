package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glied2m/xp-tracker/internal/engine"
	"github.com/glied2m/xp-tracker/internal/ui"
)

type boardModel struct {
	ctx  context.Context
	svc  *engine.Service
	date time.Time
	sess *engine.Session

	width  int
	height int

	selected int
	lastLog  string
}

type savedMsg struct {
	res *engine.SaveResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, date time.Time) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		date:    date,
		sess:    engine.NewSession(),
		lastLog: "Space toggles, s saves, q quits.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) saveCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.SaveDay(m.ctx, m.date, m.sess)
		return savedMsg{res: res, err: err}
	}
}

// taskLine is one selectable row: either a section heading or a task.
type taskLine struct {
	heading string
	task    engine.TaskDef
}

func (m boardModel) taskLines() []taskLine {
	missions := m.svc.Missions()
	var out []taskLine
	section := ""
	for _, t := range m.svc.Catalog().TasksFor(m.date) {
		if !missions.Eligible(t) {
			continue
		}
		if t.Section != section {
			section = t.Section
			out = append(out, taskLine{heading: section})
		}
		out = append(out, taskLine{task: t})
	}
	return out
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.lastLog = "Save failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Saved %s: %d XP.", msg.res.Date, msg.res.XP)
		if len(msg.res.NewMissions) > 0 {
			m.lastLog += " Retired: " + strings.Join(msg.res.NewMissions, ", ")
		}
		return m, nil
	case tea.KeyMsg:
		lines := m.taskLines()
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			for i := m.selected - 1; i >= 0; i-- {
				if lines[i].heading == "" {
					m.selected = i
					break
				}
			}
			return m, nil
		case "down", "j":
			for i := m.selected + 1; i < len(lines); i++ {
				if lines[i].heading == "" {
					m.selected = i
					break
				}
			}
			return m, nil
		case " ", "enter":
			if m.selected < 0 || m.selected >= len(lines) || lines[m.selected].heading != "" {
				return m, nil
			}
			name := lines[m.selected].task.Name
			m.sess.Toggle(m.date, name, !m.sess.Checked(m.date, name))
			return m, nil
		case "s":
			m.lastLog = "Saving…"
			return m, m.saveCmd()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	lines := m.taskLines()

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconBrain, "XP-Tracker — "+m.date.Format("02.01.2006")))
	b.WriteString("\n\n")

	if len(lines) == 0 {
		b.WriteString(ui.Muted.Render("No tasks in the catalog for this day."))
		b.WriteString("\n")
	}

	for i, line := range lines {
		if line.heading != "" {
			b.WriteString(ui.H2.Render(line.heading))
			b.WriteString("\n")
			continue
		}
		box := "[ ]"
		if m.sess.Checked(m.date, line.task.Name) {
			box = "[x]"
		}
		row := fmt.Sprintf("%s %s (+%d XP)", box, line.task.Name, line.task.XP)
		if i == m.selected {
			row = ui.SelectedRow.Render(row)
		}
		b.WriteString("  " + row + "\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.LabelValue("XP", m.sess.XP(m.date, m.svc.Catalog(), m.svc.Missions())))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	return b.String()
}
