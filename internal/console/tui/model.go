// Package tui is the interactive full screen front end of the console.
//
// Every data service call runs as a tea.Cmd through console.Dispatch. The
// console reports into a Recorder which the model drains when the command
// finishes, so nothing draws from a worker goroutine.
package tui

import (
	"context"
	"fmt"
	"strings"

	"groupadmin/server/internal/client"
	"groupadmin/server/internal/console"
	"groupadmin/server/internal/i18n"
	"groupadmin/server/internal/models"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const tableHeight = 15

var columnWidths = []int{2, 16, 24, 8, 8, 19, 20}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1D4ED8")).Background(lipgloss.Color("#DBEAFE")).Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#F59E0B")).Padding(1, 2)
	buttonStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7D56F4"))
)

// actionDoneMsg is sent when a dispatched action has finished
type actionDoneMsg struct {
	ok      bool
	notices []console.Notice
}

// eventMsg carries a change notification from the server
type eventMsg struct {
	event client.Event
}

// confirmState is an open moderation confirmation
type confirmState struct {
	prompt console.Prompt
	action console.ToggleFlag
}

// Model represents the main TUI model.
type Model struct {
	ctx     context.Context
	console *console.Console
	notices *console.Recorder
	events  <-chan client.Event
	keys    KeyMap

	table   table.Model
	spinner spinner.Model
	rows    []models.Group

	busy     bool
	loading  string
	notice   *console.Notice
	confirm  *confirmState
	quitting bool
}

// NewModel creates a TUI driving service. Confirmations are asked in the TUI
// itself, so the console never prompts on its own.
func NewModel(ctx context.Context, service console.Service) *Model {
	rec := &console.Recorder{}
	c := console.New(service, rec, console.Answer(true))

	cols := console.Columns()
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "", Width: columnWidths[0]})
	for i, col := range cols {
		tcols = append(tcols, table.Column{Title: col.Title, Width: columnWidths[i+1]})
	}

	return &Model{
		ctx:     ctx,
		console: c,
		notices: rec,
		keys:    DefaultKeyMap(),
		table: table.New(
			table.WithColumns(tcols),
			table.WithFocused(true),
			table.WithHeight(tableHeight),
		),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// WithEvents makes the model reload whenever events reports a group change
func (m *Model) WithEvents(events <-chan client.Event) *Model {
	m.events = events
	return m
}

// Console exposes the page state driven by the model
func (m *Model) Console() *console.Console {
	return m.console
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.run(console.Reload{}, ""), m.waitForEvent())
}

func (m *Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg{event: ev}
	}
}

// run dispatches a on a command goroutine, showing loading until it is done
func (m *Model) run(a console.Action, loading string) tea.Cmd {
	m.busy = true
	m.loading = loading
	m.notice = nil

	ctx, c, rec := m.ctx, m.console, m.notices
	do := func() tea.Msg {
		ok := c.Dispatch(ctx, a)
		return actionDoneMsg{ok: ok, notices: rec.Drain()}
	}

	if loading == "" {
		return do
	}
	return tea.Batch(m.spinner.Tick, do)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.busy = false
		m.loading = ""
		m.notice = lastNotice(msg.notices)
		m.syncRows()
		return m, nil

	case eventMsg:
		if msg.event.Changed() && !m.busy {
			return m, tea.Batch(m.run(console.Reload{}, ""), m.waitForEvent())
		}
		return m, m.waitForEvent()

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.confirm != nil {
			return m, m.updateConfirm(msg)
		}
		if m.busy {
			return m, nil
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		// a reload is still draining the recorder; keep the modal open
		if m.busy {
			return nil
		}
		action := m.confirm.action
		m.confirm = nil
		return m.run(action, i18n.T(i18n.FlagProcessing))
	case key.Matches(msg, m.keys.Cancel):
		m.confirm = nil
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keys.Select):
		if g, ok := m.current(); ok {
			m.console.Dispatch(m.ctx, console.Select{ID: g.ID, Selected: !m.console.Table.IsSelected(g.ID)})
			m.syncRows()
		}
		return nil, true

	case key.Matches(msg, m.keys.Ban), key.Matches(msg, m.keys.Mute):
		g, ok := m.current()
		if !ok {
			return nil, true
		}
		actions := console.RowActions(g)
		ra := actions[0]
		if key.Matches(msg, m.keys.Mute) {
			ra = actions[1]
		}
		m.confirm = &confirmState{
			prompt: console.FlagPrompt(ra.Flag, ra.Value),
			action: console.ToggleFlag{Flag: ra.Flag, Value: ra.Value, Record: g},
		}
		return nil, true

	case key.Matches(msg, m.keys.Remove):
		if m.console.Table.Summary().Count == 0 {
			return nil, true
		}
		return m.run(console.RemoveSelected{}, i18n.T(i18n.RemoveLoading)), true

	case key.Matches(msg, m.keys.Approve):
		m.console.Dispatch(m.ctx, console.BatchApprove{})
		m.notice = lastNotice(m.notices.Drain())
		return nil, true

	case key.Matches(msg, m.keys.Sort):
		return m.run(console.Sort{Field: "updatedAt", Order: nextOrder(m.console.Table.Sorter())}, ""), true

	case key.Matches(msg, m.keys.Reload):
		return m.run(console.Reload{}, ""), true

	case key.Matches(msg, m.keys.NextPage), key.Matches(msg, m.keys.PrevPage):
		p := m.console.Table.Pagination()
		next := p.Current + 1
		if key.Matches(msg, m.keys.PrevPage) {
			next = p.Current - 1
		}
		if next < 1 || (next-1)*p.PageSize >= p.Total {
			return nil, true
		}
		return m.run(console.Paginate{Current: next, PageSize: p.PageSize}, ""), true
	}

	return nil, false
}

// nextOrder cycles the time column through descend, ascend and unsorted
func nextOrder(sorter string) console.SortOrder {
	switch {
	case sorter == "":
		return console.Descend
	case strings.HasSuffix(sorter, "_"+string(console.Descend)):
		return console.Ascend
	}
	return ""
}

func (m *Model) current() (models.Group, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return models.Group{}, false
	}
	return m.rows[i], true
}

// syncRows copies the console rows into the bubbles table
func (m *Model) syncRows() {
	m.rows = m.console.Table.Rows()
	cols := console.Columns()

	rows := make([]table.Row, 0, len(m.rows))
	for _, g := range m.rows {
		mark := " "
		if m.console.Table.IsSelected(g.ID) {
			mark = "✓"
		}
		row := table.Row{mark}
		for _, c := range cols {
			text, _ := c.Render(g)
			row = append(row, text)
		}
		rows = append(rows, row)
	}

	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func lastNotice(notices []console.Notice) *console.Notice {
	for i := len(notices) - 1; i >= 0; i-- {
		if k := notices[i].Kind; k == console.NoticeSuccess || k == console.NoticeError {
			n := notices[i]
			return &n
		}
	}
	return nil
}

// View renders the current view.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{titleStyle.Render(i18n.T(i18n.HeaderTitle))}

	if summary := m.console.Table.Summary(); summary.Count > 0 {
		parts = append(parts, alertStyle.Render(summary.Text()))
	}

	parts = append(parts, m.table.View())

	p := m.console.Table.Pagination()
	footer := fmt.Sprintf("%d/%d  ·  %d", p.Current, max((p.Total+max(p.PageSize, 1)-1)/max(p.PageSize, 1), 1), p.Total)
	if s := m.console.Table.Sorter(); s != "" {
		footer += "  ·  " + s
	}
	parts = append(parts, helpStyle.Render(footer))

	switch {
	case m.busy && m.loading != "":
		parts = append(parts, m.spinner.View()+" "+m.loading)
	case m.notice != nil && m.notice.Kind == console.NoticeSuccess:
		parts = append(parts, okStyle.Render(m.notice.Text))
	case m.notice != nil:
		parts = append(parts, errStyle.Render(m.notice.Text))
	}

	if m.confirm != nil {
		p := m.confirm.prompt
		modal := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(p.Title),
			p.Content,
			"",
			buttonStyle.Render("y "+p.OKText)+"  "+helpStyle.Render("n "+p.CancelText),
		)
		parts = append(parts, modalStyle.Render(modal))
	}

	parts = append(parts, helpStyle.Render(helpLine(m.keys.help())))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func helpLine(bindings []key.Binding) string {
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, h.Key+": "+h.Desc)
	}
	return strings.Join(items, " • ")
}
