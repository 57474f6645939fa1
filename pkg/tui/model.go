// Package tui is the interactive terminal dashboard. It shows one screen at a
// time and refreshes on demand; the data and derived views come from
// pkg/screens.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
	"tableflip.dev/advcontrol/pkg/store"
	"tableflip.dev/advcontrol/pkg/tui/theme"
	"tableflip.dev/advcontrol/pkg/views"
)

// Watcher reports storage changes made by other processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan store.Event, error)
}

type tab int

const (
	tabDashboard tab = iota
	tabAgenda
	tabCases
	tabFinance
	tabCount
)

var tabKinds = [tabCount]resource.Kind{
	tabDashboard: resource.KindDashboard,
	tabAgenda:    resource.KindDeadlines,
	tabCases:     resource.KindCases,
	tabFinance:   resource.KindFinancial,
}

var tabNames = [tabCount]string{
	tabDashboard: "Dashboard",
	tabAgenda:    "Agenda",
	tabCases:     "Cases",
	tabFinance:   "Finance",
}

const helpText = "tab switch · r refresh · R refresh all · ←/→ day · f filter · x dismiss · q quit"

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx     context.Context
	set     *screens.Set
	watcher Watcher
	theme   theme.Theme
	spinner spinner.Model

	active tab
	status string
	width  int
	height int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds a model over set. watcher may be nil.
func New(ctx context.Context, set *screens.Set, watcher Watcher) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &Model{
		ctx:     ctx,
		set:     set,
		watcher: watcher,
		theme:   theme.Default(),
		spinner: sp,
		width:   80,
	}
}

type refreshedMsg struct {
	kind resource.Kind
	ran  bool
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.refreshAll()}
	if cmd := startWatchCmd(m.ctx, m.watcher); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) screen(t tab) screens.Refresher {
	switch t {
	case tabAgenda:
		return m.set.Agenda
	case tabCases:
		return m.set.Cases
	case tabFinance:
		return m.set.Finance
	default:
		return m.set.Dashboard
	}
}

func (m *Model) loading(t tab) bool {
	return m.screen(t).Loading()
}

func (m *Model) refresh(t tab) tea.Cmd {
	scr := m.screen(t)
	ctx := m.ctx
	return func() tea.Msg {
		return refreshedMsg{kind: scr.Kind(), ran: scr.Refresh(ctx)}
	}
}

func (m *Model) refreshAll() tea.Cmd {
	cmds := make([]tea.Cmd, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		cmds = append(cmds, m.refresh(t))
	}
	return tea.Batch(cmds...)
}

func startWatchCmd(parent context.Context, w Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := w.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) handleWatchEvent(ev store.Event) {
	switch ev.Type {
	case store.EventSessionChanged:
		m.status = "session changed in another terminal"
	case store.EventSnapshotChanged:
		for t := tab(0); t < tabCount; t++ {
			if tabKinds[t] == ev.Kind && !m.loading(t) {
				m.status = fmt.Sprintf("%s cached at %s", screens.Title(ev.Kind), time.Now().Format("15:04:05"))
			}
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case refreshedMsg:
		if msg.ran {
			m.status = fmt.Sprintf("%s refreshed at %s", screens.Title(msg.kind), time.Now().Format("15:04:05"))
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "watch: " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyMsg:
		if cmd, quit := m.handleKey(msg); quit {
			m.stopWatch()
			return m, tea.Quit
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return nil, true
	case "tab":
		m.active = (m.active + 1) % tabCount
	case "shift+tab":
		m.active = (m.active + tabCount - 1) % tabCount
	case "1", "2", "3", "4":
		m.active = tab(msg.String()[0] - '1')
	case "r":
		return m.refresh(m.active), false
	case "R":
		return m.refreshAll(), false
	case "x":
		m.screen(m.active).Dismiss()
	case "left", "h":
		if m.active == tabAgenda {
			m.set.Agenda.Shift(-1)
		}
	case "right", "l":
		if m.active == tabAgenda {
			m.set.Agenda.Shift(1)
		}
	case "up", "k":
		if m.active == tabAgenda {
			m.set.Agenda.Shift(-7)
		}
	case "down", "j":
		if m.active == tabAgenda {
			m.set.Agenda.Shift(7)
		}
	case "t":
		if m.active == tabAgenda {
			m.set.Agenda.SetSelected("")
		}
	case "f":
		if m.active == tabFinance {
			m.set.Finance.SetFilter(nextFilter(m.set.Finance.Filter()))
		}
	}
	return nil, false
}

func nextFilter(f views.Filter) views.Filter {
	switch f {
	case views.FilterAll:
		return views.FilterReceivable
	case views.FilterReceivable:
		return views.FilterPayable
	default:
		return views.FilterAll
	}
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	if notice := m.screen(m.active).Notice(); notice != "" {
		b.WriteString(m.theme.Footer.Notice.Render("! " + notice + " (x to dismiss)"))
		b.WriteString("\n\n")
	}

	switch m.active {
	case tabDashboard:
		b.WriteString(m.dashboardView())
	case tabAgenda:
		b.WriteString(m.agendaView())
	case tabCases:
		b.WriteString(m.casesView())
	case tabFinance:
		b.WriteString(m.financeView())
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) tabs() string {
	parts := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		name := tabNames[t]
		if m.loading(t) {
			name += " " + m.spinner.View()
		}
		if t == m.active {
			parts = append(parts, m.theme.Tabs.Active.Render(name))
		} else {
			parts = append(parts, m.theme.Tabs.Inactive.Render(name))
		}
	}
	return strings.Join(parts, m.theme.Tabs.Gap.Render("│"))
}

func (m *Model) footer() string {
	line := m.theme.Footer.Help.Render(helpText)
	if m.status != "" {
		line = m.theme.Footer.Status.Render(m.status) + "\n" + line
	}
	return line
}
