package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/meetfocus/internal/form"
	"github.com/idilsaglam/meetfocus/internal/model"
	"github.com/idilsaglam/meetfocus/internal/session"
	"github.com/idilsaglam/meetfocus/internal/ui"
)

type pane int

const (
	paneList pane = iota
	paneForm
	paneReply
	paneGuide
)

// form field order; the mode selector comes after the text inputs
const (
	fieldTitle = iota
	fieldStart
	fieldDuration
	fieldMode
)

type tickMsg time.Time

// Options tune the program.
type Options struct {
	Tick time.Duration // clock refresh, default one second
}

// Model is the Bubble Tea model for one session.
type Model struct {
	sess *session.Session
	keys keyMap
	tick time.Duration
	now  time.Time

	pane   pane
	list   list.Model
	width  int
	height int
	status string

	// Schedule form
	form    form.Form
	inputs  []textinput.Model
	field   int
	formErr string

	reply textarea.Model

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoItem  model.Meeting
}

func New(sess *session.Session, opt Options) Model {
	if opt.Tick <= 0 {
		opt.Tick = time.Second
	}
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Scheduled Meetings"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("meeting", "meetings")
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp
	// Quitting is decided by the model, not the list.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	inputs := make([]textinput.Model, fieldMode)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 200
		inputs[i] = ti
	}
	inputs[fieldTitle].Placeholder = "Meeting title"
	inputs[fieldDuration].Placeholder = fmt.Sprintf("Duration (minutes, %d-%d)", form.MinDuration, form.MaxDuration)
	inputs[fieldDuration].CharLimit = 3

	ta := textarea.New()
	ta.Placeholder = "Auto-reply message for WhatsApp/SMS"
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	m := Model{
		sess:   sess,
		keys:   keys,
		tick:   opt.Tick,
		now:    sess.Now(),
		list:   l,
		form:   form.New(),
		inputs: inputs,
		reply:  ta,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return m.nextTick() }

func (m Model) nextTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// refresh rebuilds the list from the session, keeping the cursor in range.
func (m *Model) refresh() {
	meetings := m.sess.Meetings()
	items := make([]list.Item, 0, len(meetings))
	for _, mt := range meetings {
		items = append(items, meetingItem{meeting: mt, now: m.now})
	}
	idx := m.list.Index()
	if cmd := m.list.SetItems(items); cmd != nil {
		// SetItems drops the filtered view while a filter is on. Refilter
		// in place, as list.SetFilterText does, so the view never empties.
		m.list, _ = m.list.Update(cmd())
	}
	if n := len(m.list.VisibleItems()); idx >= n {
		idx = n - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

// selectID moves the cursor to the meeting with id if it is visible.
func (m *Model) selectID(id string) {
	for i, it := range m.list.VisibleItems() {
		if mi, ok := it.(meetingItem); ok && mi.meeting.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) selected() (model.Meeting, bool) {
	it, ok := m.list.SelectedItem().(meetingItem)
	if !ok {
		return model.Meeting{}, false
	}
	return it.meeting, true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = m.sess.Now()
		m.refresh()
		return m, m.nextTick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	}

	switch m.pane {
	case paneForm:
		return m.updateForm(msg)
	case paneReply:
		return m.updateReply(msg)
	case paneGuide:
		if k, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(k, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(k, m.keys.Cancel), key.Matches(k, m.keys.Guide):
				m.pane = paneList
			}
		}
		return m, nil
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, isKey := msg.(tea.KeyMsg)
	if !isKey || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(k, m.keys.Toggle):
		mt, ok := m.selected()
		if !ok {
			return m, nil
		}
		got, found, err := m.sess.Toggle(mt.ID)
		switch {
		case errors.Is(err, session.ErrEnded):
			m.status = fmt.Sprintf("%q has ended", mt.Title)
		case found && got.Active:
			m.status = "started " + got.Title
		case found:
			m.status = "ended " + got.Title
		}
		m.refresh()
		return m, nil

	case key.Matches(k, m.keys.Delete):
		mt, ok := m.selected()
		if !ok {
			return m, nil
		}
		if removed, idx, ok := m.sess.Remove(mt.ID); ok {
			m.undoItem = removed
			m.undoIndex = idx
			m.canUndo = true
			m.status = "deleted " + removed.Title + " (u to undo)"
		}
		m.refresh()
		return m, nil

	case key.Matches(k, m.keys.Undo):
		if m.canUndo {
			if err := m.sess.Restore(m.undoIndex, m.undoItem); err != nil {
				m.status = err.Error()
			} else {
				m.status = "restored " + m.undoItem.Title
				m.refresh()
				m.selectID(m.undoItem.ID)
			}
			m.canUndo = false
		}
		return m, nil

	case key.Matches(k, m.keys.Mode):
		if md, err := model.ParseMode(k.String()); err == nil {
			_ = m.sess.SelectMode(md)
			m.status = md.Describe().Name + " selected"
		}
		return m, nil

	case key.Matches(k, m.keys.Add):
		cmd := m.openForm()
		return m, cmd

	case key.Matches(k, m.keys.Reply):
		m.pane = paneReply
		m.reply.SetValue(m.sess.AutoReply())
		m.reply.CursorEnd()
		cmd := m.reply.Focus()
		return m, cmd

	case key.Matches(k, m.keys.Guide):
		m.pane = paneGuide
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) openForm() tea.Cmd {
	m.pane = paneForm
	m.formErr = ""
	m.inputs[fieldStart].Placeholder = m.now.Format("2006-01-02T15:04")
	return m.focusField(fieldTitle)
}

func (m *Model) focusField(f int) tea.Cmd {
	m.field = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) closeForm() {
	m.form.Reset()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.formErr = ""
	m.pane = paneList
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			m.closeForm()
			return m, nil
		case key.Matches(k, m.keys.Submit):
			return m.submit()
		case key.Matches(k, m.keys.Next):
			cmd := m.focusField((m.field + 1) % (fieldMode + 1))
			return m, cmd
		case key.Matches(k, m.keys.Prev):
			cmd := m.focusField((m.field + fieldMode) % (fieldMode + 1))
			return m, cmd
		case m.field == fieldMode && key.Matches(k, m.keys.ModeLeft):
			m.form.CycleMode(-1)
			return m, nil
		case m.field == fieldMode && key.Matches(k, m.keys.ModeRight):
			m.form.CycleMode(1)
			return m, nil
		}
	}
	if m.field == fieldMode {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.form.Title = m.inputs[fieldTitle].Value()
	m.form.Start = m.inputs[fieldStart].Value()
	m.form.Duration = m.inputs[fieldDuration].Value()

	mt, err := m.sess.Submit(m.form)
	if errors.Is(err, form.ErrIncomplete) {
		// Missing fields are a silent no-op; the form stays open.
		m.formErr = ""
		return m, nil
	}
	if err != nil {
		m.formErr = err.Error()
		return m, nil
	}
	m.closeForm()
	m.status = "scheduled " + mt.Title
	m.refresh()
	m.selectID(mt.ID)
	return m, nil
}

func (m Model) updateReply(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Cancel) {
		m.sess.SetAutoReply(strings.TrimSpace(m.reply.Value()))
		m.reply.Blur()
		m.pane = paneList
		m.status = "auto-reply saved"
		return m, nil
	}
	var cmd tea.Cmd
	m.reply, cmd = m.reply.Update(msg)
	return m, cmd
}

func (m *Model) layout() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	h := m.height - m.chromeHeight()
	if h < 4 {
		h = 4
	}
	m.list.SetSize(w, h)
	for i := range m.inputs {
		m.inputs[i].Width = w - 14
	}
	m.reply.SetWidth(w)
}

// chromeHeight is the rows used by everything above and below the list.
func (m Model) chromeHeight() int {
	return lipgloss.Height(m.headerView()) + lipgloss.Height(m.cardsView()) + 4
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	if banner := m.bannerView(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	b.WriteString(m.cardsView())
	b.WriteString("\n")

	switch m.pane {
	case paneForm:
		b.WriteString(m.formView())
	case paneReply:
		b.WriteString(m.replyView())
	case paneGuide:
		b.WriteString(m.guideView())
	default:
		b.WriteString(m.list.View())
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(ui.Current().Muted.Render(m.status))
	}
	return b.String()
}

func (m Model) headerView() string {
	t := ui.Current()
	title := t.Title.Render("🛡 Meeting Focus Assistant")
	clock := lipgloss.JoinVertical(lipgloss.Right,
		t.Accent.Render(m.now.Format("15:04:05")),
		t.Muted.Render(m.now.Format("Mon, 02 Jan 2006")),
	)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(clock) - 2
	if gap < 2 {
		gap = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), clock)
}

func (m Model) bannerView() string {
	active, ok := m.sess.ActiveAt(m.now)
	if !ok {
		return ""
	}
	t := ui.Current()
	d := active.Mode.Describe()
	line := fmt.Sprintf("%s Currently in: %s   %s Active", d.Icon, active.Title, d.Name)
	bar := ui.ProgressBar(active.Progress(m.now), 30)
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(d.Color)).
		PaddingLeft(1).
		Render(t.Error.Render(line) + "\n" + t.Muted.Render(bar))
}

func (m Model) cardsView() string {
	w := (m.width - 8) / len(model.Modes)
	if w < 18 {
		w = 18
	}
	lit := func(md model.Mode) bool {
		if md == m.sess.SelectedMode() {
			return true
		}
		a, ok := m.sess.ActiveAt(m.now)
		return ok && a.Mode == md
	}
	return ui.ModeCards(lit, w)
}

func (m Model) formView() string {
	t := ui.Current()
	labels := []string{"Title", "Start", "Duration"}
	lines := []string{t.Title.Render("📅 Schedule Meeting"), ""}
	for i, in := range m.inputs {
		label := fmt.Sprintf("%-9s", labels[i])
		if m.field == i {
			label = t.Accent.Render(label)
		}
		lines = append(lines, label+" "+in.View())
	}
	modeName := model.Mode(m.form.Mode).Describe().Name
	label := fmt.Sprintf("%-9s", "Mode")
	if m.field == fieldMode {
		label = t.Accent.Render(label)
		modeName = "◀ " + modeName + " ▶"
	}
	lines = append(lines, label+"   "+modeName)
	if m.formErr != "" {
		lines = append(lines, "", t.Error.Render(m.formErr))
	}
	lines = append(lines, "", t.Muted.Render("tab next field • ←/→ mode • enter schedule • esc cancel"))
	return ui.Panel(lines)
}

func (m Model) replyView() string {
	t := ui.Current()
	lines := []string{
		t.Title.Render("💬 Auto-Reply Settings"),
		t.Muted.Render("Auto-reply message for WhatsApp/SMS:"),
		m.reply.View(),
		"",
		t.Muted.Render("esc save and close"),
	}
	return ui.Panel(lines)
}

func (m Model) guideView() string {
	t := ui.Current()
	lines := []string{t.Title.Render("⚙ Device Setup Instructions"), ""}
	lines = append(lines, t.Muted.Render("Auto-reply: ")+m.sess.AutoReply(), "")
	lines = append(lines, ui.GuideLines()...)
	lines = append(lines, "", t.Muted.Render("esc back"))
	return ui.Panel(lines)
}
