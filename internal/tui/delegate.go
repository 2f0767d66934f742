package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/idilsaglam/meetfocus/internal/model"
	"github.com/idilsaglam/meetfocus/internal/ui"
)

// meetingItem adapts a Meeting to bubbles/list.Item
type meetingItem struct {
	meeting model.Meeting
	now     time.Time
}

func (i meetingItem) Title() string { return i.meeting.Title }

func (i meetingItem) Description() string {
	m := i.meeting
	return fmt.Sprintf("%s • %d min • %s • %s",
		m.Start.Format("Mon Jan 2 15:04"),
		m.Duration,
		m.Mode.Describe().Name,
		humanize.RelTime(m.Start, i.now, "ago", "from now"),
	)
}

func (i meetingItem) FilterValue() string { return i.meeting.Title }

// state is the short tag shown before the title.
func (i meetingItem) state() string {
	switch {
	case i.meeting.Active && i.meeting.Contains(i.now):
		return "active"
	case i.meeting.Phase(i.now) == model.PhasePast:
		return "past"
	case i.meeting.Active:
		return "armed"
	}
	return i.meeting.Phase(i.now).String()
}

const maxTitleWidth = 80

// truncateTitle cuts by display cells, never inside a rune.
func truncateTitle(s string) string { return ansi.Truncate(s, maxTitleWidth, "...") }

// Custom delegate: title line plus a faint detail line
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(meetingItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxIdle)
	title := truncateTitle(it.meeting.Title)
	tag := it.state()
	switch tag {
	case "active":
		box = t.Success.Render(t.BoxActive)
		tag = t.Success.Render(tag)
	case "armed":
		box = t.Pending.Render(t.BoxActive)
		tag = t.Pending.Render(tag)
	case "past":
		title = t.Faded.Render(title)
		tag = t.Muted.Render(tag)
	default:
		tag = t.Accent.Render(tag)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s %s\n", prefix, box, it.meeting.Mode.Describe().Icon, title, tag)
	fmt.Fprintf(w, "    %s", t.Muted.Render(it.Description()))
}
