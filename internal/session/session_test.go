package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/meetfocus/internal/form"
	"github.com/idilsaglam/meetfocus/internal/model"
	"github.com/idilsaglam/meetfocus/internal/resolver"
	"github.com/idilsaglam/meetfocus/internal/store"
)

// manualClock is advanced by hand.
type manualClock struct{ t time.Time }

func (c *manualClock) Now() time.Time { return c.t }

func seqStore() *store.Store {
	n := 0
	return store.New(store.WithIDs(func() string {
		n++
		return fmt.Sprintf("m-%d", n)
	}))
}

func TestStandupScenario(t *testing.T) {
	clock := &manualClock{t: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	s := New(seqStore(), WithClock(clock), WithLocation(time.UTC))

	m, err := s.Submit(form.Form{Title: "Standup", Start: "2024-01-01T09:00", Duration: "15", Mode: "meeting"})
	require.NoError(t, err)

	list := s.Meetings()
	require.Len(t, list, 1)
	assert.False(t, list[0].Active)
	assert.Equal(t, model.ModeMeeting, list[0].Mode)

	clock.t = time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)
	_, found, err := s.Toggle(m.ID)
	require.NoError(t, err)
	require.True(t, found)

	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, m.ID, active.ID)
	assert.Equal(t, model.ModeMeeting, s.EffectiveMode())

	clock.t = time.Date(2024, 1, 1, 9, 20, 0, 0, time.UTC)
	_, ok = s.Active()
	assert.False(t, ok)
	assert.Equal(t, model.ModeNormal, s.EffectiveMode())

	// The flag stays set after the window passes.
	got := s.Meetings()[0]
	assert.True(t, got.Active)
}

func TestIncompleteFormAddsNothing(t *testing.T) {
	s := New(nil)
	_, err := s.Submit(form.Form{Title: "Standup", Mode: "meeting"})
	assert.ErrorIs(t, err, form.ErrIncomplete)
	assert.Empty(t, s.Meetings())
}

func TestToggleRefusesPastMeetings(t *testing.T) {
	clock := &manualClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := New(seqStore(), WithClock(clock), WithLocation(time.UTC))
	m, err := s.Submit(form.Form{Title: "Old", Start: "2024-01-01T09:00", Duration: "15", Mode: "focus"})
	require.NoError(t, err)

	_, found, err := s.Toggle(m.ID)
	assert.True(t, found)
	assert.ErrorIs(t, err, ErrEnded)
	got := s.Meetings()[0]
	assert.False(t, got.Active)

	_, found, err = s.Toggle("missing")
	assert.False(t, found)
	assert.NoError(t, err)
}

func TestRemoveAndRestore(t *testing.T) {
	s := New(seqStore(), WithClock(Fixed(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))), WithLocation(time.UTC))
	a, _ := s.Submit(form.Form{Title: "A", Start: "2024-01-01T09:00", Duration: "15", Mode: "focus"})

	removed, idx, ok := s.Remove(a.ID)
	require.True(t, ok)
	assert.Empty(t, s.Meetings())

	_, found, err := s.Toggle(a.ID)
	assert.False(t, found)
	assert.NoError(t, err)

	require.NoError(t, s.Restore(idx, removed))
	assert.Equal(t, []model.Meeting{a}, s.Meetings())
}

func TestHighlightedCoversSelectedAndActive(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 10, 0, 0, time.UTC)
	s := New(seqStore(), WithClock(Fixed(now)), WithMode(model.ModeFocus))
	require.NoError(t, s.Seed([]model.Meeting{{
		Title: "Panel", Start: now.Add(-5 * time.Minute), Duration: 60, Mode: model.ModeInterview, Active: true,
	}}))

	assert.True(t, s.Highlighted(model.ModeFocus))
	assert.True(t, s.Highlighted(model.ModeInterview))
	assert.False(t, s.Highlighted(model.ModeNormal))
	assert.Equal(t, model.ModeInterview, s.EffectiveMode())
	assert.Equal(t, model.ModeFocus, s.SelectedMode())
}

func TestSelectMode(t *testing.T) {
	s := New(nil)
	assert.Equal(t, model.ModeNormal, s.SelectedMode())
	require.NoError(t, s.SelectMode(model.ModeInterview))
	assert.Equal(t, model.ModeInterview, s.SelectedMode())
	assert.ErrorIs(t, s.SelectMode("gym"), model.ErrUnknownMode)
	assert.Equal(t, model.ModeInterview, s.SelectedMode())
}

func TestAutoReply(t *testing.T) {
	s := New(nil)
	assert.Equal(t, DefaultAutoReply, s.AutoReply())
	s.SetAutoReply("Heads down until 3pm")
	assert.Equal(t, "Heads down until 3pm", s.AutoReply())

	s = New(nil, WithAutoReply(""))
	assert.Equal(t, DefaultAutoReply, s.AutoReply())
}

func TestPolicyIsUsedForOverlaps(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	seed := []model.Meeting{
		{Title: "long", Start: now.Add(-30 * time.Minute), Duration: 120, Mode: model.ModeFocus, Active: true},
		{Title: "short", Start: now.Add(-5 * time.Minute), Duration: 30, Mode: model.ModeInterview, Active: true},
	}

	first := New(seqStore(), WithClock(Fixed(now)))
	require.NoError(t, first.Seed(seed))
	got, _ := first.Active()
	assert.Equal(t, "long", got.Title)

	latest := New(seqStore(), WithClock(Fixed(now)), WithPolicy(resolver.LatestStart))
	require.NoError(t, latest.Seed(seed))
	got, _ = latest.Active()
	assert.Equal(t, "short", got.Title)

	got, ok := latest.ActiveAt(now.Add(2 * time.Hour))
	assert.False(t, ok, "got %+v", got)
}

func TestImportAddsInactive(t *testing.T) {
	s := New(seqStore())
	n, err := s.Import([]form.Input{
		{Title: "a", Start: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Duration: 30, Mode: model.ModeMeeting},
		{Title: "b", Start: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Duration: 30, Mode: model.ModeFocus},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	for _, m := range s.Meetings() {
		assert.False(t, m.Active)
	}

	n, err = s.Import([]form.Input{{Title: "", Start: time.Now(), Duration: 30, Mode: model.ModeFocus}})
	assert.ErrorIs(t, err, model.ErrEmptyTitle)
	assert.Zero(t, n)
}
