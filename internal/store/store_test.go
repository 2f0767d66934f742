package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/meetfocus/internal/model"
)

var nine = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("m-%d", n)
	}
}

func TestAddAppendsInactive(t *testing.T) {
	s := New(WithIDs(seqIDs()))

	for i, title := range []string{"Standup", "Review", "Retro"} {
		m, err := s.Add(title, nine.Add(time.Duration(i)*time.Hour), 15, model.ModeMeeting)
		require.NoError(t, err)
		assert.False(t, m.Active)
		assert.Equal(t, i+1, s.Len())
	}

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, "Standup", got[0].Title)
	assert.Equal(t, "Retro", got[2].Title)
	assert.Equal(t, "m-3", got[2].ID)
}

func TestAddUsesUniqueDefaultIDs(t *testing.T) {
	s := New()
	a, err := s.Add("a", nine, 5, model.ModeFocus)
	require.NoError(t, err)
	b, err := s.Add("a", nine, 5, model.ModeFocus)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddRejectsMalformed(t *testing.T) {
	s := New()

	_, err := s.Add("", nine, 15, model.ModeMeeting)
	assert.ErrorIs(t, err, model.ErrEmptyTitle)
	_, err = s.Add("x", nine, 0, model.ModeMeeting)
	assert.ErrorIs(t, err, model.ErrDuration)
	_, err = s.Add("x", nine, 10, model.Mode("party"))
	assert.ErrorIs(t, err, model.ErrUnknownMode)
	_, err = s.Add("x", time.Time{}, 10, model.ModeMeeting)
	assert.ErrorIs(t, err, model.ErrNoStart)

	assert.Zero(t, s.Len())
}

func TestAddRejectsCollidingGenerator(t *testing.T) {
	s := New(WithIDs(func() string { return "same" }))
	_, err := s.Add("a", nine, 5, model.ModeFocus)
	require.NoError(t, err)
	_, err = s.Add("b", nine, 5, model.ModeFocus)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, s.Len())
}

func TestToggleIsAnInvolution(t *testing.T) {
	s := New(WithIDs(seqIDs()))
	m, err := s.Add("Standup", nine, 15, model.ModeMeeting)
	require.NoError(t, err)

	on, ok := s.ToggleActive(m.ID)
	require.True(t, ok)
	assert.True(t, on.Active)

	off, ok := s.ToggleActive(m.ID)
	require.True(t, ok)
	assert.False(t, off.Active)

	got, _ := s.Get(m.ID)
	assert.Equal(t, m, got)
}

func TestToggleUnknownIsNoop(t *testing.T) {
	s := New()
	_, ok := s.ToggleActive("missing")
	assert.False(t, ok)
}

func TestRemoveThenToggleDoesNotResurrect(t *testing.T) {
	s := New(WithIDs(seqIDs()))
	a, _ := s.Add("a", nine, 5, model.ModeFocus)
	b, _ := s.Add("b", nine, 5, model.ModeFocus)

	removed, idx, ok := s.Remove(a.ID)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, a, removed)

	_, ok = s.ToggleActive(a.ID)
	assert.False(t, ok)
	_, _, ok = s.Remove(a.ID)
	assert.False(t, ok)

	assert.Equal(t, []model.Meeting{b}, s.List())
}

func TestRestorePutsMeetingBack(t *testing.T) {
	s := New(WithIDs(seqIDs()))
	a, _ := s.Add("a", nine, 5, model.ModeFocus)
	b, _ := s.Add("b", nine, 5, model.ModeFocus)
	c, _ := s.Add("c", nine, 5, model.ModeFocus)

	m, idx, ok := s.Remove(b.ID)
	require.True(t, ok)
	require.NoError(t, s.Restore(idx, m))
	assert.Equal(t, []model.Meeting{a, b, c}, s.List())

	assert.ErrorIs(t, s.Restore(0, b), ErrDuplicateID)

	_, _, _ = s.Remove(c.ID)
	require.NoError(t, s.Restore(99, c))
	assert.Equal(t, c, s.List()[2])
}

func TestSeedIsAllOrNothing(t *testing.T) {
	s := New(WithIDs(seqIDs()))
	good := model.Meeting{ID: "x", Title: "x", Start: nine, Duration: 10, Mode: model.ModeMeeting, Active: true}
	bad := model.Meeting{Title: "y", Start: nine, Duration: 0, Mode: model.ModeMeeting}

	err := s.Seed([]model.Meeting{good, bad})
	assert.ErrorIs(t, err, model.ErrDuration)
	assert.Zero(t, s.Len())

	err = s.Seed([]model.Meeting{good, good})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Zero(t, s.Len())

	noID := model.Meeting{Title: "z", Start: nine, Duration: 10, Mode: model.ModeFocus}
	require.NoError(t, s.Seed([]model.Meeting{good, noID}))
	got := s.List()
	require.Len(t, got, 2)
	assert.True(t, got[0].Active, "seed keeps the active flag")
	assert.Equal(t, "m-1", got[1].ID)
}

func TestListIsACopy(t *testing.T) {
	s := New()
	_, _ = s.Add("a", nine, 5, model.ModeFocus)
	l := s.List()
	l[0].Title = "mutated"
	got := s.List()
	assert.Equal(t, "a", got[0].Title)
}
