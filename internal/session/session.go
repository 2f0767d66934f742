// Package session is the state of one running meetfocus instance: the
// meeting store, the selected focus mode and the auto-reply text.
//
// A Session is created by the top-level controller (the TUI program or a
// CLI command) and handed to whatever renders it. Nothing here is global.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/meetfocus/internal/form"
	"github.com/idilsaglam/meetfocus/internal/model"
	"github.com/idilsaglam/meetfocus/internal/resolver"
	"github.com/idilsaglam/meetfocus/internal/store"
)

const DefaultAutoReply = "I'm currently in a meeting. Will get back to you soon!"

// ErrEnded is returned when starting or ending a meeting whose window has passed.
var ErrEnded = errors.New("meeting has ended")

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Fixed is a Clock stopped at t.
func Fixed(t time.Time) Clock { return ClockFunc(func() time.Time { return t }) }

type Session struct {
	store     *store.Store
	clock     Clock
	policy    resolver.Policy
	loc       *time.Location
	selected  model.Mode
	autoReply string
	log       zerolog.Logger
}

type Option func(*Session)

func WithClock(c Clock) Option { return func(s *Session) { s.clock = c } }

func WithPolicy(p resolver.Policy) Option { return func(s *Session) { s.policy = p } }

// WithLocation sets the zone used to read form start times.
func WithLocation(loc *time.Location) Option { return func(s *Session) { s.loc = loc } }

func WithLogger(l zerolog.Logger) Option { return func(s *Session) { s.log = l } }

// WithAutoReply overrides DefaultAutoReply. Empty text is ignored.
func WithAutoReply(text string) Option {
	return func(s *Session) {
		if text != "" {
			s.autoReply = text
		}
	}
}

// WithMode sets the initially selected mode. Invalid modes are ignored.
func WithMode(m model.Mode) Option {
	return func(s *Session) {
		if m.Valid() {
			s.selected = m
		}
	}
}

// New wraps st. A nil store gets a fresh one.
func New(st *store.Store, opts ...Option) *Session {
	if st == nil {
		st = store.New()
	}
	s := &Session{
		store:     st,
		clock:     ClockFunc(time.Now),
		policy:    resolver.First,
		loc:       time.Local,
		selected:  model.ModeNormal,
		autoReply: DefaultAutoReply,
		log:       zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Session) Now() time.Time { return s.clock.Now() }

func (s *Session) Location() *time.Location { return s.loc }

func (s *Session) Policy() resolver.Policy { return s.policy }

func (s *Session) Meetings() []model.Meeting { return s.store.List() }

// Active is the meeting in effect right now, if any.
func (s *Session) Active() (model.Meeting, bool) {
	return s.policy.Resolve(s.Now(), s.store.List())
}

// ActiveAt resolves against an arbitrary instant.
func (s *Session) ActiveAt(t time.Time) (model.Meeting, bool) {
	return s.policy.Resolve(t, s.store.List())
}

func (s *Session) SelectedMode() model.Mode { return s.selected }

func (s *Session) SelectMode(m model.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("select: %w: %q", model.ErrUnknownMode, string(m))
	}
	s.selected = m
	s.log.Info().Str("mode", string(m)).Msg("mode selected")
	return nil
}

// EffectiveMode is the active meeting's mode, or the selected mode when no meeting is active.
func (s *Session) EffectiveMode() model.Mode {
	if m, ok := s.Active(); ok {
		return m.Mode
	}
	return s.selected
}

// Highlighted reports whether a mode card is lit: the selected mode and the
// active meeting's mode both are.
func (s *Session) Highlighted(m model.Mode) bool {
	if m == s.selected {
		return true
	}
	a, ok := s.Active()
	return ok && a.Mode == m
}

func (s *Session) AutoReply() string { return s.autoReply }

func (s *Session) SetAutoReply(text string) {
	s.autoReply = text
}

// Submit validates f and adds the meeting. An incomplete form returns
// form.ErrIncomplete and adds nothing.
func (s *Session) Submit(f form.Form) (model.Meeting, error) {
	in, err := f.Validate(s.loc)
	if err != nil {
		return model.Meeting{}, err
	}
	m, err := s.store.Add(in.Title, in.Start, in.Duration, in.Mode)
	if err != nil {
		return model.Meeting{}, err
	}
	s.log.Info().Str("id", m.ID).Str("title", m.Title).Msg("meeting scheduled")
	return m, nil
}

// Toggle starts or ends a meeting. Unknown ids are a no-op; past meetings
// return ErrEnded and are left alone.
func (s *Session) Toggle(id string) (model.Meeting, bool, error) {
	m, ok := s.store.Get(id)
	if !ok {
		return model.Meeting{}, false, nil
	}
	if m.Phase(s.Now()) == model.PhasePast {
		return m, true, ErrEnded
	}
	m, _ = s.store.ToggleActive(id)
	s.log.Info().Str("id", id).Bool("active", m.Active).Msg("meeting toggled")
	return m, true, nil
}

// Remove deletes a meeting; unknown ids are a no-op.
func (s *Session) Remove(id string) (model.Meeting, int, bool) {
	m, i, ok := s.store.Remove(id)
	if ok {
		s.log.Info().Str("id", id).Msg("meeting deleted")
	}
	return m, i, ok
}

// Restore undoes a Remove.
func (s *Session) Restore(index int, m model.Meeting) error {
	return s.store.Restore(index, m)
}

// Seed loads pre-built meetings, keeping their active flags.
func (s *Session) Seed(ms []model.Meeting) error {
	return s.store.Seed(ms)
}

// Import adds entries as freshly scheduled, inactive meetings.
func (s *Session) Import(entries []form.Input) (int, error) {
	n := 0
	for _, e := range entries {
		if _, err := s.store.Add(e.Title, e.Start, e.Duration, e.Mode); err != nil {
			return n, fmt.Errorf("import %q: %w", e.Title, err)
		}
		n++
	}
	s.log.Info().Int("count", n).Msg("meetings imported")
	return n, nil
}
