// Package store holds the meetings of one session, in insertion order.
//
// The store lives in memory only and belongs to a single session; it does no
// locking and must not be shared between goroutines.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/meetfocus/internal/model"
)

var ErrDuplicateID = errors.New("duplicate meeting id")

// Store is an ordered collection of meetings.
type Store struct {
	meetings []model.Meeting
	newID    func() string
	log      zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDs replaces the uuid generator. Tests use it for stable ids.
func WithIDs(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger attaches a logger; the default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Add appends a new inactive meeting with a fresh id.
func (s *Store) Add(title string, start time.Time, minutes int, mode model.Mode) (model.Meeting, error) {
	m := model.Meeting{
		ID:       s.newID(),
		Title:    title,
		Start:    start,
		Duration: minutes,
		Mode:     mode,
	}
	if err := m.Validate(); err != nil {
		return model.Meeting{}, fmt.Errorf("add: %w", err)
	}
	if s.index(m.ID) >= 0 {
		return model.Meeting{}, fmt.Errorf("add: %w: %s", ErrDuplicateID, m.ID)
	}
	s.meetings = append(s.meetings, m)
	s.log.Debug().Str("id", m.ID).Str("title", m.Title).Str("mode", string(m.Mode)).
		Time("start", m.Start).Int("duration", m.Duration).Msg("meeting added")
	return m, nil
}

// ToggleActive flips the active flag. It returns false, and changes nothing, when id is unknown.
func (s *Store) ToggleActive(id string) (model.Meeting, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Meeting{}, false
	}
	s.meetings[i].Active = !s.meetings[i].Active
	s.log.Debug().Str("id", id).Bool("active", s.meetings[i].Active).Msg("meeting toggled")
	return s.meetings[i], true
}

// Remove deletes the meeting and reports where it was, so a caller can Restore it.
func (s *Store) Remove(id string) (model.Meeting, int, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Meeting{}, -1, false
	}
	m := s.meetings[i]
	s.meetings = append(s.meetings[:i], s.meetings[i+1:]...)
	s.log.Debug().Str("id", id).Msg("meeting removed")
	return m, i, true
}

// Restore puts a removed meeting back at index, clamped to the current bounds.
func (s *Store) Restore(index int, m model.Meeting) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if m.ID == "" || s.index(m.ID) >= 0 {
		return fmt.Errorf("restore: %w: %q", ErrDuplicateID, m.ID)
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.meetings) {
		index = len(s.meetings)
	}
	s.meetings = append(s.meetings, model.Meeting{})
	copy(s.meetings[index+1:], s.meetings[index:])
	s.meetings[index] = m
	return nil
}

// Seed appends pre-built meetings, for example from a snapshot file. Records
// without an id get one. Either every record is accepted or none is.
func (s *Store) Seed(ms []model.Meeting) error {
	seen := make(map[string]bool, len(ms))
	batch := make([]model.Meeting, 0, len(ms))
	for i, m := range ms {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("seed #%d: %w", i+1, err)
		}
		if m.ID == "" {
			m.ID = s.newID()
		}
		if seen[m.ID] || s.index(m.ID) >= 0 {
			return fmt.Errorf("seed #%d: %w: %s", i+1, ErrDuplicateID, m.ID)
		}
		seen[m.ID] = true
		batch = append(batch, m)
	}
	s.meetings = append(s.meetings, batch...)
	s.log.Debug().Int("count", len(batch)).Msg("meetings seeded")
	return nil
}

// List returns a copy of all meetings in insertion order.
func (s *Store) List() []model.Meeting {
	out := make([]model.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

func (s *Store) Get(id string) (model.Meeting, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Meeting{}, false
	}
	return s.meetings[i], true
}

func (s *Store) Len() int { return len(s.meetings) }

func (s *Store) index(id string) int {
	for i := range s.meetings {
		if s.meetings[i].ID == id {
			return i
		}
	}
	return -1
}
