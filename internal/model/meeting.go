package model

import (
	"errors"
	"time"
)

// Meeting is the domain model for a scheduled meeting.
// Only Active changes after creation.
type Meeting struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	Duration int       `json:"duration"` // minutes
	Mode     Mode      `json:"mode"`
	Active   bool      `json:"active"`
}

var (
	ErrEmptyTitle = errors.New("empty title")
	ErrDuration   = errors.New("duration must be positive")
	ErrNoStart    = errors.New("missing start time")
)

// End is Start + Duration.
func (m Meeting) End() time.Time {
	return m.Start.Add(time.Duration(m.Duration) * time.Minute)
}

// Contains reports whether now falls inside [Start, End]. Both bounds are inclusive.
func (m Meeting) Contains(now time.Time) bool {
	return !now.Before(m.Start) && !now.After(m.End())
}

// Phase places now relative to the meeting window.
func (m Meeting) Phase(now time.Time) Phase {
	switch {
	case now.Before(m.Start):
		return PhaseUpcoming
	case now.After(m.End()):
		return PhasePast
	default:
		return PhaseInProgress
	}
}

// Progress is the elapsed fraction of the window, clamped to [0, 1].
func (m Meeting) Progress(now time.Time) float64 {
	total := m.End().Sub(m.Start)
	if total <= 0 {
		return 0
	}
	p := float64(now.Sub(m.Start)) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Validate checks the record invariants. The ID is not checked here.
func (m Meeting) Validate() error {
	if m.Title == "" {
		return ErrEmptyTitle
	}
	if m.Start.IsZero() {
		return ErrNoStart
	}
	if m.Duration <= 0 {
		return ErrDuration
	}
	if !m.Mode.Valid() {
		return ErrUnknownMode
	}
	return nil
}

// Phase is where a meeting sits relative to the clock. It ignores the Active flag.
type Phase int

const (
	PhaseUpcoming Phase = iota
	PhaseInProgress
	PhasePast
)

func (p Phase) String() string {
	switch p {
	case PhaseUpcoming:
		return "upcoming"
	case PhaseInProgress:
		return "now"
	case PhasePast:
		return "past"
	}
	return "unknown"
}
