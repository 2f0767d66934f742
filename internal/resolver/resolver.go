// Package resolver decides which meeting, if any, is in effect at a given instant.
package resolver

import (
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/meetfocus/internal/model"
)

// Policy picks one meeting when several active windows overlap now.
type Policy int

const (
	// First returns the earliest qualifying meeting in store order.
	First Policy = iota
	// LatestStart returns the qualifying meeting that started last; equal
	// starts fall back to store order.
	LatestStart
)

// ParsePolicy accepts "first" or "latest-start". Empty means First.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return First, nil
	case "latest-start", "latest":
		return LatestStart, nil
	}
	return First, fmt.Errorf("unknown tie-break policy %q", s)
}

func (p Policy) String() string {
	if p == LatestStart {
		return "latest-start"
	}
	return "first"
}

// CurrentActive returns the first meeting flagged active whose window
// [Start, End] contains now.
func CurrentActive(now time.Time, meetings []model.Meeting) (model.Meeting, bool) {
	return First.Resolve(now, meetings)
}

// Resolve applies p to the meetings that are active at now.
func (p Policy) Resolve(now time.Time, meetings []model.Meeting) (model.Meeting, bool) {
	found := -1
	for i, m := range meetings {
		if !m.Active || !m.Contains(now) {
			continue
		}
		if p == First {
			return m, true
		}
		if found < 0 || m.Start.After(meetings[found].Start) {
			found = i
		}
	}
	if found < 0 {
		return model.Meeting{}, false
	}
	return meetings[found], true
}
