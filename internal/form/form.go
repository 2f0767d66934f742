// Package form holds the schedule-meeting form as one structured value.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/meetfocus/internal/model"
)

const (
	MinDuration = 5
	MaxDuration = 480

	// DefaultMode is what the mode selector resets to after a submit.
	DefaultMode = model.ModeMeeting
)

var (
	ErrIncomplete = errors.New("form incomplete")
	ErrStart      = errors.New("invalid start time")
	ErrDuration   = errors.New("invalid duration")
	ErrMode       = errors.New("invalid mode")
)

// startLayouts are tried in order; the first matches an HTML datetime-local value.
var startLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Form is the raw text of each field.
type Form struct {
	Title    string
	Start    string
	Duration string
	Mode     string
}

// Input is a validated form, ready for store.Add.
type Input struct {
	Title    string
	Start    time.Time
	Duration int
	Mode     model.Mode
}

func New() Form {
	return Form{Mode: string(DefaultMode)}
}

// Reset clears every field and puts the mode back to DefaultMode.
func (f *Form) Reset() { *f = New() }

// Missing names the fields that are blank.
func (f Form) Missing() []string {
	var out []string
	if strings.TrimSpace(f.Title) == "" {
		out = append(out, "title")
	}
	if strings.TrimSpace(f.Start) == "" {
		out = append(out, "start")
	}
	if strings.TrimSpace(f.Duration) == "" {
		out = append(out, "duration")
	}
	if strings.TrimSpace(f.Mode) == "" {
		out = append(out, "mode")
	}
	return out
}

// Validate parses the fields. Start times without a zone are read in loc.
func (f Form) Validate(loc *time.Location) (Input, error) {
	if missing := f.Missing(); len(missing) > 0 {
		return Input{}, fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	if loc == nil {
		loc = time.Local
	}

	start, err := ParseStart(f.Start, loc)
	if err != nil {
		return Input{}, err
	}

	d, err := strconv.Atoi(strings.TrimSpace(f.Duration))
	if err != nil {
		return Input{}, fmt.Errorf("%w: %q is not a number", ErrDuration, f.Duration)
	}
	if d < MinDuration || d > MaxDuration {
		return Input{}, fmt.Errorf("%w: %d not in %d-%d minutes", ErrDuration, d, MinDuration, MaxDuration)
	}

	mode, err := model.ParseMode(f.Mode)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %v", ErrMode, err)
	}

	return Input{
		Title:    strings.TrimSpace(f.Title),
		Start:    start,
		Duration: d,
		Mode:     mode,
	}, nil
}

// ParseStart reads a start time in any accepted layout.
func ParseStart(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DDTHH:MM)", ErrStart, s)
}

// CycleMode moves the mode selector by step, wrapping around.
func (f *Form) CycleMode(step int) {
	cur := 0
	if m, err := model.ParseMode(f.Mode); err == nil {
		for i, mm := range model.Modes {
			if mm == m {
				cur = i
			}
		}
	}
	n := len(model.Modes)
	f.Mode = string(model.Modes[((cur+step)%n+n)%n])
}
