// Package calendar reads meetings from an iCalendar file so a session can
// start pre-populated. It only reads; nothing is ever written back.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/meetfocus/internal/form"
	"github.com/idilsaglam/meetfocus/internal/model"
)

// PropMode lets a calendar pin the focus mode of an event explicitly.
const PropMode = "X-MEETFOCUS-MODE"

var ErrNotCalendar = errors.New("not an iCalendar file")

// Entry is one importable meeting occurrence.
type Entry struct {
	UID      string
	Title    string
	Start    time.Time
	Duration int // minutes
	Mode     model.Mode
}

// Input converts the entry for session.Import.
func (e Entry) Input() form.Input {
	return form.Input{Title: e.Title, Start: e.Start, Duration: e.Duration, Mode: e.Mode}
}

// Options bound an import.
type Options struct {
	From, To    time.Time      // occurrences must overlap [From, To]
	DefaultMode model.Mode     // used when an event names no mode
	Location    *time.Location // zone for floating times
	Log         zerolog.Logger
}

// Window returns options spanning 12 hours back to days ahead of now.
func Window(now time.Time, days int) Options {
	if days <= 0 {
		days = 7
	}
	return Options{
		From:        now.Add(-12 * time.Hour),
		To:          now.Add(time.Duration(days) * 24 * time.Hour),
		DefaultMode: model.ModeMeeting,
		Location:    time.Local,
		Log:         zerolog.Nop(),
	}
}

// ReadFile parses the calendar at path.
func ReadFile(path string, opt Options) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open calendar: %w", err)
	}
	defer f.Close()
	return Parse(f, opt)
}

// Parse decodes every VEVENT in r. Cancelled, all-day and zero-length events
// are skipped. Recurring events are expanded inside the window.
func Parse(r io.Reader, opt Options) ([]Entry, error) {
	if opt.Location == nil {
		opt.Location = time.Local
	}
	if !opt.DefaultMode.Valid() {
		opt.DefaultMode = model.ModeMeeting
	}

	dec := ical.NewDecoder(r)
	var out []Entry
	seen := make(map[string]bool)
	stats := skipStats{}
	decoded := 0

	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if decoded == 0 {
				return nil, fmt.Errorf("%w: %v", ErrNotCalendar, err)
			}
			return nil, fmt.Errorf("decode calendar: %w", err)
		}
		decoded++

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			normalizeTimezones(comp)

			entry, ok := parseEvent(comp, opt, &stats)
			if !ok {
				continue
			}

			occurrences := []Entry{entry}
			if rule := comp.Props.Get(ical.PropRecurrenceRule); rule != nil {
				occurrences, err = expand(entry, rule.Value, exceptionDates(comp, entry.Start, opt.Location), opt)
				if err != nil {
					opt.Log.Warn().Err(err).Str("title", entry.Title).Msg("skipping recurring event")
					stats.badRule++
					continue
				}
			}

			for _, e := range occurrences {
				if !overlaps(e, opt.From, opt.To) {
					stats.outside++
					continue
				}
				key := e.UID + "|" + e.Start.UTC().Format(time.RFC3339)
				if seen[key] {
					stats.duplicate++
					continue
				}
				seen[key] = true
				out = append(out, e)
			}
		}
	}

	if decoded == 0 {
		return nil, ErrNotCalendar
	}
	opt.Log.Debug().
		Int("included", len(out)).
		Int("cancelled", stats.cancelled).
		Int("all_day", stats.allDay).
		Int("no_time", stats.noTime).
		Int("outside", stats.outside).
		Int("duplicate", stats.duplicate).
		Int("bad_rule", stats.badRule).
		Msg("calendar parsed")
	return out, nil
}

type skipStats struct {
	cancelled, allDay, noTime, outside, duplicate, badRule int
}

func parseEvent(comp *ical.Component, opt Options, stats *skipStats) (Entry, bool) {
	e := Entry{Mode: opt.DefaultMode}

	if p := comp.Props.Get(ical.PropUID); p != nil {
		e.UID = p.Value
	}
	if p := comp.Props.Get(ical.PropSummary); p != nil {
		e.Title = strings.TrimSpace(p.Value)
	}
	if e.Title == "" {
		e.Title = "(untitled)"
	}
	if p := comp.Props.Get(ical.PropStatus); p != nil && strings.EqualFold(p.Value, "CANCELLED") {
		stats.cancelled++
		return Entry{}, false
	}

	start := comp.Props.Get(ical.PropDateTimeStart)
	if start == nil {
		stats.noTime++
		return Entry{}, false
	}
	if strings.EqualFold(start.Params.Get(ical.ParamValue), "DATE") {
		stats.allDay++
		return Entry{}, false
	}
	st, err := start.DateTime(opt.Location)
	if err != nil {
		stats.noTime++
		return Entry{}, false
	}
	e.Start = st

	var length time.Duration
	if p := comp.Props.Get(ical.PropDateTimeEnd); p != nil {
		end, err := p.DateTime(opt.Location)
		if err == nil {
			length = end.Sub(st)
		}
	} else if p := comp.Props.Get(ical.PropDuration); p != nil {
		if d, err := p.Duration(); err == nil {
			length = d
		}
	}
	e.Duration = int(length / time.Minute)
	if e.Duration <= 0 {
		stats.noTime++
		return Entry{}, false
	}

	if e.UID == "" {
		e.UID = e.Start.UTC().Format(time.RFC3339) + "-" + e.Title
	}
	e.Mode = eventMode(comp, opt.DefaultMode)
	return e, true
}

// eventMode prefers X-MEETFOCUS-MODE, then the first CATEGORIES value naming a mode.
func eventMode(comp *ical.Component, def model.Mode) model.Mode {
	if p := comp.Props.Get(PropMode); p != nil {
		if m, err := model.ParseMode(p.Value); err == nil {
			return m
		}
	}
	for _, p := range comp.Props.Values(ical.PropCategories) {
		for _, c := range strings.Split(p.Value, ",") {
			if m, err := model.ParseMode(c); err == nil {
				return m
			}
		}
	}
	return def
}

func overlaps(e Entry, from, to time.Time) bool {
	end := e.Start.Add(time.Duration(e.Duration) * time.Minute)
	if !to.IsZero() && e.Start.After(to) {
		return false
	}
	if !from.IsZero() && end.Before(from) {
		return false
	}
	return true
}
