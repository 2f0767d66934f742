package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

// expand turns a recurring event into its occurrences inside the import
// window, leaving out the exdates.
func expand(base Entry, rule string, exdates []time.Time, opt Options) ([]Entry, error) {
	ro, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("parse rrule %q: %w", rule, err)
	}
	ro.Dtstart = base.Start
	r, err := rrule.NewRRule(*ro)
	if err != nil {
		return nil, fmt.Errorf("build rrule %q: %w", rule, err)
	}
	set := &rrule.Set{}
	set.RRule(r)
	set.SetExDates(exdates)

	from, to := opt.From, opt.To
	length := time.Duration(base.Duration) * time.Minute
	if from.IsZero() {
		from = base.Start
	}
	if to.IsZero() {
		to = from.Add(7 * 24 * time.Hour)
	}

	// An occurrence that started up to one meeting-length before the window still overlaps it.
	var out []Entry
	for _, t := range set.Between(from.Add(-length), to, true) {
		e := base
		e.Start = t
		e.UID = base.UID + "-" + t.UTC().Format(time.RFC3339)
		out = append(out, e)
	}
	return out, nil
}

// exceptionDates collects every EXDATE value. A property may carry a comma
// separated list; date-only values cancel the occurrence on that day.
func exceptionDates(comp *ical.Component, start time.Time, loc *time.Location) []time.Time {
	var out []time.Time
	for _, p := range comp.Props.Values(ical.PropExceptionDates) {
		for _, v := range strings.Split(p.Value, ",") {
			one := ical.Prop{Name: p.Name, Params: p.Params, Value: strings.TrimSpace(v)}
			t, err := one.DateTime(loc)
			if err != nil {
				continue
			}
			if one.ValueType() == ical.ValueDate {
				t = time.Date(t.Year(), t.Month(), t.Day(),
					start.Hour(), start.Minute(), start.Second(), 0, start.Location())
			}
			out = append(out, t)
		}
	}
	return out
}
