package calendar

import "github.com/emersion/go-ical"

// Windows zone names seen in Outlook exports, mapped to IANA.
var windowsToIANA = map[string]string{
	"Pacific Standard Time":        "America/Los_Angeles",
	"Mountain Standard Time":       "America/Denver",
	"Central Standard Time":        "America/Chicago",
	"Eastern Standard Time":        "America/New_York",
	"Atlantic Standard Time":       "America/Halifax",
	"Alaskan Standard Time":        "America/Anchorage",
	"Hawaiian Standard Time":       "Pacific/Honolulu",
	"GMT Standard Time":            "Europe/London",
	"W. Europe Standard Time":      "Europe/Berlin",
	"Romance Standard Time":        "Europe/Paris",
	"Central Europe Standard Time": "Europe/Budapest",
	"China Standard Time":          "Asia/Shanghai",
	"Tokyo Standard Time":          "Asia/Tokyo",
	"India Standard Time":          "Asia/Kolkata",
	"AUS Eastern Standard Time":    "Australia/Sydney",
}

// normalizeTimezones rewrites Windows TZIDs on DTSTART, DTEND, EXDATE and
// RDATE in place.
func normalizeTimezones(comp *ical.Component) {
	for _, name := range []string{ical.PropDateTimeStart, ical.PropDateTimeEnd, ical.PropExceptionDates, ical.PropRecurrenceDates} {
		for _, p := range comp.Props.Values(name) {
			if iana, ok := windowsToIANA[p.Params.Get(ical.ParamTimezoneID)]; ok {
				p.Params.Set(ical.ParamTimezoneID, iana)
			}
		}
	}
}
