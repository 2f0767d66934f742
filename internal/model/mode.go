package model

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is a notification profile. The set is closed.
type Mode string

const (
	ModeNormal    Mode = "normal"
	ModeMeeting   Mode = "meeting"
	ModeInterview Mode = "interview"
	ModeFocus     Mode = "focus"
)

var ErrUnknownMode = errors.New("unknown mode")

// Descriptor is what the UI needs to present a mode.
type Descriptor struct {
	Name        string
	Description string
	Icon        string
	Color       string // ANSI 256 color code
	Key         string // selection shortcut
}

// Modes lists every mode in display order.
var Modes = []Mode{ModeNormal, ModeMeeting, ModeInterview, ModeFocus}

var descriptors = map[Mode]Descriptor{
	ModeNormal: {
		Name:        "Normal Mode",
		Description: "All notifications enabled",
		Icon:        "🔔",
		Color:       "42",
		Key:         "1",
	},
	ModeMeeting: {
		Name:        "Meeting Mode",
		Description: "Block all except emergency calls",
		Icon:        "🎥",
		Color:       "196",
		Key:         "2",
	},
	ModeInterview: {
		Name:        "Interview Mode",
		Description: "Complete silence mode",
		Icon:        "🛡",
		Color:       "135",
		Key:         "3",
	},
	ModeFocus: {
		Name:        "Focus Mode",
		Description: "Work focus with minimal distractions",
		Icon:        "🔕",
		Color:       "33",
		Key:         "4",
	},
}

func (m Mode) Valid() bool {
	_, ok := descriptors[m]
	return ok
}

// Describe returns the descriptor for m. Unknown modes get a zero Descriptor.
func (m Mode) Describe() Descriptor { return descriptors[m] }

func (m Mode) String() string { return string(m) }

// ParseMode accepts a mode key ("focus"), its display name ("Focus Mode") or its shortcut ("4").
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes {
		d := descriptors[m]
		if s == string(m) || s == strings.ToLower(d.Name) || s == d.Key {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// UnmarshalText rejects modes outside the enumeration.
func (m *Mode) UnmarshalText(b []byte) error {
	p, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = p
	return nil
}

// MarshalText keeps the JSON form as the bare key.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
	}
	return []byte(m), nil
}
