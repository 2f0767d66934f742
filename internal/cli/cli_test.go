package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/meetfocus/internal/model"
	"github.com/idilsaglam/meetfocus/internal/session"
	"github.com/idilsaglam/meetfocus/internal/store/jsonstore"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"MEETFOCUS_THEME", "MEETFOCUS_SEED", "MEETFOCUS_CALENDAR", "MEETFOCUS_TIE_BREAK", "MEETFOCUS_DEFAULT_MODE", "MEETFOCUS_AUTO_REPLY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeSeed(t *testing.T, meetings []model.Meeting) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jsonstore.Encode(&buf, meetings))
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func day(h, m int) time.Time { return time.Date(2024, 1, 1, h, m, 0, 0, time.Local) }

func sampleSeed(t *testing.T) string {
	return writeSeed(t, []model.Meeting{
		{ID: "s", Title: "Standup", Start: day(9, 0), Duration: 15, Mode: model.ModeMeeting, Active: true},
		{ID: "p", Title: "Candidate panel", Start: day(9, 5), Duration: 60, Mode: model.ModeInterview},
		{ID: "d", Title: "Deep work", Start: day(13, 0), Duration: 90, Mode: model.ModeFocus},
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(&Dependencies{})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--theme", "mono", "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestListJSON(t *testing.T) {
	isolate(t)
	seed := sampleSeed(t)

	out, err := execute(t, "ls", "--seed", seed, "--json")
	require.NoError(t, err)

	got, err := jsonstore.Decode(bytes.NewBufferString(out))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Standup", got[0].Title)
	assert.True(t, got[0].Active)
	assert.Equal(t, model.ModeFocus, got[2].Mode)
}

func TestListTable(t *testing.T) {
	isolate(t)
	seed := sampleSeed(t)

	out, err := execute(t, "ls", "--seed", seed, "--at", "2024-01-01 10:00")
	require.NoError(t, err)
	assert.Contains(t, out, "3 total, 1 past")
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "Interview Mode")
	assert.Contains(t, out, "starts 3 hours from now")
}

func TestListEmpty(t *testing.T) {
	isolate(t)

	out, err := execute(t, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No meetings")
}

func TestNowActiveMeeting(t *testing.T) {
	isolate(t)
	seed := sampleSeed(t)

	out, err := execute(t, "now", "--seed", seed, "--at", "2024-01-01 09:10")
	require.NoError(t, err)
	assert.Contains(t, out, "meeting: Standup (until 09:15)")
	assert.Contains(t, out, "Meeting Mode")
	assert.Contains(t, out, session.DefaultAutoReply)
}

func TestNowWindowEndIsInclusive(t *testing.T) {
	isolate(t)
	seed := sampleSeed(t)

	out, err := execute(t, "now", "--seed", seed, "--at", "2024-01-01 09:15")
	require.NoError(t, err)
	assert.Contains(t, out, "meeting: Standup")
}

func TestNowNothingActive(t *testing.T) {
	isolate(t)
	seed := sampleSeed(t)

	out, err := execute(t, "now", "--seed", seed, "--at", "2024-01-01 13:30")
	require.NoError(t, err)
	assert.Contains(t, out, "meeting: none")
	assert.Contains(t, out, "Normal Mode")
	assert.NotContains(t, out, "reply:")
}

func TestNowAllTreatsEveryMeetingAsMarked(t *testing.T) {
	isolate(t)
	seed := sampleSeed(t)

	out, err := execute(t, "now", "--seed", seed, "--at", "2024-01-01 13:30", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "meeting: Deep work")
	assert.Contains(t, out, "Focus Mode")
}

func TestNowTieBreak(t *testing.T) {
	isolate(t)
	seed := writeSeed(t, []model.Meeting{
		{ID: "a", Title: "Long sync", Start: day(9, 0), Duration: 60, Mode: model.ModeMeeting, Active: true},
		{ID: "b", Title: "Interview", Start: day(9, 30), Duration: 30, Mode: model.ModeInterview, Active: true},
	})

	out, err := execute(t, "now", "--seed", seed, "--at", "2024-01-01 09:40")
	require.NoError(t, err)
	assert.Contains(t, out, "meeting: Long sync")

	out, err = execute(t, "now", "--seed", seed, "--at", "2024-01-01 09:40", "--tie-break", "latest-start")
	require.NoError(t, err)
	assert.Contains(t, out, "meeting: Interview")
}

func TestNowRejectsBadAt(t *testing.T) {
	isolate(t)

	_, err := execute(t, "now", "--at", "tomorrow-ish")
	assert.ErrorContains(t, err, "--at")
}

func TestBadTieBreak(t *testing.T) {
	isolate(t)

	_, err := execute(t, "now", "--tie-break", "random")
	assert.Error(t, err)
}

func TestMissingSeed(t *testing.T) {
	isolate(t)

	out, err := execute(t, "ls", "--seed", filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "No meetings")
}

func TestCalendarImport(t *testing.T) {
	isolate(t)
	ics := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//meetfocus//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:review@example.com\r\n" +
		"DTSTAMP:20240101T000000Z\r\n" +
		"SUMMARY:Design review\r\n" +
		"X-MEETFOCUS-MODE:focus\r\n" +
		"DTSTART:20240101T120000Z\r\n" +
		"DTEND:20240101T130000Z\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"
	path := filepath.Join(t.TempDir(), "work.ics")
	require.NoError(t, os.WriteFile(path, []byte(ics), 0o644))

	out, err := execute(t, "ls", "--calendar", path, "--at", "2024-01-01 12:00", "--json")
	require.NoError(t, err)

	got, err := jsonstore.Decode(bytes.NewBufferString(out))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Design review", got[0].Title)
	assert.Equal(t, 60, got[0].Duration)
	assert.Equal(t, model.ModeFocus, got[0].Mode)
	assert.False(t, got[0].Active)
	assert.NotEmpty(t, got[0].ID)
}

func TestModes(t *testing.T) {
	isolate(t)

	out, err := execute(t, "modes")
	require.NoError(t, err)
	for _, m := range model.Modes {
		assert.Contains(t, out, m.Describe().Name)
	}
}

func TestSetup(t *testing.T) {
	isolate(t)

	out, err := execute(t, "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "Android")
	assert.Contains(t, out, "iPhone")
	assert.Contains(t, out, "Auto-reply")
}

func TestConfigFileAutoReply(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("auto_reply = \"Heads down, back at 3\"\n"), 0o644))

	out, err := execute(t, "--config", path, "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "Heads down, back at 3")
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "meetfocus dev")
}
