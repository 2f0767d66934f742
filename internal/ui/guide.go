package ui

// Device setup copy. It is static text; nothing here touches the phone.

var QuickTips = []string{
	"Copy the auto-reply message to your messaging apps",
	"Enable Do Not Disturb on your phone",
	"Set emergency contacts as exceptions",
	"Use airplane mode + WiFi for video calls",
}

var AndroidSteps = []string{
	"Go to Settings → Sound & vibration → Do not disturb",
	"Set up schedules for your meeting times",
	"Allow exceptions for emergency contacts",
	`Enable "Hide notifications" in meeting apps`,
}

var IPhoneSteps = []string{
	"Settings → Focus → Create new focus",
	"Set automation based on time/app",
	"Allow important contacts only",
	"Use Control Center for quick toggle",
}

// GuideLines renders all three blocks for a Panel.
func GuideLines() []string {
	t := Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Quick Instructions"))
	for _, s := range QuickTips {
		lines = append(lines, "• "+s)
	}
	lines = append(lines, "", t.Accent.Render("Android Setup"))
	lines = append(lines, numbered(AndroidSteps)...)
	lines = append(lines, "", t.Accent.Render("iPhone Setup"))
	lines = append(lines, numbered(IPhoneSteps)...)
	return lines
}

func numbered(steps []string) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = string(rune('1'+i)) + ". " + s
	}
	return out
}
