package tasks

import (
	"regexp"
	"strings"
	"time"
)

// DefaultTitle is used when no title can be read from the message.
const DefaultTitle = "New Task"

const dateStart = `\d{1,2}[/-]\d{1,2}[/-]`

// A title stops at the description keyword, a dated reminder clause, or the end.
const titleEnd = `(?:\s*\bdescription\b|\s*\bremind(?:\s+me)?(?:\s+on)?\s*` + dateStart + `|\s+on\s*` + dateStart + `|$)`

var (
	taskTitleRe   = regexp.MustCompile(`(?i)\btasks?\b\s*(.*?)` + titleEnd)
	verbTitleRe   = regexp.MustCompile(`(?i)\b(?:add|create)\b\s*(.*?)` + titleEnd)
	descriptionRe = regexp.MustCompile(`(?i)\bdescription\b\s*(.*)`)
	reminderRe    = regexp.MustCompile(`(?i)(?:remind|on)\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
)

// Day-first layouts are tried before month-first ones.
var dateLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"1/2/2006",
	"1/2/06",
}

// ExtractTitle reads the task title from a free-text command such as
// "add task to update passwords". It falls back to DefaultTitle.
func ExtractTitle(input string) string {
	for _, re := range []*regexp.Regexp{taskTitleRe, verbTitleRe} {
		m := re.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		if title == "" || strings.EqualFold(title, "task") || strings.EqualFold(title, "tasks") {
			continue
		}
		return title
	}
	return DefaultTitle
}

// ExtractDescription returns the text after the "description" keyword.
func ExtractDescription(input string) string {
	m := descriptionRe.FindStringSubmatch(input)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(m[1], ": "))
}

// ExtractReminder finds a "remind"/"on" keyword followed by a numeric date.
// It returns nil when there is no such date or it cannot be parsed.
func ExtractReminder(input string, loc *time.Location) *time.Time {
	m := reminderRe.FindStringSubmatch(input)
	if m == nil {
		return nil
	}
	return ParseDate(m[1], loc)
}

// ParseDate parses a D/M/Y or M/D/Y date with "/" or "-" separators.
func ParseDate(s string, loc *time.Location) *time.Time {
	if loc == nil {
		loc = time.Local
	}
	s = strings.ReplaceAll(s, "-", "/")
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}
