package models

import (
	"fmt"
	"time"
)

// Task is a to-do entry owned by one user
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Reminder    *time.Time `json:"reminder,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

const dateLayout = "2006-01-02"

// ReminderInfo describes how far away the reminder is, relative to now
func (t Task) ReminderInfo(now time.Time) string {
	if t.Reminder == nil {
		return "No reminder set"
	}

	left := t.Reminder.Sub(now)
	switch {
	case left >= 24*time.Hour:
		return fmt.Sprintf("Reminder in %d days", int(left.Hours()/24))
	case left >= time.Hour:
		return fmt.Sprintf("Reminder in %d hours", int(left.Hours()))
	default:
		return "Reminder due soon!"
	}
}

// Display renders the task the way it is shown in task listings
func (t Task) Display(now time.Time) string {
	status := " "
	if t.Completed {
		status = "✓"
	}

	s := fmt.Sprintf("[%s] %s\n   📝 %s\n   📅 Created: %s",
		status, t.Title, t.Description, t.CreatedAt.Format(dateLayout))
	if t.Reminder != nil {
		s += fmt.Sprintf("\n   ⏰ %s (Due: %s)", t.ReminderInfo(now), t.Reminder.Format(dateLayout))
	}
	return s
}
