package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderInfo(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		r := now.Add(d)
		return &r
	}

	tests := []struct {
		name     string
		reminder *time.Time
		want     string
	}{
		{"none", nil, "No reminder set"},
		{"days", at(3*24*time.Hour + 5*time.Hour), "Reminder in 3 days"},
		{"exactly one day", at(24 * time.Hour), "Reminder in 1 days"},
		{"hours", at(5*time.Hour + 30*time.Minute), "Reminder in 5 hours"},
		{"minutes", at(20 * time.Minute), "Reminder due soon!"},
		{"past", at(-2 * time.Hour), "Reminder due soon!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Title: "x", Reminder: tt.reminder}
			assert.Equal(t, tt.want, task.ReminderInfo(now))
		})
	}
}

func TestDisplay(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	task := Task{
		Title:       "Update passwords",
		Description: "all email accounts",
		CreatedAt:   now,
	}
	out := task.Display(now)
	assert.True(t, strings.HasPrefix(out, "[ ] Update passwords"))
	assert.Contains(t, out, "📝 all email accounts")
	assert.Contains(t, out, "📅 Created: 2026-03-10")
	assert.NotContains(t, out, "⏰")

	task.Completed = true
	task.Reminder = &due
	out = task.Display(now)
	assert.True(t, strings.HasPrefix(out, "[✓] Update passwords"))
	assert.Contains(t, out, "⏰ Reminder in 5 days (Due: 2026-03-15)")
}

func TestQuizQuestionValidate(t *testing.T) {
	ok := QuizQuestion{Prompt: "p", Options: []string{"a", "b"}, Correct: 1}
	assert.NoError(t, ok.Validate())

	assert.ErrorIs(t, QuizQuestion{Prompt: " ", Options: []string{"a", "b"}}.Validate(), ErrEmptyPrompt)
	assert.ErrorIs(t, QuizQuestion{Prompt: "p", Options: []string{"a"}}.Validate(), ErrTooFewOptions)
	assert.ErrorIs(t, QuizQuestion{Prompt: "p", Options: []string{"a", "b"}, Correct: 2}.Validate(), ErrCorrectOutside)
	assert.ErrorIs(t, QuizQuestion{Prompt: "p", Options: []string{"a", "b"}, Correct: -1}.Validate(), ErrCorrectOutside)
}
