// Package tasks manages the ordered to-do list of one user.
package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/models"
)

// InvalidNumber is the reply for a task number outside the list.
const InvalidNumber = "Invalid task number."

// Saver persists the whole task list.
type Saver interface {
	SaveTasks(tasks []models.Task) error
}

// Recorder receives best-effort activity lines.
type Recorder interface {
	Record(activity string)
}

// Manager holds the task list in memory and saves it after every mutation.
// A failed save is returned to the caller; the in-memory change stays.
type Manager struct {
	tasks    []models.Task
	saver    Saver
	activity Recorder
	now      func() time.Time
	newID    func() string
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now, for reminder countdowns and creation stamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDs replaces the UUID generator.
func WithIDs(newID func() string) Option {
	return func(m *Manager) { m.newID = newID }
}

// NewManager returns a manager seeded with previously loaded tasks.
func NewManager(saver Saver, activity Recorder, loaded []models.Task, opts ...Option) *Manager {
	m := &Manager{
		tasks:    append([]models.Task(nil), loaded...),
		saver:    saver,
		activity: activity,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Len returns the number of tasks.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Tasks returns a copy of the list in display order.
func (m *Manager) Tasks() []models.Task {
	return append([]models.Task(nil), m.tasks...)
}

// Add appends a task. A blank title becomes DefaultTitle.
func (m *Manager) Add(title, description string, reminder *time.Time) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	description = strings.TrimSpace(description)

	m.tasks = append(m.tasks, models.Task{
		ID:          m.newID(),
		Title:       title,
		Description: description,
		Reminder:    reminder,
		CreatedAt:   m.now(),
	})
	err := m.save()
	m.activity.Record("Added task: " + title)

	reply := fmt.Sprintf("Task added successfully!\n\nTitle: %s\nDescription: %s", title, description)
	if reminder != nil {
		reply += "\nReminder set for: " + reminder.Format("2006-01-02")
	}
	return reply, err
}

// AddFromText extracts title, description and reminder from a command like
// "add task renew antivirus description check licence remind me on 12/05/2026".
func (m *Manager) AddFromText(input string) (string, error) {
	return m.Add(
		ExtractTitle(input),
		ExtractDescription(input),
		ExtractReminder(input, m.now().Location()),
	)
}

// List renders every task with its 1-based number.
func (m *Manager) List() string {
	if m.Len() == 0 {
		return "You have no tasks currently."
	}

	now := m.now()
	var b strings.Builder
	b.WriteString("Your Current Tasks:\n\n")
	for i, t := range m.tasks {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, t.Display(now))
	}
	m.activity.Record("Listed all tasks")
	return b.String()
}

// Complete marks task n (1-based) as done.
func (m *Manager) Complete(n int) (string, error) {
	if n < 1 || n > m.Len() {
		return InvalidNumber, nil
	}

	t := &m.tasks[n-1]
	t.Completed = true
	err := m.save()
	m.activity.Record("Completed task: " + t.Title)
	return fmt.Sprintf("Marked task as completed: '%s'", t.Title), err
}

// Delete removes task n (1-based).
func (m *Manager) Delete(n int) (string, error) {
	if n < 1 || n > m.Len() {
		return InvalidNumber, nil
	}

	t := m.tasks[n-1]
	m.tasks = append(m.tasks[:n-1], m.tasks[n:]...)
	err := m.save()
	m.activity.Record("Deleted task: " + t.Title)
	return fmt.Sprintf("Deleted task: '%s'", t.Title), err
}

func (m *Manager) save() error {
	if err := m.saver.SaveTasks(m.Tasks()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
