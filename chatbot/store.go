package chatbot

import "github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/models"

// Store is the persistence the engine needs. database.UserStore implements
// it on SQLite.
type Store interface {
	// LoadTasks returns the saved task list in display order.
	LoadTasks() ([]models.Task, error)

	// SaveTasks replaces the saved task list.
	SaveTasks(tasks []models.Task) error

	// AppendConversation records one conversation line.
	AppendConversation(text string) error

	// AppendActivity records one activity line.
	AppendActivity(text string) error

	// RecentActivity returns the newest max activity lines, oldest first.
	RecentActivity(max int) ([]string, error)

	// StoreUserFact saves a fact about the user under a category
	// such as "name" or "interest".
	StoreUserFact(value, category string) error

	// RecallInterests returns the stored interest facts.
	RecallInterests() ([]string, error)
}

// nameStore is implemented by stores that can return the saved user name.
type nameStore interface {
	UserName() (string, error)
}
