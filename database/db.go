// Package database is the SQLite persistence of the chatbot. One DB holds
// every user; ForUser returns the per-user view the engine works with.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/models"
)

const activityLayout = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	user_id     INTEGER NOT NULL,
	position    INTEGER NOT NULL,
	id          TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	reminder    INTEGER, -- unix nanoseconds
	completed   BOOLEAN NOT NULL DEFAULT 0,
	created_at  INTEGER NOT NULL, -- unix nanoseconds
	PRIMARY KEY (user_id, position)
);

CREATE TABLE IF NOT EXISTS conversation (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id   INTEGER NOT NULL,
	text      TEXT NOT NULL,
	timestamp INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS activity (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id   INTEGER NOT NULL,
	text      TEXT NOT NULL,
	timestamp INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS user_facts (
	user_id  INTEGER NOT NULL,
	category TEXT NOT NULL,
	value    TEXT NOT NULL,
	UNIQUE (user_id, category, value)
);
`

// DB handles all database operations
type DB struct {
	conn *sql.DB
	now  func() time.Time
}

// New opens the database at dbPath, creating the directory and tables if
// needed.
func New(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &DB{conn: conn, now: time.Now}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// ForUser returns the store of one user, such as a Telegram chat.
func (db *DB) ForUser(userID int64) *UserStore {
	return &UserStore{db: db, userID: userID}
}

// UserStore is the chatbot.Store of a single user.
type UserStore struct {
	db     *DB
	userID int64
}

// LoadTasks returns the saved tasks in list order.
func (s *UserStore) LoadTasks() ([]models.Task, error) {
	rows, err := s.db.conn.Query(`
		SELECT id, title, description, reminder, completed, created_at
		FROM tasks
		WHERE user_id = ?
		ORDER BY position`, s.userID)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var (
			t        models.Task
			reminder sql.NullInt64
			created  int64
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &reminder, &t.Completed, &created); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if reminder.Valid {
			r := time.Unix(0, reminder.Int64)
			t.Reminder = &r
		}
		t.CreatedAt = time.Unix(0, created)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

// SaveTasks replaces the user's saved list in one transaction.
func (s *UserStore) SaveTasks(tasks []models.Task) error {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks WHERE user_id = ?", s.userID); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (user_id, position, id, title, description, reminder, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		var reminder sql.NullInt64
		if t.Reminder != nil {
			reminder = sql.NullInt64{Int64: t.Reminder.UnixNano(), Valid: true}
		}
		if _, err := stmt.Exec(s.userID, i, t.ID, t.Title, t.Description, reminder, t.Completed, t.CreatedAt.UnixNano()); err != nil {
			return fmt.Errorf("insert task %q: %w", t.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tasks: %w", err)
	}
	return nil
}

// AppendConversation records one conversation line.
func (s *UserStore) AppendConversation(text string) error {
	_, err := s.db.conn.Exec(
		"INSERT INTO conversation (user_id, text, timestamp) VALUES (?, ?, ?)",
		s.userID, text, s.db.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("append conversation: %w", err)
	}
	return nil
}

// AppendActivity records one activity line.
func (s *UserStore) AppendActivity(text string) error {
	_, err := s.db.conn.Exec(
		"INSERT INTO activity (user_id, text, timestamp) VALUES (?, ?, ?)",
		s.userID, text, s.db.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

// RecentActivity returns the newest max activity lines, oldest first, each
// as "[2006-01-02 15:04:05] text".
func (s *UserStore) RecentActivity(max int) ([]string, error) {
	if max <= 0 {
		return nil, nil
	}
	return s.lines(`
		SELECT text, timestamp FROM (
			SELECT id, text, timestamp FROM activity
			WHERE user_id = ?
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id`, s.userID, max)
}

func (s *UserStore) lines(query string, args ...any) ([]string, error) {
	rows, err := s.db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lines: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var (
			text string
			ts   int64
		)
		if err := rows.Scan(&text, &ts); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		out = append(out, fmt.Sprintf("[%s] %s", time.Unix(ts, 0).Format(activityLayout), text))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query lines: %w", err)
	}
	return out, nil
}

// StoreUserFact saves value under category. "name" keeps only the latest
// value; other categories keep every distinct value.
func (s *UserStore) StoreUserFact(value, category string) error {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin store fact: %w", err)
	}
	defer tx.Rollback()

	if category == "name" {
		if _, err := tx.Exec("DELETE FROM user_facts WHERE user_id = ? AND category = ?", s.userID, category); err != nil {
			return fmt.Errorf("clear %s: %w", category, err)
		}
	}
	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO user_facts (user_id, category, value) VALUES (?, ?, ?)",
		s.userID, category, value,
	); err != nil {
		return fmt.Errorf("store %s: %w", category, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit fact: %w", err)
	}
	return nil
}

// RecallInterests returns the stored interests in the order they were saved.
func (s *UserStore) RecallInterests() ([]string, error) {
	return s.facts("interest")
}

// UserName returns the stored name, or "" when none was saved.
func (s *UserStore) UserName() (string, error) {
	names, err := s.facts("name")
	if err != nil || len(names) == 0 {
		return "", err
	}
	return names[0], nil
}

func (s *UserStore) facts(category string) ([]string, error) {
	rows, err := s.db.conn.Query(
		"SELECT value FROM user_facts WHERE user_id = ? AND category = ? ORDER BY rowid",
		s.userID, category,
	)
	if err != nil {
		return nil, fmt.Errorf("recall %s: %w", category, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", category, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recall %s: %w", category, err)
	}
	return values, nil
}
