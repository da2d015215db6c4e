package chatbot

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/database"
)

func TestTasksSurviveRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.db")

	db, err := database.New(path)
	require.NoError(t, err)

	e, err := New(db.ForUser(42))
	require.NoError(t, err)
	e.ProcessInput("add task renew antivirus description check licence remind me on 12/05/2026")
	e.ProcessInput("add task enable 2FA")
	e.ProcessInput("complete task 2")
	before := e.Tasks()
	require.Len(t, before, 2)
	require.NotNil(t, before[0].Reminder)
	require.NoError(t, db.Close())

	db, err = database.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	restarted, err := New(db.ForUser(42))
	require.NoError(t, err)
	if diff := cmp.Diff(before, restarted.Tasks()); diff != "" {
		t.Fatalf("tasks changed across restart (-before +after):\n%s", diff)
	}

	other, err := New(db.ForUser(43))
	require.NoError(t, err)
	assert.Empty(t, other.Tasks())
}
