package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/chatbot"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/database"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	e, err := chatbot.New(db.ForUser(0))
	require.NoError(t, err)
	return NewHandler(e, zap.NewNop()).Router()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealthz(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestChat(t *testing.T) {
	h := newServer(t)

	rec := do(t, h, http.MethodPost, "/api/chat", `{"text": "who are you"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "I'm your Cybersecurity Awareness Chatbot, here to help you stay safe online!",
		decode[replyResponse](t, rec).Reply)

	rec = do(t, h, http.MethodPost, "/api/chat", `{"text": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]string](t, rec), 2)
}

func TestTaskLifecycle(t *testing.T) {
	h := newServer(t)

	rec := do(t, h, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/tasks", `{"title": "Enable 2FA", "reminder": "2026-06-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, decode[replyResponse](t, rec).Reply, "Reminder set for: 2026-06-01")

	rec = do(t, h, http.MethodPost, "/api/tasks", `{"title": "x", "reminder": "next week"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/tasks/1/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Marked task as completed: 'Enable 2FA'", decode[replyResponse](t, rec).Reply)

	rec = do(t, h, http.MethodGet, "/api/tasks", "")
	tasks := decode[[]models.Task](t, rec)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
	require.NotNil(t, tasks[0].Reminder)

	rec = do(t, h, http.MethodDelete, "/api/tasks/7", "")
	assert.Equal(t, "Invalid task number.", decode[replyResponse](t, rec).Reply)

	rec = do(t, h, http.MethodDelete, "/api/tasks/one", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/tasks/1", "")
	assert.Equal(t, "Deleted task: 'Enable 2FA'", decode[replyResponse](t, rec).Reply)
}

func TestActivity(t *testing.T) {
	h := newServer(t)
	do(t, h, http.MethodPost, "/api/chat", `{"text": "add task lock screen"}`)

	rec := do(t, h, http.MethodGet, "/api/activity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	lines := decode[[]string](t, rec)
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasSuffix(lines[len(lines)-2], "Added task: lock screen"))
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "Saved conversation: add task lock screen"))
}
