// Package httpapi serves one chatbot engine over a small JSON API.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/models"
)

const reminderLayout = "2006-01-02"

// Engine is the part of chatbot.Engine the API exposes.
type Engine interface {
	ProcessInput(text string) string
	AddTask(title, description string, reminder *time.Time) string
	CompleteTask(n int) string
	DeleteTask(n int) string
	Tasks() []models.Task
	ActivityLog() []string
	ConversationHistory() []string
}

// Handler handles the chat and task endpoints.
type Handler struct {
	engine Engine
	logger *zap.Logger
}

// NewHandler creates a handler over engine.
func NewHandler(engine Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// Router returns the routes with the standard middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.Chat)
		r.Get("/tasks", h.ListTasks)
		r.Post("/tasks", h.AddTask)
		r.Post("/tasks/{n}/complete", h.CompleteTask)
		r.Delete("/tasks/{n}", h.DeleteTask)
		r.Get("/activity", h.Activity)
		r.Get("/history", h.History)
	})
}

type chatRequest struct {
	Text string `json:"text"`
}

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reminder    string `json:"reminder,omitempty"`
}

type replyResponse struct {
	Reply string `json:"reply"`
}

// Chat answers one message.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	JSON(w, http.StatusOK, replyResponse{Reply: h.engine.ProcessInput(req.Text)})
}

// ListTasks returns the task list.
func (h *Handler) ListTasks(w http.ResponseWriter, _ *http.Request) {
	tasks := h.engine.Tasks()
	if tasks == nil {
		tasks = []models.Task{}
	}
	JSON(w, http.StatusOK, tasks)
}

// AddTask adds a task from explicit fields.
func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var reminder *time.Time
	if s := strings.TrimSpace(req.Reminder); s != "" {
		t, err := time.ParseInLocation(reminderLayout, s, time.Local)
		if err != nil {
			Error(w, http.StatusBadRequest, "reminder must be YYYY-MM-DD")
			return
		}
		reminder = &t
	}
	JSON(w, http.StatusCreated, replyResponse{Reply: h.engine.AddTask(req.Title, req.Description, reminder)})
}

// CompleteTask marks task {n} as done.
func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	n, ok := taskNumber(w, r)
	if !ok {
		return
	}
	JSON(w, http.StatusOK, replyResponse{Reply: h.engine.CompleteTask(n)})
}

// DeleteTask removes task {n}.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	n, ok := taskNumber(w, r)
	if !ok {
		return
	}
	JSON(w, http.StatusOK, replyResponse{Reply: h.engine.DeleteTask(n)})
}

// Activity returns the recent activity lines.
func (h *Handler) Activity(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, nonNil(h.engine.ActivityLog()))
}

// History returns the conversation lines of this session.
func (h *Handler) History(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, nonNil(h.engine.ConversationHistory()))
}

func taskNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		Error(w, http.StatusBadRequest, "task number must be an integer")
		return 0, false
	}
	return n, true
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("Handled request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}

// JSON writes a JSON response.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
