// Package chatbot is the dialogue engine of the cybersecurity assistant. It
// routes each utterance to a task command, the quiz, a security topic or
// the free-text fallback, and keeps the session state between turns.
package chatbot

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/models"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/quiz"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/responses"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/sentiment"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/tasks"
)

const (
	// EmptyInput is the reply to a blank message.
	EmptyInput = "Please type a message. You can ask about passwords, phishing, privacy or safe browsing."
	// NotANumber is the reply to a quiz answer that is not a number.
	NotANumber = "Please enter the number of your answer (e.g. 2)."
	// InvalidName is the reply when a name has characters other than letters and spaces.
	InvalidName = "Please enter a valid name (letters and spaces only)."

	activityUnavailable  = "Could not load activity log"
	defaultActivityLimit = 10
)

// Engine runs one conversation. All exported methods are safe to call
// from several goroutines; turns are serialized.
type Engine struct {
	mu sync.Mutex

	store    Store
	logger   *zap.Logger
	now      func() time.Time
	rng      responses.Rand
	bank     []models.QuizQuestion
	actLimit int

	tasks    *tasks.Manager
	quiz     *quiz.Engine
	library  *responses.Library
	fallback *responses.Fallback
	profile  Profile
	history  []string

	// persistence failures of the turn in progress
	issues []error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRand sets the random source for reply selection.
func WithRand(r responses.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithActivityLimit sets how many activity lines are shown.
func WithActivityLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.actLimit = n
		}
	}
}

// WithQuizBank replaces the built-in quiz questions.
func WithQuizBank(bank []models.QuizQuestion) Option {
	return func(e *Engine) { e.bank = bank }
}

// New builds an engine over store and loads the saved tasks. A failed load
// is logged and leaves the task list empty; the engine is still usable.
func New(store Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		store:    store,
		logger:   zap.NewNop(),
		now:      time.Now,
		bank:     quiz.DefaultBank(),
		actLimit: defaultActivityLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(e.now().UnixNano()))
	}

	activity := recorder{e}

	q, err := quiz.NewEngine(e.bank, activity)
	if err != nil {
		return nil, fmt.Errorf("init quiz: %w", err)
	}
	e.quiz = q
	activity.Record(fmt.Sprintf("Initialized quiz with %d questions", q.Len()))

	loaded, err := store.LoadTasks()
	if err != nil {
		e.logger.Warn("Failed to load tasks", zap.Error(err))
		e.remember("Error loading tasks: " + err.Error())
		loaded = nil
	} else {
		activity.Record("Loaded saved tasks")
	}
	e.tasks = tasks.NewManager(store, activity, loaded, tasks.WithClock(e.now))

	if ns, ok := store.(nameStore); ok {
		name, err := ns.UserName()
		if err != nil {
			e.logger.Warn("Failed to load user name", zap.Error(err))
		} else if IsValidName(name) {
			e.profile.Name = name
		}
	}

	e.library = responses.NewLibrary(e.rng)
	e.fallback = responses.NewFallback(e.rng)
	e.issues = nil
	return e, nil
}

// ProcessInput answers one user message.
func (e *Engine) ProcessInput(input string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	text := strings.TrimSpace(input)
	if text == "" {
		return EmptyInput
	}

	e.issues = nil
	e.remember("User asked: " + text)
	reply := e.route(text)
	e.remember("Bot responded: " + reply)
	recorder{e}.Record("Saved conversation: " + text)
	return e.withIssues(reply)
}

// AnswerQuiz submits an explicit quiz answer, such as a button press.
func (e *Engine) AnswerQuiz(input string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	text := strings.TrimSpace(input)
	if !digitsRe.MatchString(text) {
		return NotANumber
	}

	e.issues = nil
	e.remember("User asked: " + text)
	reply := e.quiz.SubmitAnswer(parseAnswer(text))
	e.remember("Bot responded: " + reply)
	recorder{e}.Record("Saved conversation: " + text)
	return e.withIssues(reply)
}

func (e *Engine) route(text string) string {
	t := turn{
		text:  text,
		lower: strings.ToLower(text),
	}
	t.mood = sentiment.Detect(t.lower)

	for _, r := range rules {
		if r.match(e, t) {
			e.logger.Debug("Matched rule", zap.String("rule", r.name), zap.String("mood", string(t.mood)))
			return r.handle(e, t)
		}
	}
	return e.fallback.Reply(t.lower)
}

// AddTask adds a task with explicit fields.
func (e *Engine) AddTask(title, description string, reminder *time.Time) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.issues = nil
	return e.withIssues(e.check(e.tasks.Add(title, description, reminder)))
}

// ListTasks renders the task list.
func (e *Engine) ListTasks() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks.List()
}

// CompleteTask marks task n (1-based) as done.
func (e *Engine) CompleteTask(n int) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.issues = nil
	return e.withIssues(e.check(e.tasks.Complete(n)))
}

// DeleteTask removes task n (1-based).
func (e *Engine) DeleteTask(n int) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.issues = nil
	return e.withIssues(e.check(e.tasks.Delete(n)))
}

// Tasks returns a copy of the task list.
func (e *Engine) Tasks() []models.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks.Tasks()
}

// StartQuiz starts, or restarts, the quiz.
func (e *Engine) StartQuiz() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.quiz.Start()
}

// InQuiz reports whether a quiz is waiting for an answer.
func (e *Engine) InQuiz() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.quiz.Active()
}

// QuizScore reports the score of the running or last finished quiz. While a
// quiz runs, the open question is repeated.
func (e *Engine) QuizScore() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	score, answered := e.quiz.Score()
	switch {
	case e.quiz.Active():
		return fmt.Sprintf("Quiz in progress: %d/%d correct so far.\n\n%s", score, answered, e.quiz.Current())
	case e.quiz.Completed():
		return fmt.Sprintf("Your last quiz score: %d/%d", score, answered)
	default:
		return "You haven't taken the quiz yet. Type 'start quiz' to begin."
	}
}

// CurrentQuestion returns the question awaiting an answer, if any.
func (e *Engine) CurrentQuestion() (models.QuizQuestion, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.quiz.CurrentQuestion()
}

// ConversationHistory returns the session's conversation lines.
func (e *Engine) ConversationHistory() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.history...)
}

// ActivityLog returns the most recent activity lines, oldest first.
func (e *Engine) ActivityLog() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recentActivity()
}

// SaveUserName validates and stores the user's display name.
func (e *Engine) SaveUserName(name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	name = strings.TrimSpace(name)
	if !IsValidName(name) {
		return InvalidName
	}

	e.issues = nil
	e.profile.Name = name
	if err := e.store.StoreUserFact(name, "name"); err != nil {
		e.fail(fmt.Errorf("store name: %w", err))
	} else {
		recorder{e}.Record("Stored user info: name=" + name)
	}
	e.remember("User entered name: " + name)
	return e.withIssues(fmt.Sprintf("Hello, %s! I'm here to help you stay safe online.", name))
}

// UserName returns the saved display name, or "".
func (e *Engine) UserName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.Name
}

// EndSession writes the exit line to the conversation.
func (e *Engine) EndSession() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.issues = nil
	if e.profile.Name == "" {
		e.remember("User exited the application")
	} else {
		e.remember(fmt.Sprintf("User %s exited the application", e.profile.Name))
	}
	recorder{e}.Record("Ended session")
	// fail has already logged anything that went wrong.
	e.issues = nil
}

// Interests returns the topics discussed in this session.
func (e *Engine) Interests() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.Interests()
}

func (e *Engine) noteInterest(topic string) {
	if !e.profile.AddInterest(topic) {
		return
	}
	if err := e.store.StoreUserFact(topic, "interest"); err != nil {
		e.fail(fmt.Errorf("store interest: %w", err))
		return
	}
	recorder{e}.Record("Stored user info: interest=" + topic)
}

func (e *Engine) recall() string {
	interests, err := e.store.RecallInterests()
	if err != nil {
		e.fail(fmt.Errorf("recall interests: %w", err))
		return "I couldn't look up what I know about you right now."
	}
	recorder{e}.Record("Recalled user info for " + e.profile.Name)

	reply := "I don't have any specific information stored about your interests yet."
	if len(interests) > 0 {
		reply = fmt.Sprintf("I remember you're interested in %s. Would you like to know more about these topics?",
			strings.Join(interests, " and "))
	}
	if e.profile.Name != "" {
		reply = e.profile.Name + ", " + reply
	}
	return reply
}

func (e *Engine) recentActivity() []string {
	entries, err := e.store.RecentActivity(e.actLimit)
	if err != nil {
		e.logger.Warn("Failed to read activity log", zap.Error(err))
		return []string{activityUnavailable}
	}
	return entries
}

// remember appends a conversation line to the session and the store.
func (e *Engine) remember(line string) {
	e.history = append(e.history, fmt.Sprintf("[%s] %s", e.now().Format("15:04:05"), line))
	if err := e.store.AppendConversation(line); err != nil {
		e.fail(fmt.Errorf("save conversation: %w", err))
	}
}

// check passes reply through and keeps err for the end of the turn.
func (e *Engine) check(reply string, err error) string {
	if err != nil {
		e.fail(err)
	}
	return reply
}

// fail notes a persistence error for the current turn and logs it
// best-effort.
func (e *Engine) fail(err error) {
	e.issues = append(e.issues, err)
	e.logger.Warn("Storage error", zap.Error(err))
	recorder{e}.Record("Storage error: " + err.Error())
}

func (e *Engine) withIssues(reply string) string {
	for _, err := range e.issues {
		reply += fmt.Sprintf("\n\n(Note: %v)", err)
	}
	e.issues = nil
	return reply
}

// recorder writes activity lines and swallows failures.
type recorder struct{ e *Engine }

func (r recorder) Record(activity string) {
	if err := r.e.store.AppendActivity(activity); err != nil {
		r.e.logger.Debug("Dropped activity line", zap.String("activity", activity), zap.Error(err))
	}
}

