// Package quiz runs a scored multiple-choice session over a fixed bank.
package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/models"
)

const (
	NotStarted       = "No quiz in progress. Type 'start quiz' to begin."
	AlreadyCompleted = "Quiz already completed. Type 'start quiz' to play again."
)

// ErrEmptyBank is returned for a bank without questions.
var ErrEmptyBank = errors.New("quiz bank is empty")

// Recorder receives best-effort activity lines.
type Recorder interface {
	Record(activity string)
}

// The session is always exactly one of these.
type state interface{ isState() }

type idle struct{}

type inProgress struct {
	index int
	score int
}

type completed struct {
	score int
}

func (idle) isState()       {}
func (inProgress) isState() {}
func (completed) isState()  {}

// Engine is one quiz session: Idle, then InProgress, then Completed.
type Engine struct {
	bank     []models.QuizQuestion
	state    state
	activity Recorder
}

// NewEngine validates the bank and returns an idle session.
func NewEngine(bank []models.QuizQuestion, activity Recorder) (*Engine, error) {
	if len(bank) == 0 {
		return nil, ErrEmptyBank
	}
	for i, q := range bank {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return &Engine{
		bank:     append([]models.QuizQuestion(nil), bank...),
		state:    idle{},
		activity: activity,
	}, nil
}

// Len returns the number of questions in the bank.
func (e *Engine) Len() int {
	return len(e.bank)
}

// Active reports whether answers are currently accepted.
func (e *Engine) Active() bool {
	_, ok := e.state.(inProgress)
	return ok
}

// Completed reports whether the last session ran to the end.
func (e *Engine) Completed() bool {
	_, ok := e.state.(completed)
	return ok
}

// Score returns the current score and how many questions were answered.
func (e *Engine) Score() (score, answered int) {
	switch s := e.state.(type) {
	case inProgress:
		return s.score, s.index
	case completed:
		return s.score, len(e.bank)
	default:
		return 0, 0
	}
}

// Start resets the session to the first question, whatever its state.
func (e *Engine) Start() string {
	e.state = inProgress{}
	e.activity.Record("Started cybersecurity quiz")
	return e.render(0)
}

// Current renders the question awaiting an answer.
func (e *Engine) Current() string {
	s, ok := e.state.(inProgress)
	if !ok {
		return "No quiz in progress."
	}
	return e.render(s.index)
}

// CurrentQuestion returns the question awaiting an answer, if any.
func (e *Engine) CurrentQuestion() (models.QuizQuestion, bool) {
	s, ok := e.state.(inProgress)
	if !ok {
		return models.QuizQuestion{}, false
	}
	return e.bank[s.index], true
}

// SubmitAnswer scores a 1-based answer. Numbers outside the option range
// are not rejected; they just never equal the correct option.
func (e *Engine) SubmitAnswer(n int) string {
	var s inProgress
	switch st := e.state.(type) {
	case idle:
		return NotStarted
	case completed:
		return AlreadyCompleted
	case inProgress:
		s = st
	}

	q := e.bank[s.index]
	correct := n-1 == q.Correct

	var b strings.Builder
	if correct {
		s.score++
		e.activity.Record(fmt.Sprintf("Correct answer for question %d", s.index+1))
		b.WriteString("Correct! ")
	} else {
		e.activity.Record(fmt.Sprintf("Incorrect answer for question %d", s.index+1))
		b.WriteString("Incorrect. ")
	}
	b.WriteString(q.Explanation)
	b.WriteString("\n\n")

	s.index++
	if s.index < len(e.bank) {
		e.state = s
		b.WriteString(e.render(s.index))
		return b.String()
	}

	e.state = completed{score: s.score}
	e.activity.Record(fmt.Sprintf("Finished quiz with score %d/%d", s.score, len(e.bank)))
	fmt.Fprintf(&b, "Quiz complete! Your score: %d/%d\n%s", s.score, len(e.bank), remark(s.score, len(e.bank)))
	return b.String()
}

func (e *Engine) render(index int) string {
	q := e.bank[index]

	var b strings.Builder
	fmt.Fprintf(&b, "Question %d/%d:\n%s\n\n", index+1, len(e.bank), q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	b.WriteString("\nEnter the number of your answer:")
	return b.String()
}

func remark(score, total int) string {
	switch {
	case score*10 >= total*8:
		return "Excellent! You're a cybersecurity pro!"
	case score*10 >= total*5:
		return "Good effort! Keep learning to stay safe online."
	default:
		return "Keep practicing. Review the tips and try again to improve your score."
	}
}
