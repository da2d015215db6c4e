package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/models"
)

type lines []string

func (l *lines) Record(activity string) { *l = append(*l, activity) }

func newTestEngine(t *testing.T) (*Engine, *lines) {
	t.Helper()
	log := &lines{}
	e, err := NewEngine(DefaultBank(), log)
	require.NoError(t, err)
	return e, log
}

func TestDefaultBankIsValid(t *testing.T) {
	bank := DefaultBank()
	require.Len(t, bank, 10)
	for i, q := range bank {
		assert.NoError(t, q.Validate(), "question %d", i+1)
	}
	// Answer keys of the built-in bank.
	want := []int{2, 1, 2, 1, 1, 1, 1, 2, 2, 1}
	for i, q := range bank {
		assert.Equal(t, want[i], q.Correct, "question %d", i+1)
	}
}

func TestNewEngineRejectsBadBank(t *testing.T) {
	_, err := NewEngine(nil, &lines{})
	assert.ErrorIs(t, err, ErrEmptyBank)

	_, err = NewEngine([]models.QuizQuestion{{Prompt: "p", Options: []string{"only"}}}, &lines{})
	assert.ErrorIs(t, err, models.ErrTooFewOptions)
}

func TestStartRendersFirstQuestion(t *testing.T) {
	e, log := newTestEngine(t)
	assert.False(t, e.Active())

	out := e.Start()
	assert.True(t, e.Active())
	assert.Equal(t, "Question 1/10:\n"+
		"What should you do if you receive an email asking for your password?\n\n"+
		"1. Reply with your password\n"+
		"2. Delete the email\n"+
		"3. Report the email as phishing\n"+
		"4. Ignore it\n\n"+
		"Enter the number of your answer:", out)
	assert.Equal(t, []string{"Started cybersecurity quiz"}, []string(*log))
	assert.Equal(t, out, e.Current())
}

func TestSubmitBeforeStart(t *testing.T) {
	e, log := newTestEngine(t)
	assert.Equal(t, NotStarted, e.SubmitAnswer(1))
	assert.False(t, e.Active())
	assert.Empty(t, *log)
	assert.Equal(t, "No quiz in progress.", e.Current())
}

func TestCorrectAnswerAdvances(t *testing.T) {
	e, log := newTestEngine(t)
	e.Start()

	out := e.SubmitAnswer(3)
	assert.True(t, strings.HasPrefix(out, "Correct! You should never share your password via email."))
	assert.Contains(t, out, "Question 2/10:")
	score, answered := e.Score()
	assert.Equal(t, 1, score)
	assert.Equal(t, 1, answered)
	assert.Equal(t, "Correct answer for question 1", (*log)[1])
}

func TestIncorrectAndOutOfRangeAnswers(t *testing.T) {
	for _, n := range []int{1, 0, -4, 99} {
		e, log := newTestEngine(t)
		e.Start()

		out := e.SubmitAnswer(n)
		assert.True(t, strings.HasPrefix(out, "Incorrect. "), "answer %d", n)
		score, answered := e.Score()
		assert.Equal(t, 0, score)
		assert.Equal(t, 1, answered)
		assert.Equal(t, "Incorrect answer for question 1", (*log)[1])
	}
}

func TestFullSessionAllCorrect(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Start()

	var out string
	for _, q := range DefaultBank() {
		require.True(t, e.Active())
		out = e.SubmitAnswer(q.Correct + 1)
	}

	assert.Contains(t, out, "Quiz complete! Your score: 10/10")
	assert.Contains(t, out, "Excellent!")
	assert.False(t, e.Active())
	assert.True(t, e.Completed())

	score, answered := e.Score()
	assert.Equal(t, 10, score)
	assert.Equal(t, 10, answered)

	assert.Equal(t, AlreadyCompleted, e.SubmitAnswer(1))
	score, _ = e.Score()
	assert.Equal(t, 10, score)
}

func TestFullSessionAllWrong(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Start()

	var out string
	for range DefaultBank() {
		out = e.SubmitAnswer(99)
	}
	assert.Contains(t, out, "Quiz complete! Your score: 0/10")
	assert.Contains(t, out, "Keep practicing.")
	assert.True(t, e.Completed())
	assert.Equal(t, AlreadyCompleted, e.SubmitAnswer(2))
}

func TestRestartResets(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Start()
	e.SubmitAnswer(3)
	e.SubmitAnswer(2)

	out := e.Start()
	assert.True(t, strings.HasPrefix(out, "Question 1/10:"))
	score, answered := e.Score()
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, answered)

	q, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, DefaultBank()[0].Prompt, q.Prompt)
}

func TestRemark(t *testing.T) {
	assert.Equal(t, "Excellent! You're a cybersecurity pro!", remark(8, 10))
	assert.Equal(t, "Good effort! Keep learning to stay safe online.", remark(5, 10))
	assert.Equal(t, "Good effort! Keep learning to stay safe online.", remark(7, 10))
	assert.Contains(t, remark(4, 10), "Keep practicing")
}
