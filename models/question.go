package models

import (
	"errors"
	"fmt"
	"strings"
)

// QuizQuestion is one multiple-choice entry of the quiz bank
type QuizQuestion struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

var (
	ErrEmptyPrompt    = errors.New("question prompt is empty")
	ErrTooFewOptions  = errors.New("question needs at least two options")
	ErrCorrectOutside = errors.New("correct answer index is outside the options")
)

// Validate checks that the question can be asked and scored
func (q QuizQuestion) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return ErrEmptyPrompt
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%q: %w", q.Prompt, ErrTooFewOptions)
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("%q: %w", q.Prompt, ErrCorrectOutside)
	}
	return nil
}
