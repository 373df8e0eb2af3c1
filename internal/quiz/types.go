package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTier mirrors content.ErrUnknownTier for quiz lookups.
	ErrUnknownTier = errors.New("unknown difficulty tier")
	// ErrSessionFinished is returned when answering a terminal session.
	ErrSessionFinished = errors.New("quiz session already finished")
)

// Session lifecycle states.
const (
	StateInProgress = "in_progress"
	StateCompleted  = "completed"
	StateAborted    = "aborted"
)

// Question is one multiple-choice quiz item. Answer is the 1-based index of
// the correct option.
type Question struct {
	Prompt  string   `yaml:"prompt" validate:"required"`
	Options []string `yaml:"options" validate:"required,min=2,dive,required"`
	Answer  int      `yaml:"answer" validate:"required,min=1"`
}

// Turn is the outcome of feeding one line of input to a session.
type Turn struct {
	Exited        bool
	Correct       bool
	CorrectIndex  int
	CorrectOption string
	Done          bool
	Saved         bool
}

// Terminal reports whether this turn ended the session.
func (t Turn) Terminal() bool {
	return t.Exited || t.Done
}

// Result summarizes a session for reporting.
type Result struct {
	Score    int
	Total    int
	Answered int
	State    string
}

// String renders the score line. Total is always the full quiz length, even
// after an early exit.
func (r Result) String() string {
	return fmt.Sprintf("%d/%d", r.Score, r.Total)
}
