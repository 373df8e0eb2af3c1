package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/JamesKanneh/computer-literacy-app/internal/auth"
	"github.com/JamesKanneh/computer-literacy-app/internal/content"
)

// ExitToken aborts a running quiz when entered as an answer.
const ExitToken = "exit"

// ProgressRecorder persists a finished quiz score for a registered user.
type ProgressRecorder interface {
	Record(username string, tier content.Tier, score int) error
}

// Session is one quiz attempt. It advances one question per Answer call and
// ends Completed (all questions seen) or Aborted (exit token).
type Session struct {
	ID       uuid.UUID
	Tier     content.Tier
	Identity auth.Identity

	questions []Question
	cursor    int
	score     int
	state     string
}

// Current returns the question at the cursor, or false once the session is
// terminal.
func (s *Session) Current() (Question, bool) {
	if s.state != StateInProgress {
		return Question{}, false
	}
	return s.questions[s.cursor], true
}

// State returns the session lifecycle state.
func (s *Session) State() string {
	return s.state
}

// Result summarizes the attempt so far. Total stays the full quiz length
// regardless of how many questions were actually answered.
func (s *Session) Result() Result {
	return Result{
		Score:    s.score,
		Total:    len(s.questions),
		Answered: s.cursor,
		State:    s.state,
	}
}

// Engine drives quiz sessions and writes finished scores through the
// progress recorder.
type Engine struct {
	bank     *Bank
	recorder ProgressRecorder
	logger   zerolog.Logger
}

// NewEngine creates a quiz engine.
func NewEngine(bank *Bank, recorder ProgressRecorder, logger zerolog.Logger) *Engine {
	return &Engine{
		bank:     bank,
		recorder: recorder,
		logger:   logger,
	}
}

// Start begins a session for the given tier and identity.
func (e *Engine) Start(tier content.Tier, identity auth.Identity) (*Session, error) {
	questions, err := e.bank.Questions(tier)
	if err != nil {
		return nil, err
	}
	session := &Session{
		ID:        uuid.New(),
		Tier:      tier,
		Identity:  identity,
		questions: questions,
		state:     StateInProgress,
	}
	e.logger.Debug().
		Str("session_id", session.ID.String()).
		Str("tier", string(tier)).
		Str("user", identity.DisplayName()).
		Msg("quiz session started")
	return session, nil
}

// Answer feeds one line of raw input to the session.
//
// The exit token (case-insensitive) aborts immediately, keeping the score and
// answered count accumulated so far. Any other input is graded against the
// current question: only the exact 1-based index of the correct option counts,
// everything else (wrong number, out of range, not a number) is incorrect and
// the turn reveals the correct option. The cursor always advances.
//
// On the terminal transition a registered identity's score is written through
// the progress recorder; guest results are discarded.
func (e *Engine) Answer(s *Session, raw string) (Turn, error) {
	if s.state != StateInProgress {
		return Turn{}, ErrSessionFinished
	}

	input := strings.TrimSpace(raw)
	if strings.EqualFold(input, ExitToken) {
		s.state = StateAborted
		turn := Turn{Exited: true}
		return e.finalize(s, turn)
	}

	question := s.questions[s.cursor]
	turn := Turn{
		CorrectIndex:  question.Answer,
		CorrectOption: question.Options[question.Answer-1],
	}
	if n, err := strconv.Atoi(input); err == nil && n == question.Answer {
		turn.Correct = true
		s.score++
	}

	s.cursor++
	if s.cursor == len(s.questions) {
		s.state = StateCompleted
		turn.Done = true
		return e.finalize(s, turn)
	}
	return turn, nil
}

func (e *Engine) finalize(s *Session, turn Turn) (Turn, error) {
	result := s.Result()
	e.logger.Info().
		Str("session_id", s.ID.String()).
		Str("tier", string(s.Tier)).
		Str("state", s.state).
		Int("score", result.Score).
		Int("answered", result.Answered).
		Msg("quiz session finished")

	if !s.Identity.Registered() {
		return turn, nil
	}
	if err := e.recorder.Record(s.Identity.Username, s.Tier, result.Score); err != nil {
		return turn, fmt.Errorf("record progress: %w", err)
	}
	turn.Saved = true
	return turn, nil
}
