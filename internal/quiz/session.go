// Package quiz implements the server-side state machine for a quiz
// game run. Sessions serialize to JSON for persistence between
// requests; the question list and clock are reattached on load.
package quiz

import (
	"errors"
	"fmt"
	"time"

	"amavidya/internal/models"
)

// Phase is where the session is in its answer/reveal/advance cycle
type Phase string

const (
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	PhaseAnswerRevealed Phase = "answer_revealed"
	PhaseCompleted      Phase = "completed"
)

var (
	ErrAnswerLocked     = errors.New("answer already submitted for this question")
	ErrNoAnswer         = errors.New("no answer submitted yet")
	ErrSessionOver      = errors.New("session is already completed")
	ErrOptionOutOfRange = errors.New("selected option is out of range")
	ErrGameMismatch     = errors.New("session belongs to a different game")
	ErrNoQuestions      = errors.New("game has no questions")
)

// noSelection marks SelectedOption before the first answer
const noSelection = -1

// Session is one student's run through a game's questions. Exported
// fields are the persisted state; questions and the clock live on the
// game and are bound at load time.
type Session struct {
	GameID         string    `json:"gameId"`
	QuestionIndex  int       `json:"questionIndex"`
	Score          int       `json:"score"`
	Phase          Phase     `json:"phase"`
	SelectedOption int       `json:"selectedOption"`
	StartedAt      time.Time `json:"startedAt"`

	subject   models.Subject
	questions []models.Question
	now       func() time.Time
}

// New starts a session at the first question of the game
func New(game models.Game, now func() time.Time) (*Session, error) {
	if len(game.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	if now == nil {
		now = time.Now
	}
	return &Session{
		GameID:         game.ID,
		Phase:          PhaseAwaitingAnswer,
		SelectedOption: noSelection,
		StartedAt:      now(),
		subject:        game.Subject,
		questions:      game.Questions,
		now:            now,
	}, nil
}

// Bind reattaches the game's questions and a clock to a session loaded
// from storage.
func (s *Session) Bind(game models.Game, now func() time.Time) error {
	if game.ID != s.GameID {
		return fmt.Errorf("%w: session %q, game %q", ErrGameMismatch, s.GameID, game.ID)
	}
	if len(game.Questions) == 0 {
		return ErrNoQuestions
	}
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(game.Questions) {
		return fmt.Errorf("question index %d out of range for game %q", s.QuestionIndex, game.ID)
	}
	if now == nil {
		now = time.Now
	}
	s.subject = game.Subject
	s.questions = game.Questions
	s.now = now
	return nil
}

// Question returns the question the session is currently on
func (s *Session) Question() models.Question {
	return s.questions[s.QuestionIndex]
}

// TotalQuestions returns how many questions the game has
func (s *Session) TotalQuestions() int {
	return len(s.questions)
}

// Elapsed returns whole seconds since the session started
func (s *Session) Elapsed() int {
	return int(s.now().Sub(s.StartedAt) / time.Second)
}

// SelectAnswer submits an answer for the current question and reveals
// whether it was correct. A question accepts exactly one answer.
func (s *Session) SelectAnswer(option int) (bool, error) {
	switch s.Phase {
	case PhaseCompleted:
		return false, ErrSessionOver
	case PhaseAnswerRevealed:
		return false, ErrAnswerLocked
	}

	q := s.Question()
	if option < 0 || option >= len(q.Options) {
		return false, fmt.Errorf("%w: %d of %d options", ErrOptionOutOfRange, option, len(q.Options))
	}

	s.SelectedOption = option
	s.Phase = PhaseAnswerRevealed

	correct := option == q.Correct
	if correct {
		s.Score++
	}
	return correct, nil
}

// Advance moves past a revealed answer. On the last question it
// completes the session and returns the single completion event;
// otherwise it returns nil and the session awaits the next answer.
func (s *Session) Advance() (*models.GameCompleted, error) {
	switch s.Phase {
	case PhaseCompleted:
		return nil, ErrSessionOver
	case PhaseAwaitingAnswer:
		return nil, ErrNoAnswer
	}

	if s.QuestionIndex == len(s.questions)-1 {
		s.Phase = PhaseCompleted
		return &models.GameCompleted{
			GameID:           s.GameID,
			Subject:          s.subject,
			Score:            s.Score,
			TotalQuestions:   len(s.questions),
			TimeSpentSeconds: s.Elapsed(),
		}, nil
	}

	s.QuestionIndex++
	s.SelectedOption = noSelection
	s.Phase = PhaseAwaitingAnswer
	return nil, nil
}

// Restart rewinds the session to the first question with a fresh
// score and start time. Completing the run again earns rewards again.
func (s *Session) Restart() {
	s.QuestionIndex = 0
	s.Score = 0
	s.Phase = PhaseAwaitingAnswer
	s.SelectedOption = noSelection
	s.StartedAt = s.now()
}
