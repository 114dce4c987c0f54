package service

import (
	"errors"
	"fmt"
	"time"

	"amavidya/internal/content"
	"amavidya/internal/models"
	"amavidya/internal/quiz"
)

// ErrNoActiveSession is returned when a student acts on a quiz
// session they don't have
var ErrNoActiveSession = errors.New("no active quiz session")

// SessionStore persists each student's active quiz session
type SessionStore interface {
	SaveSession(userID string, session *quiz.Session) error
	GetSession(userID string) (*quiz.Session, error)
	DeleteSession(userID string) error
}

// QuizService runs quiz games. Each student has at most one active
// session, persisted between requests.
type QuizService struct {
	sessions SessionStore
	catalog  *content.Catalog
	progress *ProgressService
	now      func() time.Time
}

// NewQuizService creates a new quiz service
func NewQuizService(sessions SessionStore, catalog *content.Catalog, progress *ProgressService) *QuizService {
	return &QuizService{
		sessions: sessions,
		catalog:  catalog,
		progress: progress,
		now:      time.Now,
	}
}

// QuizView is the session state exposed to the student. The correct
// answer stays hidden until the question is answered.
type QuizView struct {
	GameID         string   `json:"gameId"`
	GameTitle      string   `json:"gameTitle"`
	QuestionIndex  int      `json:"questionIndex"`
	TotalQuestions int      `json:"totalQuestions"`
	Score          int      `json:"score"`
	Phase          string   `json:"phase"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	SelectedOption *int     `json:"selectedOption,omitempty"`
	CorrectOption  *int     `json:"correctOption,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
}

// Start begins a new session for the game, replacing any existing one
func (s *QuizService) Start(userID, gameID string) (*QuizView, error) {
	game, err := s.catalog.Game(gameID)
	if err != nil {
		return nil, err
	}

	session, err := quiz.New(game, s.now)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveSession(userID, session); err != nil {
		return nil, err
	}
	return s.view(game, session), nil
}

// Current returns the student's active session state
func (s *QuizService) Current(userID string) (*QuizView, error) {
	game, session, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return s.view(game, session), nil
}

// Answer submits an answer for the current question and reveals the
// result.
func (s *QuizService) Answer(userID string, option int) (*QuizView, error) {
	game, session, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	if _, err := session.SelectAnswer(option); err != nil {
		return nil, err
	}
	if err := s.sessions.SaveSession(userID, session); err != nil {
		return nil, err
	}
	return s.view(game, session), nil
}

// AdvanceResult is returned when the student moves past a revealed
// answer. Progress is set only when the advance completed the game.
type AdvanceResult struct {
	View     *QuizView `json:"session"`
	Progress *Result   `json:"progress,omitempty"`
}

// Advance moves to the next question. Finishing the last question
// completes the game, awards progress exactly once, and ends the
// session.
func (s *QuizService) Advance(userID string) (*AdvanceResult, error) {
	game, session, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	event, err := session.Advance()
	if err != nil {
		return nil, err
	}

	if event == nil {
		if err := s.sessions.SaveSession(userID, session); err != nil {
			return nil, err
		}
		return &AdvanceResult{View: s.view(game, session)}, nil
	}

	// Game finished: the session is spent whether or not the award
	// persists, so remove it first
	if err := s.sessions.DeleteSession(userID); err != nil {
		return nil, err
	}

	result, err := s.progress.CompleteGame(userID, *event)
	if err != nil {
		return nil, fmt.Errorf("game finished but progress update failed: %w", err)
	}

	return &AdvanceResult{View: s.view(game, session), Progress: result}, nil
}

// Restart rewinds the active session to its first question.
// Completing the rerun earns rewards again.
func (s *QuizService) Restart(userID string) (*QuizView, error) {
	game, session, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	session.Restart()
	if err := s.sessions.SaveSession(userID, session); err != nil {
		return nil, err
	}
	return s.view(game, session), nil
}

// Exit abandons the active session without awarding anything
func (s *QuizService) Exit(userID string) error {
	_, _, err := s.load(userID)
	if err != nil {
		return err
	}
	return s.sessions.DeleteSession(userID)
}

func (s *QuizService) load(userID string) (models.Game, *quiz.Session, error) {
	session, err := s.sessions.GetSession(userID)
	if err != nil {
		return models.Game{}, nil, err
	}
	if session == nil {
		return models.Game{}, nil, ErrNoActiveSession
	}

	game, err := s.catalog.Game(session.GameID)
	if err != nil {
		return models.Game{}, nil, fmt.Errorf("stored session references unknown game %q: %w", session.GameID, err)
	}
	if err := session.Bind(game, s.now); err != nil {
		return models.Game{}, nil, err
	}
	return game, session, nil
}

func (s *QuizService) view(game models.Game, session *quiz.Session) *QuizView {
	q := session.Question()
	view := &QuizView{
		GameID:         game.ID,
		GameTitle:      game.Title,
		QuestionIndex:  session.QuestionIndex,
		TotalQuestions: session.TotalQuestions(),
		Score:          session.Score,
		Phase:          string(session.Phase),
		Question:       q.Text,
		Options:        q.Options,
	}

	// Reveal the answer only after the student has committed to one
	if session.Phase != quiz.PhaseAwaitingAnswer {
		selected := session.SelectedOption
		correct := q.Correct
		view.SelectedOption = &selected
		view.CorrectOption = &correct
		view.Explanation = q.Explanation
	}
	return view
}
