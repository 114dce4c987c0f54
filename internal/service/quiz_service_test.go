package service

import (
	"encoding/json"
	"errors"
	"testing"

	"amavidya/internal/quiz"
)

// memorySessions round-trips sessions through JSON like the database
// does, so bind-on-load paths get exercised.
type memorySessions struct {
	stored map[string][]byte
}

func newMemorySessions() *memorySessions {
	return &memorySessions{stored: make(map[string][]byte)}
}

func (m *memorySessions) SaveSession(userID string, session *quiz.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	m.stored[userID] = data
	return nil
}

func (m *memorySessions) GetSession(userID string) (*quiz.Session, error) {
	data, ok := m.stored[userID]
	if !ok {
		return nil, nil
	}
	session := &quiz.Session{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (m *memorySessions) DeleteSession(userID string) error {
	delete(m.stored, userID)
	return nil
}

func newTestQuizService(t *testing.T) (*QuizService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	progress := newTestProgressService(t, store, &fakeEvents{})
	return NewQuizService(newMemorySessions(), progress.catalog, progress), store
}

func TestQuizStartHidesAnswer(t *testing.T) {
	svc, _ := newTestQuizService(t)

	view, err := svc.Start("u1", "math-quiz")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if view.Phase != string(quiz.PhaseAwaitingAnswer) {
		t.Errorf("phase = %s", view.Phase)
	}
	if view.CorrectOption != nil || view.Explanation != "" {
		t.Error("correct answer must stay hidden before answering")
	}
	if view.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", view.TotalQuestions)
	}
}

func TestQuizAnswerRevealsResult(t *testing.T) {
	svc, _ := newTestQuizService(t)
	svc.Start("u1", "math-quiz")

	view, err := svc.Answer("u1", 1) // 15+27=42, option index 1
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if view.Phase != string(quiz.PhaseAnswerRevealed) {
		t.Errorf("phase = %s", view.Phase)
	}
	if view.CorrectOption == nil || *view.CorrectOption != 1 {
		t.Errorf("CorrectOption = %v, want 1", view.CorrectOption)
	}
	if view.SelectedOption == nil || *view.SelectedOption != 1 {
		t.Errorf("SelectedOption = %v, want 1", view.SelectedOption)
	}
	if view.Explanation == "" {
		t.Error("explanation should be revealed with the answer")
	}
	if view.Score != 1 {
		t.Errorf("Score = %d, want 1", view.Score)
	}
}

func TestQuizCompletionAwardsProgressOnce(t *testing.T) {
	svc, store := newTestQuizService(t)
	svc.Start("u1", "pattern-game") // 4 questions

	answers := []int{1, 1, 0, 1} // all correct
	var final *AdvanceResult
	for i, a := range answers {
		if _, err := svc.Answer("u1", a); err != nil {
			t.Fatalf("Answer %d: %v", i, err)
		}
		result, err := svc.Advance("u1")
		if err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
		final = result
	}

	if final.Progress == nil {
		t.Fatal("final advance should return awarded progress")
	}
	if final.Progress.XPAwarded != 20 {
		t.Errorf("XPAwarded = %d, want 20", final.Progress.XPAwarded)
	}
	if final.Progress.Record.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", final.Progress.Record.GamesPlayed)
	}

	saved := store.records["u1"]
	if saved == nil || saved.TotalXP != 20 {
		t.Errorf("persisted record = %+v", saved)
	}

	// The session is gone; nothing more can be awarded from it
	if _, err := svc.Advance("u1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Advance after completion: err = %v, want ErrNoActiveSession", err)
	}
}

func TestQuizSessionSurvivesReload(t *testing.T) {
	svc, _ := newTestQuizService(t)
	svc.Start("u1", "math-quiz")
	svc.Answer("u1", 1)
	svc.Advance("u1")

	// Current goes through storage and bind
	view, err := svc.Current("u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if view.QuestionIndex != 1 {
		t.Errorf("QuestionIndex = %d, want 1", view.QuestionIndex)
	}
	if view.Score != 1 {
		t.Errorf("Score = %d, want 1", view.Score)
	}
}

func TestQuizRestartThenCompleteAwardsAgain(t *testing.T) {
	svc, store := newTestQuizService(t)

	run := func() {
		svc.Start("u1", "pattern-game")
		for _, a := range []int{1, 1, 0, 1} {
			if _, err := svc.Answer("u1", a); err != nil {
				t.Fatalf("Answer: %v", err)
			}
			if _, err := svc.Advance("u1"); err != nil {
				t.Fatalf("Advance: %v", err)
			}
		}
	}

	run()
	run()

	saved := store.records["u1"]
	if saved == nil || saved.GamesPlayed != 2 || saved.TotalXP != 40 {
		t.Errorf("record after two runs = %+v", saved)
	}
}

func TestQuizExitAwardsNothing(t *testing.T) {
	svc, store := newTestQuizService(t)
	svc.Start("u1", "math-quiz")
	svc.Answer("u1", 1)

	if err := svc.Exit("u1"); err != nil {
		t.Fatalf("Exit: %v", err)
	}
	if _, ok := store.records["u1"]; ok {
		t.Error("exit must not award progress")
	}
	if _, err := svc.Current("u1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Current after exit: err = %v, want ErrNoActiveSession", err)
	}
}

func TestQuizActionsWithoutSession(t *testing.T) {
	svc, _ := newTestQuizService(t)

	if _, err := svc.Current("u1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Current: err = %v", err)
	}
	if _, err := svc.Answer("u1", 0); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Answer: err = %v", err)
	}
	if _, err := svc.Restart("u1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Restart: err = %v", err)
	}
}
