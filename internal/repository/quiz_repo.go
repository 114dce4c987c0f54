package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"amavidya/internal/database"
	"amavidya/internal/quiz"
)

// QuizRepository persists each student's active quiz session so a
// game survives page reloads and reconnects. One session per student.
type QuizRepository struct {
	db database.DBTX
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db database.DBTX) *QuizRepository {
	return &QuizRepository{db: db}
}

// SaveSession upserts the student's active session
func (r *QuizRepository) SaveSession(userID string, session *quiz.Session) error {
	state, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode quiz session: %w", err)
	}
	now := time.Now().UTC()

	update := "UPDATE quiz_state SET game_id = ?, state = ?, updated_at = ? WHERE user_id = ?"
	result, err := r.db.Exec(update, session.GameID, string(state), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update quiz session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check quiz session update: %w", err)
	}
	if affected > 0 {
		return nil
	}

	insert := "INSERT INTO quiz_state (user_id, game_id, state, updated_at) VALUES (?, ?, ?, ?)"
	if _, err := r.db.Exec(insert, userID, session.GameID, string(state), now); err != nil {
		return fmt.Errorf("failed to insert quiz session: %w", err)
	}
	return nil
}

// GetSession loads the student's active session, or nil when there is
// none. The returned session must be bound to its game before use.
func (r *QuizRepository) GetSession(userID string) (*quiz.Session, error) {
	var state string
	err := r.db.QueryRow("SELECT state FROM quiz_state WHERE user_id = ?", userID).Scan(&state)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz session: %w", err)
	}

	session := &quiz.Session{}
	if err := json.Unmarshal([]byte(state), session); err != nil {
		return nil, fmt.Errorf("failed to decode quiz session: %w", err)
	}
	return session, nil
}

// DeleteSession removes the student's active session
func (r *QuizRepository) DeleteSession(userID string) error {
	if _, err := r.db.Exec("DELETE FROM quiz_state WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to delete quiz session: %w", err)
	}
	return nil
}
