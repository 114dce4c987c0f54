package repository

import (
	"database/sql"
	"fmt"
	"time"

	"amavidya/internal/database"
	"amavidya/internal/models"
)

// EventRepository records the audit trail of completed activities
type EventRepository struct {
	db database.DBTX
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.DBTX) *EventRepository {
	return &EventRepository{db: db}
}

// RecordVideoEvent logs a completed video
func (r *EventRepository) RecordVideoEvent(userID string, e models.VideoCompleted) error {
	query := "INSERT INTO video_events (user_id, video_id, subject, created_at) VALUES (?, ?, ?, ?)"
	_, err := r.db.Exec(query, userID, e.VideoID, string(e.Subject), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record video event: %w", err)
	}
	return nil
}

// RecordGameEvent logs a completed game with its score
func (r *EventRepository) RecordGameEvent(userID string, e models.GameCompleted) error {
	query := `
		INSERT INTO game_events (user_id, game_id, subject, score, total_questions, time_spent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, userID, e.GameID, string(e.Subject), e.Score, e.TotalQuestions, e.TimeSpentSeconds, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record game event: %w", err)
	}
	return nil
}

// ListVideoEvents returns a student's video history, newest first
func (r *EventRepository) ListVideoEvents(userID string) ([]models.VideoEvent, error) {
	query := `
		SELECT id, user_id, video_id, subject, created_at
		FROM video_events WHERE user_id = ? ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query video events: %w", err)
	}
	defer rows.Close()

	var events []models.VideoEvent
	for rows.Next() {
		var ev models.VideoEvent
		var subject string
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.VideoID, &subject, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video event: %w", err)
		}
		ev.Subject = models.Subject(subject)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// ListGameEvents returns a student's game history, newest first
func (r *EventRepository) ListGameEvents(userID string) ([]models.GameEvent, error) {
	query := `
		SELECT id, user_id, game_id, subject, score, total_questions, time_spent, created_at
		FROM game_events WHERE user_id = ? ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query game events: %w", err)
	}
	defer rows.Close()

	return scanGameEvents(rows)
}

// ListAllVideoEvents returns every video event, oldest first
func (r *EventRepository) ListAllVideoEvents() ([]models.VideoEvent, error) {
	query := "SELECT id, user_id, video_id, subject, created_at FROM video_events ORDER BY created_at ASC"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query video events: %w", err)
	}
	defer rows.Close()

	var events []models.VideoEvent
	for rows.Next() {
		var ev models.VideoEvent
		var subject string
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.VideoID, &subject, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video event: %w", err)
		}
		ev.Subject = models.Subject(subject)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// ListAllGameEvents returns every game event, oldest first
func (r *EventRepository) ListAllGameEvents() ([]models.GameEvent, error) {
	query := `
		SELECT id, user_id, game_id, subject, score, total_questions, time_spent, created_at
		FROM game_events ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query game events: %w", err)
	}
	defer rows.Close()

	return scanGameEvents(rows)
}

// RestoreVideoEvent re-inserts an exported video event with its
// original timestamp
func (r *EventRepository) RestoreVideoEvent(ev models.VideoEvent) error {
	query := "INSERT INTO video_events (user_id, video_id, subject, created_at) VALUES (?, ?, ?, ?)"
	_, err := r.db.Exec(query, ev.UserID, ev.VideoID, string(ev.Subject), ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore video event: %w", err)
	}
	return nil
}

// RestoreGameEvent re-inserts an exported game event with its
// original timestamp
func (r *EventRepository) RestoreGameEvent(ev models.GameEvent) error {
	query := `
		INSERT INTO game_events (user_id, game_id, subject, score, total_questions, time_spent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, ev.UserID, ev.GameID, string(ev.Subject), ev.Score, ev.TotalQuestions, ev.TimeSpent, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore game event: %w", err)
	}
	return nil
}

func scanGameEvents(rows *sql.Rows) ([]models.GameEvent, error) {
	var events []models.GameEvent
	for rows.Next() {
		var ev models.GameEvent
		var subject string
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.GameID, &subject, &ev.Score, &ev.TotalQuestions, &ev.TimeSpent, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game event: %w", err)
		}
		ev.Subject = models.Subject(subject)
		events = append(events, ev)
	}
	return events, rows.Err()
}
