package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"amavidya/internal/database"
	"amavidya/internal/models"
	"amavidya/internal/scoring"
	"amavidya/internal/validation"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ProgressRepository handles database operations for student progress
// records. Subject stats are stored as a JSON column.
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Get loads a student's progress record. Returns ErrNotFound for
// students with no record yet. Loaded records are structurally
// validated and the level is recomputed from total XP.
func (r *ProgressRepository) Get(userID string) (*models.ProgressRecord, error) {
	query := `
		SELECT total_xp, current_level, videos_watched, games_played, time_spent, current_streak, subjects
		FROM student_progress WHERE user_id = ?
	`
	rec := &models.ProgressRecord{}
	var subjectsJSON string
	err := r.db.QueryRow(query, userID).Scan(
		&rec.TotalXP,
		&rec.CurrentLevel,
		&rec.VideosWatched,
		&rec.GamesPlayed,
		&rec.TimeSpent,
		&rec.CurrentStreak,
		&subjectsJSON,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: progress for user %s", ErrNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	if err := json.Unmarshal([]byte(subjectsJSON), &rec.Subjects); err != nil {
		return nil, fmt.Errorf("failed to decode subjects for user %s: %w", userID, err)
	}
	if err := validation.ValidateProgressRecord(rec); err != nil {
		return nil, fmt.Errorf("stored progress for user %s is invalid: %w", userID, err)
	}
	rec.CurrentLevel = scoring.Level(rec.TotalXP)

	return rec, nil
}

// Save upserts a student's progress record
func (r *ProgressRepository) Save(userID string, rec *models.ProgressRecord) error {
	if err := validation.ValidateProgressRecord(rec); err != nil {
		return fmt.Errorf("refusing to save invalid progress for user %s: %w", userID, err)
	}

	subjectsJSON, err := json.Marshal(rec.Subjects)
	if err != nil {
		return fmt.Errorf("failed to encode subjects: %w", err)
	}
	now := time.Now().UTC()

	update := `
		UPDATE student_progress
		SET total_xp = ?, current_level = ?, videos_watched = ?, games_played = ?,
		    time_spent = ?, current_streak = ?, subjects = ?, updated_at = ?
		WHERE user_id = ?
	`
	result, err := r.db.Exec(update,
		rec.TotalXP, rec.CurrentLevel, rec.VideosWatched, rec.GamesPlayed,
		rec.TimeSpent, rec.CurrentStreak, string(subjectsJSON), now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check progress update: %w", err)
	}
	if affected > 0 {
		return nil
	}

	insert := `
		INSERT INTO student_progress (user_id, total_xp, current_level, videos_watched, games_played, time_spent, current_streak, subjects, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(insert,
		userID, rec.TotalXP, rec.CurrentLevel, rec.VideosWatched, rec.GamesPlayed,
		rec.TimeSpent, rec.CurrentStreak, string(subjectsJSON), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert progress: %w", err)
	}
	return nil
}

// ListAll loads every stored progress record keyed by user ID
func (r *ProgressRepository) ListAll() (map[string]*models.ProgressRecord, error) {
	query := `
		SELECT user_id, total_xp, current_level, videos_watched, games_played, time_spent, current_streak, subjects
		FROM student_progress
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress records: %w", err)
	}
	defer rows.Close()

	records := make(map[string]*models.ProgressRecord)
	for rows.Next() {
		rec := &models.ProgressRecord{}
		var userID, subjectsJSON string
		if err := rows.Scan(
			&userID,
			&rec.TotalXP,
			&rec.CurrentLevel,
			&rec.VideosWatched,
			&rec.GamesPlayed,
			&rec.TimeSpent,
			&rec.CurrentStreak,
			&subjectsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		if err := json.Unmarshal([]byte(subjectsJSON), &rec.Subjects); err != nil {
			return nil, fmt.Errorf("failed to decode subjects for user %s: %w", userID, err)
		}
		rec.CurrentLevel = scoring.Level(rec.TotalXP)
		records[userID] = rec
	}
	return records, rows.Err()
}
