package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"amavidya/internal/models"
	"amavidya/internal/repository"
)

// BackupData is the portable export format
type BackupData struct {
	Version     int                               `json:"version"`
	ExportedAt  time.Time                         `json:"exportedAt"`
	Users       []models.User                     `json:"users"`
	Progress    map[string]*models.ProgressRecord `json:"progress"`
	VideoEvents []models.VideoEvent               `json:"videoEvents"`
	GameEvents  []models.GameEvent                `json:"gameEvents"`
}

// BackupService exports and imports the full data set as JSON
type BackupService struct {
	users    *repository.UserRepository
	progress *repository.ProgressRepository
	events   *repository.EventRepository
}

// NewBackupService creates a new backup service
func NewBackupService(users *repository.UserRepository, progress *repository.ProgressRepository, events *repository.EventRepository) *BackupService {
	return &BackupService{
		users:    users,
		progress: progress,
		events:   events,
	}
}

// Export writes the full data set to a JSON file. Password hashes are
// included so restored accounts keep working.
func (s *BackupService) Export(path string) error {
	users, err := s.users.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	records, err := s.progress.ListAll()
	if err != nil {
		return fmt.Errorf("failed to export progress: %w", err)
	}
	videoEvents, err := s.events.ListAllVideoEvents()
	if err != nil {
		return fmt.Errorf("failed to export video events: %w", err)
	}
	gameEvents, err := s.events.ListAllGameEvents()
	if err != nil {
		return fmt.Errorf("failed to export game events: %w", err)
	}

	backup := BackupData{
		Version:     1,
		ExportedAt:  time.Now().UTC(),
		Users:       users,
		Progress:    records,
		VideoEvents: videoEvents,
		GameEvents:  gameEvents,
	}

	data, err := json.MarshalIndent(withHashes(backup), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	log.Printf("Exported %d users, %d progress records, %d video events, %d game events to %s",
		len(users), len(records), len(videoEvents), len(gameEvents), path)
	return nil
}

// Import loads a backup file into the database. Users that already
// exist (by username) are skipped.
func (s *BackupService) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var backup exportedBackup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version != 1 {
		return fmt.Errorf("unsupported backup version %d", backup.Version)
	}

	imported, skipped := 0, 0
	for _, eu := range backup.Users {
		existing, err := s.users.GetUserByUsername(eu.Username)
		if err != nil {
			return fmt.Errorf("failed to check user %s: %w", eu.Username, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		user := eu.User
		user.PasswordHash = eu.PasswordHash
		if err := s.users.CreateUser(&user); err != nil {
			return fmt.Errorf("failed to import user %s: %w", user.Username, err)
		}
		imported++

		if rec, ok := backup.Progress[user.ID]; ok {
			if err := s.progress.Save(user.ID, rec); err != nil {
				return fmt.Errorf("failed to import progress for %s: %w", user.Username, err)
			}
		}
		for _, ev := range backup.VideoEvents {
			if ev.UserID != user.ID {
				continue
			}
			if err := s.events.RestoreVideoEvent(ev); err != nil {
				return fmt.Errorf("failed to import video event for %s: %w", user.Username, err)
			}
		}
		for _, ev := range backup.GameEvents {
			if ev.UserID != user.ID {
				continue
			}
			if err := s.events.RestoreGameEvent(ev); err != nil {
				return fmt.Errorf("failed to import game event for %s: %w", user.Username, err)
			}
		}
	}

	log.Printf("Imported %d users, skipped %d existing", imported, skipped)
	return nil
}

// exportedUser carries the password hash that models.User hides from
// JSON.
type exportedUser struct {
	models.User
	PasswordHash string `json:"passwordHash"`
}

type exportedBackup struct {
	Version     int                               `json:"version"`
	ExportedAt  time.Time                         `json:"exportedAt"`
	Users       []exportedUser                    `json:"users"`
	Progress    map[string]*models.ProgressRecord `json:"progress"`
	VideoEvents []models.VideoEvent               `json:"videoEvents"`
	GameEvents  []models.GameEvent                `json:"gameEvents"`
}

func withHashes(b BackupData) exportedBackup {
	users := make([]exportedUser, len(b.Users))
	for i, u := range b.Users {
		users[i] = exportedUser{User: u, PasswordHash: u.PasswordHash}
	}
	return exportedBackup{
		Version:     b.Version,
		ExportedAt:  b.ExportedAt,
		Users:       users,
		Progress:    b.Progress,
		VideoEvents: b.VideoEvents,
		GameEvents:  b.GameEvents,
	}
}
