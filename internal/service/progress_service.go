package service

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"amavidya/internal/cache"
	"amavidya/internal/content"
	"amavidya/internal/models"
	"amavidya/internal/repository"
	"amavidya/internal/scoring"
)

// ProgressStore is the persistence surface the progress service needs
type ProgressStore interface {
	Get(userID string) (*models.ProgressRecord, error)
	Save(userID string, rec *models.ProgressRecord) error
}

// EventSink records the audit trail of completed activities
type EventSink interface {
	RecordVideoEvent(userID string, e models.VideoCompleted) error
	RecordGameEvent(userID string, e models.GameCompleted) error
}

// PersistenceError marks a failure in the database layer, as opposed
// to a domain rule rejection.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Result is what a completed activity returns to the handler
type Result struct {
	Record       *models.ProgressRecord
	Achievements []scoring.Achievement
	XPAwarded    int
	Synced       bool
}

// ProgressService applies learning events to student progress.
// Mutations are optimistic: when the database is unreachable the
// updated record is kept in memory and the snapshot file, reported
// with Synced=false, and retried in the background.
type ProgressService struct {
	store    ProgressStore
	events   EventSink
	snapshot *cache.Store
	catalog  *content.Catalog

	mu      sync.Mutex
	pending map[string]*models.ProgressRecord
}

// NewProgressService creates a new progress service
func NewProgressService(store ProgressStore, events EventSink, snapshot *cache.Store, catalog *content.Catalog) *ProgressService {
	return &ProgressService{
		store:    store,
		events:   events,
		snapshot: snapshot,
		catalog:  catalog,
		pending:  make(map[string]*models.ProgressRecord),
	}
}

// GetProgress returns the student's current record. Unsynced pending
// state wins over the database; when the database is down the
// snapshot serves reads. A student with no history gets a fresh zero
// record.
func (s *ProgressService) GetProgress(userID string) (*models.ProgressRecord, error) {
	s.mu.Lock()
	if rec, ok := s.pending[userID]; ok {
		defer s.mu.Unlock()
		return rec.Clone(), nil
	}
	s.mu.Unlock()

	rec, err := s.store.Get(userID)
	if err == nil {
		return rec, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return models.NewProgressRecord(), nil
	}

	log.Printf("Progress read for %s falling back to snapshot: %v", userID, err)
	cached := &models.ProgressRecord{}
	if cacheErr := s.snapshot.Get(cache.ProgressKey(userID), cached); cacheErr != nil {
		if errors.Is(cacheErr, cache.ErrMiss) {
			return models.NewProgressRecord(), nil
		}
		return nil, &PersistenceError{Err: err}
	}
	return cached, nil
}

// CompleteVideo applies a finished video to the student's record
func (s *ProgressService) CompleteVideo(userID, videoID string) (*Result, error) {
	video, err := s.catalog.Video(videoID)
	if err != nil {
		return nil, err
	}

	event := models.VideoCompleted{VideoID: video.ID, Subject: video.Subject}
	return s.apply(userID, event, scoring.VideoXP)
}

// CompleteGame applies a finished quiz game to the student's record
func (s *ProgressService) CompleteGame(userID string, event models.GameCompleted) (*Result, error) {
	if _, err := s.catalog.Game(event.GameID); err != nil {
		return nil, err
	}
	return s.apply(userID, event, scoring.GameXP)
}

func (s *ProgressService) apply(userID string, event models.LearningEvent, xp int) (*Result, error) {
	rec, err := s.GetProgress(userID)
	if err != nil {
		return nil, err
	}

	next, err := scoring.ApplyEvent(rec, event)
	if err != nil {
		return nil, err
	}

	// Keep the snapshot current regardless of database health
	if err := s.snapshot.Put(cache.ProgressKey(userID), next); err != nil {
		log.Printf("Failed to update progress snapshot for %s: %v", userID, err)
	}

	synced := true
	if err := s.store.Save(userID, next); err != nil {
		log.Printf("Progress save for %s failed, queued for retry: %v", userID, err)
		s.mu.Lock()
		s.pending[userID] = next
		s.mu.Unlock()
		synced = false
	} else {
		s.mu.Lock()
		delete(s.pending, userID)
		s.mu.Unlock()
		s.recordEvent(userID, event)
	}

	return &Result{
		Record:       next,
		Achievements: scoring.Achievements(next),
		XPAwarded:    xp,
		Synced:       synced,
	}, nil
}

func (s *ProgressService) recordEvent(userID string, event models.LearningEvent) {
	var err error
	switch e := event.(type) {
	case models.VideoCompleted:
		err = s.events.RecordVideoEvent(userID, e)
	case models.GameCompleted:
		err = s.events.RecordGameEvent(userID, e)
	}
	if err != nil {
		log.Printf("Failed to record event for %s: %v", userID, err)
	}
}

// FlushPending retries saving every record that failed to persist.
// Called periodically from a background goroutine.
func (s *ProgressService) FlushPending() {
	s.mu.Lock()
	queued := make(map[string]*models.ProgressRecord, len(s.pending))
	for id, rec := range s.pending {
		queued[id] = rec
	}
	s.mu.Unlock()

	for id, rec := range queued {
		if err := s.store.Save(id, rec); err != nil {
			log.Printf("Retry of progress save for %s failed: %v", id, err)
			continue
		}
		s.mu.Lock()
		// Only clear if nothing newer was queued meanwhile
		if s.pending[id] == rec {
			delete(s.pending, id)
		}
		s.mu.Unlock()
		log.Printf("Recovered pending progress for %s", id)
	}
}

// PendingCount reports how many records await a successful save
func (s *ProgressService) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
