package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"amavidya/internal/cache"
	"amavidya/internal/content"
	"amavidya/internal/models"
	"amavidya/internal/repository"
)

// fakeStore is an in-memory ProgressStore that can be told to fail
type fakeStore struct {
	records map[string]*models.ProgressRecord
	failing bool
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*models.ProgressRecord)}
}

func (f *fakeStore) Get(userID string) (*models.ProgressRecord, error) {
	if f.failing {
		return nil, errors.New("database unavailable")
	}
	rec, ok := f.records[userID]
	if !ok {
		return nil, fmt.Errorf("%w: progress for user %s", repository.ErrNotFound, userID)
	}
	return rec.Clone(), nil
}

func (f *fakeStore) Save(userID string, rec *models.ProgressRecord) error {
	f.saves++
	if f.failing {
		return errors.New("database unavailable")
	}
	f.records[userID] = rec.Clone()
	return nil
}

type fakeEvents struct {
	videos int
	games  int
}

func (f *fakeEvents) RecordVideoEvent(string, models.VideoCompleted) error {
	f.videos++
	return nil
}

func (f *fakeEvents) RecordGameEvent(string, models.GameCompleted) error {
	f.games++
	return nil
}

func newTestProgressService(t *testing.T, store *fakeStore, events *fakeEvents) *ProgressService {
	t.Helper()
	snapshot, err := cache.Open(filepath.Join(t.TempDir(), "snapshot.json"))
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	return NewProgressService(store, events, snapshot, content.NewCatalog())
}

func TestGetProgressFirstTime(t *testing.T) {
	svc := newTestProgressService(t, newFakeStore(), &fakeEvents{})

	rec, err := svc.GetProgress("new-student")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if rec.TotalXP != 0 || rec.CurrentLevel != 1 {
		t.Errorf("fresh record = %+v", rec)
	}
	if len(rec.Subjects) != 4 {
		t.Errorf("fresh record has %d subjects", len(rec.Subjects))
	}
}

func TestCompleteVideo(t *testing.T) {
	store := newFakeStore()
	events := &fakeEvents{}
	svc := newTestProgressService(t, store, events)

	result, err := svc.CompleteVideo("u1", "photosynthesis")
	if err != nil {
		t.Fatalf("CompleteVideo: %v", err)
	}

	if !result.Synced {
		t.Error("expected Synced=true with a healthy store")
	}
	if result.XPAwarded != 10 {
		t.Errorf("XPAwarded = %d, want 10", result.XPAwarded)
	}
	if result.Record.VideosWatched != 1 || result.Record.TotalXP != 10 {
		t.Errorf("record = %+v", result.Record)
	}
	if events.videos != 1 {
		t.Errorf("video events recorded = %d, want 1", events.videos)
	}

	// Achievement unlocked by the first video
	earned := false
	for _, a := range result.Achievements {
		if a.ID == "video-watcher" && a.Earned {
			earned = true
		}
	}
	if !earned {
		t.Error("video-watcher should be earned after first video")
	}
}

func TestCompleteVideoUnknownID(t *testing.T) {
	svc := newTestProgressService(t, newFakeStore(), &fakeEvents{})

	if _, err := svc.CompleteVideo("u1", "no-such-video"); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("err = %v, want content.ErrNotFound", err)
	}
}

func TestCompleteGame(t *testing.T) {
	store := newFakeStore()
	events := &fakeEvents{}
	svc := newTestProgressService(t, store, events)

	result, err := svc.CompleteGame("u1", models.GameCompleted{
		GameID:           "math-quiz",
		Subject:          models.SubjectMathematics,
		Score:            4,
		TotalQuestions:   5,
		TimeSpentSeconds: 120,
	})
	if err != nil {
		t.Fatalf("CompleteGame: %v", err)
	}

	if result.XPAwarded != 20 {
		t.Errorf("XPAwarded = %d, want 20", result.XPAwarded)
	}
	if result.Record.GamesPlayed != 1 || result.Record.TimeSpent != 120 {
		t.Errorf("record = %+v", result.Record)
	}
	if events.games != 1 {
		t.Errorf("game events recorded = %d, want 1", events.games)
	}
}

func TestOptimisticMutationWhenStoreDown(t *testing.T) {
	store := newFakeStore()
	svc := newTestProgressService(t, store, &fakeEvents{})

	// Seed a record while healthy
	if _, err := svc.CompleteVideo("u1", "photosynthesis"); err != nil {
		t.Fatalf("seed CompleteVideo: %v", err)
	}

	store.failing = true

	result, err := svc.CompleteVideo("u1", "geometry")
	if err != nil {
		t.Fatalf("CompleteVideo with failing store: %v", err)
	}
	if result.Synced {
		t.Error("expected Synced=false when save fails")
	}
	if result.Record.VideosWatched != 2 || result.Record.TotalXP != 20 {
		t.Errorf("record = %+v", result.Record)
	}
	if svc.PendingCount() != 1 {
		t.Errorf("PendingCount = %d, want 1", svc.PendingCount())
	}

	// Reads see the unsynced state
	rec, err := svc.GetProgress("u1")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if rec.VideosWatched != 2 {
		t.Errorf("pending read VideosWatched = %d, want 2", rec.VideosWatched)
	}

	// Store recovers; flush persists the queued record
	store.failing = false
	svc.FlushPending()

	if svc.PendingCount() != 0 {
		t.Errorf("PendingCount after flush = %d, want 0", svc.PendingCount())
	}
	saved := store.records["u1"]
	if saved == nil || saved.VideosWatched != 2 {
		t.Errorf("store after flush = %+v", saved)
	}
}

func TestPendingSurvivesFailedFlush(t *testing.T) {
	store := newFakeStore()
	svc := newTestProgressService(t, store, &fakeEvents{})

	store.failing = true
	if _, err := svc.CompleteVideo("u1", "circuits"); err != nil {
		t.Fatalf("CompleteVideo: %v", err)
	}

	svc.FlushPending()
	if svc.PendingCount() != 1 {
		t.Errorf("PendingCount after failed flush = %d, want 1", svc.PendingCount())
	}
}

func TestMutationsStackWhileOffline(t *testing.T) {
	store := newFakeStore()
	svc := newTestProgressService(t, store, &fakeEvents{})
	store.failing = true

	svc.CompleteVideo("u1", "photosynthesis")
	svc.CompleteGame("u1", models.GameCompleted{GameID: "science-lab", Subject: models.SubjectScience, Score: 5, TotalQuestions: 5})

	rec, err := svc.GetProgress("u1")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if rec.TotalXP != 30 {
		t.Errorf("TotalXP = %d, want 30 (10 video + 20 game)", rec.TotalXP)
	}
	if rec.VideosWatched != 1 || rec.GamesPlayed != 1 {
		t.Errorf("record = %+v", rec)
	}

	store.failing = false
	svc.FlushPending()
	if got := store.records["u1"]; got == nil || got.TotalXP != 30 {
		t.Errorf("flushed record = %+v", got)
	}
}
