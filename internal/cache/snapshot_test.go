package cache

import (
	"errors"
	"path/filepath"
	"testing"

	"amavidya/internal/models"
)

func TestPutGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	rec := models.NewProgressRecord()
	rec.TotalXP = 30
	if err := store.Put(ProgressKey("u1"), rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got models.ProgressRecord
	if err := store.Get(ProgressKey("u1"), &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TotalXP != 30 {
		t.Errorf("TotalXP = %d, want 30", got.TotalXP)
	}
	if len(got.Subjects) != 4 {
		t.Errorf("subjects round-trip lost entries: %d", len(got.Subjects))
	}
}

func TestGetMiss(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "snapshot.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	var out string
	if err := store.Get("missing", &out); !errors.Is(err, ErrMiss) {
		t.Errorf("err = %v, want ErrMiss", err)
	}
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Put(KeyCurrentUser, "user-42"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var got string
	if err := reopened.Get(KeyCurrentUser, &got); err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got != "user-42" {
		t.Errorf("got %q, want %q", got, "user-42")
	}
}

func TestDelete(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "snapshot.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := store.Put("k", 1); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var out int
	if err := store.Get("k", &out); !errors.Is(err, ErrMiss) {
		t.Errorf("err after delete = %v, want ErrMiss", err)
	}

	// Deleting again is fine
	if err := store.Delete("k"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestProgressKey(t *testing.T) {
	if got := ProgressKey("abc"); got != "progress:abc" {
		t.Errorf("ProgressKey = %q", got)
	}
}
