package models

import (
	"encoding/json"
	"testing"
)

func TestNewProgressRecord(t *testing.T) {
	rec := NewProgressRecord()

	if rec.CurrentLevel != 1 {
		t.Errorf("CurrentLevel = %d, want 1", rec.CurrentLevel)
	}
	if rec.TotalXP != 0 || rec.VideosWatched != 0 || rec.GamesPlayed != 0 {
		t.Errorf("expected zero counters, got %+v", rec)
	}
	if len(rec.Subjects) != 4 {
		t.Fatalf("expected 4 subjects, got %d", len(rec.Subjects))
	}
	for _, s := range Subjects {
		stat, ok := rec.Subjects[s]
		if !ok {
			t.Errorf("missing subject %s", s)
		}
		if stat.Progress != 0 || stat.XP != 0 {
			t.Errorf("subject %s not zeroed: %+v", s, stat)
		}
	}
}

func TestProgressRecordClone(t *testing.T) {
	rec := NewProgressRecord()
	rec.TotalXP = 50
	rec.Subjects[SubjectScience] = SubjectStat{Progress: 25, XP: 50}

	clone := rec.Clone()
	clone.TotalXP = 999
	clone.Subjects[SubjectScience] = SubjectStat{Progress: 100, XP: 999}

	if rec.TotalXP != 50 {
		t.Errorf("clone mutated original TotalXP: %d", rec.TotalXP)
	}
	if rec.Subjects[SubjectScience].XP != 50 {
		t.Errorf("clone mutated original subject map: %+v", rec.Subjects[SubjectScience])
	}
}

func TestProgressRecordJSONShape(t *testing.T) {
	rec := NewProgressRecord()
	rec.TotalXP = 30
	rec.Subjects[SubjectMathematics] = SubjectStat{Progress: 10, XP: 20}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"totalXP", "currentLevel", "videosWatched", "gamesPlayed", "timeSpent", "currentStreak", "subjects"} {
		if _, ok := out[key]; !ok {
			t.Errorf("missing JSON key %q", key)
		}
	}
}

func TestParseSubject(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"science", false},
		{"mathematics", false},
		{"technology", false},
		{"engineering", false},
		{"Science", true},
		{"math", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := ParseSubject(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSubject(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole("student"); err != nil {
		t.Errorf("ParseRole(student) failed: %v", err)
	}
	if _, err := ParseRole("teacher"); err != nil {
		t.Errorf("ParseRole(teacher) failed: %v", err)
	}
	if _, err := ParseRole("admin"); err == nil {
		t.Error("ParseRole(admin) should fail")
	}
}
