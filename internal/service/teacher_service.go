package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"amavidya/internal/cache"
	"amavidya/internal/models"
	"amavidya/internal/repository"
	"amavidya/internal/roster"
	"amavidya/internal/scoring"
)

// TeacherService builds the roster views for teacher dashboards
type TeacherService struct {
	users    *repository.UserRepository
	progress *repository.ProgressRepository
	events   *repository.EventRepository
	snapshot *cache.Store
	email    *EmailService
}

// NewTeacherService creates a new teacher service
func NewTeacherService(users *repository.UserRepository, progress *repository.ProgressRepository, events *repository.EventRepository, snapshot *cache.Store, email *EmailService) *TeacherService {
	return &TeacherService{
		users:    users,
		progress: progress,
		events:   events,
		snapshot: snapshot,
		email:    email,
	}
}

// Roster returns every student paired with their progress. A fresh
// read refreshes the snapshot; if the database is down the last
// snapshot serves instead.
func (s *TeacherService) Roster() ([]models.StudentOverview, error) {
	students, err := s.users.ListStudents()
	if err != nil {
		log.Printf("Roster read falling back to snapshot: %v", err)
		return s.cachedRoster(err)
	}

	records, err := s.progress.ListAll()
	if err != nil {
		log.Printf("Roster progress read falling back to snapshot: %v", err)
		return s.cachedRoster(err)
	}

	overviews := make([]models.StudentOverview, 0, len(students))
	for _, student := range students {
		rec, ok := records[student.ID]
		if !ok {
			rec = models.NewProgressRecord()
		}
		student.PasswordHash = ""
		overviews = append(overviews, models.StudentOverview{User: student, Progress: rec})
	}

	if err := s.snapshot.Put(cache.KeyStudents, overviews); err != nil {
		log.Printf("Failed to update roster snapshot: %v", err)
	}
	return overviews, nil
}

func (s *TeacherService) cachedRoster(cause error) ([]models.StudentOverview, error) {
	var overviews []models.StudentOverview
	if err := s.snapshot.Get(cache.KeyStudents, &overviews); err != nil {
		return nil, &PersistenceError{Err: cause}
	}
	return overviews, nil
}

// Overview is the teacher dashboard headline: class totals plus the
// average progress per subject.
type Overview struct {
	Summary         roster.Summary           `json:"summary"`
	SubjectAverages map[models.Subject]int   `json:"subjectAverages"`
	Students        []models.StudentOverview `json:"students"`
}

// Overview computes the class-wide aggregates
func (s *TeacherService) Overview() (*Overview, error) {
	students, err := s.Roster()
	if err != nil {
		return nil, err
	}

	averages := make(map[models.Subject]int, len(models.Subjects))
	for _, subject := range models.Subjects {
		averages[subject] = roster.SubjectAverage(students, subject)
	}

	return &Overview{
		Summary:         roster.Summarize(students),
		SubjectAverages: averages,
		Students:        students,
	}, nil
}

// SearchStudents filters the roster by name or username
func (s *TeacherService) SearchStudents(query string) ([]models.StudentOverview, error) {
	students, err := s.Roster()
	if err != nil {
		return nil, err
	}
	return roster.Search(students, query), nil
}

// StudentDetail is one student's full picture for the teacher view
type StudentDetail struct {
	User            models.User            `json:"user"`
	Progress        *models.ProgressRecord `json:"progress"`
	OverallProgress int                    `json:"overallProgress"`
	Achievements    []scoring.Achievement  `json:"achievements"`
	VideoHistory    []models.VideoEvent    `json:"videoHistory"`
	GameHistory     []models.GameEvent     `json:"gameHistory"`
}

// StudentDetail loads one student with their history
func (s *TeacherService) StudentDetail(studentID string) (*StudentDetail, error) {
	user, err := s.users.GetUserByID(studentID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != models.RoleStudent {
		return nil, ErrUserNotFound
	}
	user.PasswordHash = ""

	rec, err := s.progress.Get(studentID)
	if errors.Is(err, repository.ErrNotFound) {
		rec = models.NewProgressRecord()
	} else if err != nil {
		return nil, err
	}

	videos, err := s.events.ListVideoEvents(studentID)
	if err != nil {
		return nil, err
	}
	games, err := s.events.ListGameEvents(studentID)
	if err != nil {
		return nil, err
	}

	return &StudentDetail{
		User:            *user,
		Progress:        rec,
		OverallProgress: scoring.OverallProgress(rec),
		Achievements:    scoring.Achievements(rec),
		VideoHistory:    videos,
		GameHistory:     games,
	}, nil
}

// SendProgressReport emails the teacher their current class summary
func (s *TeacherService) SendProgressReport(ctx context.Context, teacherID string) error {
	teacher, err := s.users.GetUserByID(teacherID)
	if err != nil {
		return err
	}
	if teacher == nil || teacher.Role != models.RoleTeacher {
		return ErrUserNotFound
	}
	if teacher.Email == "" {
		return fmt.Errorf("teacher %s has no email address", teacher.Username)
	}

	students, err := s.Roster()
	if err != nil {
		return err
	}

	return s.email.SendProgressReportEmail(ctx, teacher.Email, teacher.Name, roster.Summarize(students))
}
