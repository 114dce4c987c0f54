// Package validation wraps go-playground/validator with the custom
// rules used at API boundaries, plus the structural checks for
// progress records loaded from storage.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"amavidya/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// subject: one of the four learning tracks
	v.RegisterValidation("subject", func(fl validator.FieldLevel) bool {
		_, err := models.ParseSubject(fl.Field().String())
		return err == nil
	})

	// role: student or teacher
	v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := models.ParseRole(fl.Field().String())
		return err == nil
	})

	return v
}

// Struct validates a struct against its validate tags, returning a
// message suitable for an API error response.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("field %q failed validation rule %q", first.Field(), first.Tag())
	}
	return err
}

// ValidateProgressRecord checks the structural invariants of a stored
// progress record: all four subjects present and progress within
// bounds.
func ValidateProgressRecord(rec *models.ProgressRecord) error {
	if rec == nil {
		return fmt.Errorf("progress record is nil")
	}
	if rec.TotalXP < 0 {
		return fmt.Errorf("totalXP is negative: %d", rec.TotalXP)
	}
	if rec.VideosWatched < 0 || rec.GamesPlayed < 0 || rec.TimeSpent < 0 || rec.CurrentStreak < 0 {
		return fmt.Errorf("progress counters must not be negative")
	}
	if len(rec.Subjects) != len(models.Subjects) {
		return fmt.Errorf("expected %d subjects, found %d", len(models.Subjects), len(rec.Subjects))
	}
	for _, s := range models.Subjects {
		stat, ok := rec.Subjects[s]
		if !ok {
			return fmt.Errorf("missing subject %q", s)
		}
		if stat.Progress < 0 || stat.Progress > 100 {
			return fmt.Errorf("subject %q progress %d out of range 0-100", s, stat.Progress)
		}
		if stat.XP < 0 {
			return fmt.Errorf("subject %q XP is negative: %d", s, stat.XP)
		}
	}
	return nil
}
