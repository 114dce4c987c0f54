package models

import (
	"fmt"
	"time"
)

// Role distinguishes the two account types
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// ParseRole validates a role string
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTeacher:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

// User represents an account. Grade is set for students, Subject for
// teachers; the other field stays empty.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Grade        string    `json:"grade,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StudentOverview pairs a student with their progress record for
// teacher roster views.
type StudentOverview struct {
	User     User            `json:"user"`
	Progress *ProgressRecord `json:"progress"`
}
