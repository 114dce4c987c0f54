package handlers

import (
	"amavidya/internal/models"
	"amavidya/internal/scoring"
	"amavidya/internal/service"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,role"`
	Grade    string `json:"grade" validate:"omitempty,max=20"`
	Subject  string `json:"subject" validate:"omitempty,max=50"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type avatarRequest struct {
	Avatar string `json:"avatar" validate:"required,max=50"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type answerRequest struct {
	Option *int `json:"option" validate:"required,min=0"`
}

// progressResponse is a student's record plus its derived values
type progressResponse struct {
	Progress        *models.ProgressRecord `json:"progress"`
	OverallProgress int                    `json:"overallProgress"`
	Achievements    []scoring.Achievement  `json:"achievements"`
}

// activityResponse is returned after completing a video or game
type activityResponse struct {
	Progress        *models.ProgressRecord `json:"progress"`
	OverallProgress int                    `json:"overallProgress"`
	Achievements    []scoring.Achievement  `json:"achievements"`
	XPAwarded       int                    `json:"xpAwarded"`
	Synced          bool                   `json:"synced"`
}

// gameSummary describes a game without exposing its answer key
type gameSummary struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Subject       models.Subject `json:"subject"`
	Difficulty    string         `json:"difficulty"`
	Icon          string         `json:"icon"`
	QuestionCount int            `json:"questionCount"`
}

func toGameSummary(g models.Game) gameSummary {
	return gameSummary{
		ID:            g.ID,
		Title:         g.Title,
		Subject:       g.Subject,
		Difficulty:    g.Difficulty,
		Icon:          g.Icon,
		QuestionCount: len(g.Questions),
	}
}

func newActivityResponse(result *service.Result) *activityResponse {
	return &activityResponse{
		Progress:        result.Record,
		OverallProgress: scoring.OverallProgress(result.Record),
		Achievements:    result.Achievements,
		XPAwarded:       result.XPAwarded,
		Synced:          result.Synced,
	}
}
