package models

import "time"

// VideoEvent is the stored audit row for a completed video
type VideoEvent struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	VideoID   string    `json:"videoId"`
	Subject   Subject   `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

// GameEvent is the stored audit row for a completed game
type GameEvent struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"userId"`
	GameID         string    `json:"gameId"`
	Subject        Subject   `json:"subject"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	TimeSpent      int       `json:"timeSpent"`
	CreatedAt      time.Time `json:"createdAt"`
}
