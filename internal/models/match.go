package models

import (
	"time"
)

// Match status values. A match is written once at ingest and flipped to
// processed exactly once by the rating processor; there is no way back.
const (
	MatchUnprocessed = 0
	MatchProcessed   = 1
)

// Match rows keep the identifier assigned by the tournament host. That
// identifier is the idempotency key: re-ingesting a tournament never
// duplicates a match.
type Match struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TournamentID       uint      `gorm:"index;not null" json:"tournament_id"`
	Player1ID          uint      `gorm:"not null" json:"player1_id"`
	Player2ID          uint      `gorm:"not null" json:"player2_id"`
	WinnerID           uint      `gorm:"not null" json:"winner_id"`
	LoserID            uint      `gorm:"not null" json:"loser_id"`
	ScoresCSV          string    `gorm:"size:255" json:"scores_csv"`
	SuggestedPlayOrder int       `json:"suggested_play_order"`
	Status             int       `gorm:"default:0;index" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relationships
	Player1 Player `gorm:"foreignKey:Player1ID;references:ID" json:"player1,omitempty"`
	Player2 Player `gorm:"foreignKey:Player2ID;references:ID" json:"player2,omitempty"`
	Winner  Player `gorm:"foreignKey:WinnerID;references:ID" json:"winner,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

type CreateMatchRequest struct {
	MatchID            uint   `json:"match_id" binding:"required"`
	TournamentID       uint   `json:"tournament_id" binding:"required"`
	Player1ID          uint   `json:"player1_id" binding:"required"`
	Player2ID          uint   `json:"player2_id" binding:"required"`
	WinnerID           uint   `json:"winner_id" binding:"required"`
	LoserID            uint   `json:"loser_id" binding:"required"`
	ScoresCSV          string `json:"scores_csv"`
	SuggestedPlayOrder int    `json:"suggested_play_order"`
}

type PaginatedMatchResponse struct {
	Data       []Match `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}
