package models

import (
	"time"
)

const DefaultRating = 1200

type Player struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Rating    int       `gorm:"default:1200" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Aliases []PlayerAlias `gorm:"foreignKey:PlayerID" json:"aliases,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type PlayerAlias struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlayerID  uint      `gorm:"not null;constraint:OnDelete:CASCADE" json:"player_id"`
	AliasName string    `gorm:"size:255;not null" json:"alias_name"`
	CreatedAt time.Time `json:"created_at"`

	Player Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
}

func (PlayerAlias) TableName() string {
	return "player_aliases"
}

type RankingEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

type PaginatedPlayersResponse struct {
	Data       []Player `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}
