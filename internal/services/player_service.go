package services

import (
	"errors"

	"gorm.io/gorm"

	"tournament-elo-api/internal/models"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

// GetRankings returns every player ordered by rating, highest first. Ties
// carry no secondary order guarantee.
func (s *PlayerService) GetRankings() ([]models.RankingEntry, error) {
	var players []models.Player

	result := s.db.Order("rating DESC").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	rankings := make([]models.RankingEntry, 0, len(players))
	for i, player := range players {
		rankings = append(rankings, models.RankingEntry{
			Rank:   i + 1,
			Name:   player.Name,
			Rating: player.Rating,
		})
	}

	return rankings, nil
}

func (s *PlayerService) GetTopPlayers(limit int) ([]models.Player, error) {
	var players []models.Player

	result := s.db.Order("rating DESC").
		Limit(limit).
		Find(&players)

	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (s *PlayerService) GetAllPlayers(page, pageSize int) (*models.PaginatedPlayersResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := s.db.Model(&models.Player{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var players []models.Player
	result := s.db.Order("rating DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Aliases").
		Find(&players)

	if result.Error != nil {
		return nil, result.Error
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedPlayersResponse{
		Data:       players,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *PlayerService) GetPlayerMatches(playerID uint) ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Where("player1_id = ? OR player2_id = ?", playerID, playerID).
		Order("suggested_play_order ASC").
		Preload("Player1").
		Preload("Player2").
		Preload("Winner").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

// RenamePlayer corrects a canonical display name. Ratings are never
// touched here; only the rating pipeline mutates them.
func (s *PlayerService) RenamePlayer(playerID uint, name string) error {
	result := s.db.Model(&models.Player{}).Where("id = ?", playerID).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
