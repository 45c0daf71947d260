package services

import (
	"errors"

	"gorm.io/gorm"

	"tournament-elo-api/internal/models"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

func (s *StatsService) GetStats() (*models.Stats, error) {
	stats := &models.Stats{}

	if err := s.db.Model(&models.Player{}).Count(&stats.TotalPlayers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).Count(&stats.TotalMatches).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).
		Where("status = ?", models.MatchProcessed).
		Count(&stats.ProcessedMatches).Error; err != nil {
		return nil, err
	}
	stats.UnprocessedMatches = stats.TotalMatches - stats.ProcessedMatches

	if stats.TotalPlayers > 0 {
		if err := s.db.Model(&models.Player{}).
			Select("AVG(rating)").
			Scan(&stats.AverageRating).Error; err != nil {
			return nil, err
		}

		var top models.Player
		err := s.db.Order("rating DESC").First(&top).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			stats.TopPlayer = &top
		}
	}

	return stats, nil
}
