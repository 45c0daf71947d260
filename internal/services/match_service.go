package services

import (
	"errors"

	"gorm.io/gorm"

	"tournament-elo-api/internal/models"
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

// CreateMatch inserts a match under its externally supplied identifier.
// Inserting an id that already exists is a benign no-op (created=false):
// the same tournament can be ingested any number of times. Winner and
// loser must each be one of the two participants.
func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (created bool, err error) {
	return s.createMatch(s.db, req)
}

// CreateMatchTx is CreateMatch scoped to an existing transaction.
func (s *MatchService) CreateMatchTx(tx *gorm.DB, req models.CreateMatchRequest) (bool, error) {
	return s.createMatch(tx, req)
}

func (s *MatchService) createMatch(db *gorm.DB, req models.CreateMatchRequest) (bool, error) {
	if req.Player1ID == req.Player2ID {
		return false, ErrSamePlayer
	}
	if req.WinnerID != req.Player1ID && req.WinnerID != req.Player2ID {
		return false, ErrInvalidWinner
	}
	if req.LoserID != req.Player1ID && req.LoserID != req.Player2ID {
		return false, ErrInvalidLoser
	}

	var count int64
	if err := db.Model(&models.Match{}).Where("id = ?", req.MatchID).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	match := models.Match{
		ID:                 req.MatchID,
		TournamentID:       req.TournamentID,
		Player1ID:          req.Player1ID,
		Player2ID:          req.Player2ID,
		WinnerID:           req.WinnerID,
		LoserID:            req.LoserID,
		ScoresCSV:          req.ScoresCSV,
		SuggestedPlayOrder: req.SuggestedPlayOrder,
		Status:             models.MatchUnprocessed,
	}

	if err := db.Create(&match).Error; err != nil {
		return false, err
	}

	return true, nil
}

func (s *MatchService) GetMatchByID(id uint) (*models.Match, error) {
	var match models.Match

	result := s.db.First(&match, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, result.Error
	}

	return &match, nil
}

func (s *MatchService) GetRecentMatches(limit int) ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Order("created_at DESC").
		Limit(limit).
		Preload("Player1").
		Preload("Player2").
		Preload("Winner").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

func (s *MatchService) GetMatches(tournamentID uint, status *int, page, pageSize int) (*models.PaginatedMatchResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := s.db.Model(&models.Match{})
	if tournamentID != 0 {
		query = query.Where("tournament_id = ?", tournamentID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var matches []models.Match
	result := query.Order("suggested_play_order ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Player1").
		Preload("Player2").
		Preload("Winner").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedMatchResponse{
		Data:       matches,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// TournamentsWithUnprocessed lists tournament ids that still have at
// least one unprocessed match. Used by the scheduler.
func (s *MatchService) TournamentsWithUnprocessed() ([]uint, error) {
	var ids []uint

	result := s.db.Model(&models.Match{}).
		Where("status = ?", models.MatchUnprocessed).
		Distinct("tournament_id").
		Pluck("tournament_id", &ids)

	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

// DeleteByTournament drops every match belonging to a tournament.
// Operator escape hatch for a tournament ingested by mistake; ratings
// already applied from processed matches are not reverted.
func (s *MatchService) DeleteByTournament(tournamentID uint) (int64, error) {
	result := s.db.Where("tournament_id = ?", tournamentID).Delete(&models.Match{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
