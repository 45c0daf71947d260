package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"tournament-elo-api/internal/elo"
	"tournament-elo-api/internal/identity"
	"tournament-elo-api/internal/models"
)

// RatingService applies match outcomes to player ratings and drives the
// per-tournament processing batch.
type RatingService struct {
	db          *gorm.DB
	newResolver func(*gorm.DB) identity.Resolver
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{
		db: db,
		newResolver: func(tx *gorm.DB) identity.Resolver {
			return identity.NewResolver(tx)
		},
	}
}

// ApplyMatchResult moves rating points from the loser to the winner
// inside the given transaction. Both ratings are read first; if either
// player is missing nothing is written, so a failure never leaves one
// side updated.
func (s *RatingService) ApplyMatchResult(tx *gorm.DB, winnerID, loserID uint) error {
	var winner, loser models.Player

	if err := tx.First(&winner, winnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("winner %d: %w", winnerID, ErrPlayerNotFound)
		}
		return err
	}
	if err := tx.First(&loser, loserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("loser %d: %w", loserID, ErrPlayerNotFound)
		}
		return err
	}

	delta := elo.Delta(winner.Rating, loser.Rating)

	if err := tx.Model(&models.Player{}).Where("id = ?", winnerID).
		Update("rating", winner.Rating+delta).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Player{}).Where("id = ?", loserID).
		Update("rating", loser.Rating-delta).Error; err != nil {
		return err
	}

	return nil
}

// ProcessTournament runs the rating pipeline over every unprocessed match
// of a tournament in a single transaction. Per-match problems (a
// participant that cannot be resolved) skip that match and leave it
// unprocessed for a later run; any other failure rolls the whole batch
// back. Re-running on a fully processed tournament is a no-op because the
// selection excludes processed matches.
//
// Participant identity is re-resolved here rather than trusted from
// ingest time, so alias information that arrived after ingest still
// corrects who a match belongs to. Identity can therefore drift between
// ingest and processing; that is the intended behavior.
func (s *RatingService) ProcessTournament(tournamentID uint) (*models.ProcessResult, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var matches []models.Match
	if err := tx.Where("tournament_id = ? AND status = ?", tournamentID, models.MatchUnprocessed).
		Order("suggested_play_order ASC").
		Find(&matches).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	resolver := s.newResolver(tx)
	result := &models.ProcessResult{TournamentID: tournamentID}

	for _, match := range matches {
		player1Name, err := playerName(tx, match.Player1ID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		player2Name, err := playerName(tx, match.Player2ID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if player1Name == "" || player2Name == "" {
			log.Printf("Participant names not found for match %d, skipping", match.ID)
			result.MatchesSkipped++
			continue
		}

		player1ID, _, err := resolver.ResolveOrCreate(player1Name)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		player2ID, _, err := resolver.ResolveOrCreate(player2Name)
		if err != nil {
			tx.Rollback()
			return nil, err
		}

		// The stored winner id decides which freshly resolved side won.
		winnerID, loserID := player1ID, player2ID
		if match.WinnerID != player1ID {
			winnerID, loserID = player2ID, player1ID
		}

		if err := s.ApplyMatchResult(tx, winnerID, loserID); err != nil {
			if errors.Is(err, ErrPlayerNotFound) {
				log.Printf("Rating lookup failed for match %d: %v, skipping", match.ID, err)
				result.MatchesSkipped++
				continue
			}
			tx.Rollback()
			return nil, err
		}

		if err := tx.Model(&models.Match{}).Where("id = ?", match.ID).
			Update("status", models.MatchProcessed).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		result.MatchesProcessed++
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return result, nil
}

// playerName returns the stored display name, or "" when the player row
// is missing. A missing row is a skip condition, not a batch failure.
func playerName(tx *gorm.DB, playerID uint) (string, error) {
	var player models.Player
	if err := tx.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return player.Name, nil
}
