package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"tournament-elo-api/internal/challonge"
	"tournament-elo-api/internal/identity"
	"tournament-elo-api/internal/models"
)

// TournamentFetcher is the slice of the Challonge client the ingest
// pipeline needs.
type TournamentFetcher interface {
	ListTournaments() ([]challonge.Tournament, error)
	GetTournament(code string) (*challonge.Tournament, error)
}

// IngestService pulls a bracket from the tournament host and lands its
// participants and matches in the store. External participant ids are
// only meaningful within one bracket, so every participant name runs
// through identity resolution and matches are stored against canonical
// player ids.
type IngestService struct {
	db          *gorm.DB
	fetcher     TournamentFetcher
	matches     *MatchService
	newResolver func(*gorm.DB) identity.Resolver
}

func NewIngestService(db *gorm.DB, fetcher TournamentFetcher, matches *MatchService) *IngestService {
	return &IngestService{
		db:      db,
		fetcher: fetcher,
		matches: matches,
		newResolver: func(tx *gorm.DB) identity.Resolver {
			return identity.NewResolver(tx)
		},
	}
}

// ListTournaments exposes the host's tournament index for pickers.
func (s *IngestService) ListTournaments() ([]challonge.Tournament, error) {
	return s.fetcher.ListTournaments()
}

// IngestTournament fetches the tournament behind code and inserts its
// players and matches in one transaction. A fetch or decode failure
// mutates nothing. Matches without a result yet, or referencing
// participants absent from the roster, are skipped. Already-present match
// ids are counted as duplicates and left untouched.
func (s *IngestService) IngestTournament(code string) (*models.IngestResult, error) {
	tournament, err := s.fetcher.GetTournament(code)
	if err != nil {
		return nil, fmt.Errorf("fetching tournament %q: %w", code, err)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	result := &models.IngestResult{TournamentID: tournament.ID}
	resolver := s.newResolver(tx)

	// External participant id -> canonical player id for this bracket.
	canonical := make(map[uint]uint, len(tournament.Participants))
	for _, participant := range tournament.Participants {
		playerID, created, err := resolver.ResolveOrCreate(participant.Name)
		if err != nil {
			if errors.Is(err, identity.ErrBlankName) {
				log.Printf("Participant %d has a blank name, skipping", participant.ID)
				continue
			}
			tx.Rollback()
			return nil, err
		}
		canonical[participant.ID] = playerID
		result.PlayersResolved++
		if created {
			result.PlayersCreated++
		}
	}

	for _, match := range tournament.Matches {
		if match.Player1ID == nil || match.Player2ID == nil || match.WinnerID == nil || match.LoserID == nil {
			log.Printf("Match %d has no result yet, skipping", match.ID)
			result.MatchesSkipped++
			continue
		}

		player1ID, ok1 := canonical[*match.Player1ID]
		player2ID, ok2 := canonical[*match.Player2ID]
		winnerID, okW := canonical[*match.WinnerID]
		loserID, okL := canonical[*match.LoserID]
		if !ok1 || !ok2 || !okW || !okL {
			log.Printf("Match %d references unknown participants, skipping", match.ID)
			result.MatchesSkipped++
			continue
		}

		scores := match.ScoresCSV
		if scores == "" {
			scores = "2-0"
		}

		created, err := s.matches.CreateMatchTx(tx, models.CreateMatchRequest{
			MatchID:            match.ID,
			TournamentID:       tournament.ID,
			Player1ID:          player1ID,
			Player2ID:          player2ID,
			WinnerID:           winnerID,
			LoserID:            loserID,
			ScoresCSV:          scores,
			SuggestedPlayOrder: match.SuggestedPlayOrder,
		})
		if err != nil {
			if errors.Is(err, ErrSamePlayer) || errors.Is(err, ErrInvalidWinner) || errors.Is(err, ErrInvalidLoser) {
				log.Printf("Match %d failed validation: %v, skipping", match.ID, err)
				result.MatchesSkipped++
				continue
			}
			tx.Rollback()
			return nil, err
		}
		if created {
			result.MatchesInserted++
		} else {
			result.DuplicateMatches++
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return result, nil
}
