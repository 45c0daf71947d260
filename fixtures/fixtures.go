package fixtures

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	"tournament-elo-api/internal/models"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData creates 16 players with aliases and 3 fake tournaments
// with unprocessed matches, ready for a processing run.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	players, err := f.generatePlayers(16)
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	if err := f.generateAliases(players); err != nil {
		return fmt.Errorf("failed to generate aliases: %w", err)
	}

	matchCount, err := f.generateTournaments(players, 3)
	if err != nil {
		return fmt.Errorf("failed to generate tournaments: %w", err)
	}

	log.Printf("Created %d players and %d matches across 3 tournaments", len(players), matchCount)
	return nil
}

// ClearAllData removes every fixture row.
func (f *Fixtures) ClearAllData() error {
	tables := []interface{}{
		&models.Match{},
		&models.PlayerAlias{},
		&models.Player{},
	}
	for _, table := range tables {
		if err := f.db.Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (f *Fixtures) generatePlayers(count int) ([]models.Player, error) {
	players := make([]models.Player, 0, count)
	for i := 0; i < count; i++ {
		player := models.Player{
			Name:   gofakeit.Gamertag(),
			Rating: models.DefaultRating,
		}
		if err := f.db.Create(&player).Error; err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// generateAliases records a noisy spelling for every fourth player, the
// way bracket entries tend to drift between events.
func (f *Fixtures) generateAliases(players []models.Player) error {
	for i, player := range players {
		if i%4 != 0 {
			continue
		}
		alias := models.PlayerAlias{
			PlayerID:  player.ID,
			AliasName: player.Name + " | " + gofakeit.Word(),
		}
		if err := f.db.Create(&alias).Error; err != nil {
			return err
		}
	}
	return nil
}

func (f *Fixtures) generateTournaments(players []models.Player, count int) (int, error) {
	matchID := uint(rand.Intn(900000) + 100000)
	total := 0

	for t := 0; t < count; t++ {
		tournamentID := uint(rand.Intn(9000000) + 1000000)
		matchesPerTournament := 8 + rand.Intn(8)

		for i := 0; i < matchesPerTournament; i++ {
			p1 := players[rand.Intn(len(players))]
			p2 := players[rand.Intn(len(players))]
			if p1.ID == p2.ID {
				continue
			}

			winner, loser := p1, p2
			if rand.Intn(2) == 0 {
				winner, loser = p2, p1
			}

			matchID++
			match := models.Match{
				ID:                 matchID,
				TournamentID:       tournamentID,
				Player1ID:          p1.ID,
				Player2ID:          p2.ID,
				WinnerID:           winner.ID,
				LoserID:            loser.ID,
				ScoresCSV:          fmt.Sprintf("%d-%d", 2, rand.Intn(2)),
				SuggestedPlayOrder: i + 1,
				Status:             models.MatchUnprocessed,
			}
			if err := f.db.Create(&match).Error; err != nil {
				return total, err
			}
			total++
		}
	}

	return total, nil
}
