package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tournament-elo-api/internal/challonge"
	"tournament-elo-api/internal/models"
)

type fakeFetcher struct {
	tournaments []challonge.Tournament
	tournament  *challonge.Tournament
	err         error
}

func (f *fakeFetcher) ListTournaments() ([]challonge.Tournament, error) {
	return f.tournaments, f.err
}

func (f *fakeFetcher) GetTournament(code string) (*challonge.Tournament, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tournament, nil
}

func ptr(v uint) *uint { return &v }

func bracket() *challonge.Tournament {
	return &challonge.Tournament{
		ID:   900,
		Name: "Weekly 12",
		URL:  "weekly12",
		Participants: []challonge.Participant{
			{ID: 11, Name: "Alice Anderson"},
			{ID: 12, Name: "Bob Burton"},
			{ID: 13, Name: "Carol Chen"},
		},
		Matches: []challonge.Match{
			{
				ID:                 501,
				TournamentID:       900,
				Player1ID:          ptr(11),
				Player2ID:          ptr(12),
				WinnerID:           ptr(11),
				LoserID:            ptr(12),
				ScoresCSV:          "2-1",
				SuggestedPlayOrder: 1,
			},
			{
				ID:                 502,
				TournamentID:       900,
				Player1ID:          ptr(11),
				Player2ID:          ptr(13),
				WinnerID:           ptr(13),
				LoserID:            ptr(11),
				SuggestedPlayOrder: 2,
			},
		},
	}
}

func TestIngestTournament(t *testing.T) {
	db := setupTestDB(t)

	svc := NewIngestService(db, &fakeFetcher{tournament: bracket()}, NewMatchService(db))

	result, err := svc.IngestTournament("weekly12")
	require.NoError(t, err)
	require.EqualValues(t, 900, result.TournamentID)
	require.Equal(t, 3, result.PlayersResolved)
	require.Equal(t, 3, result.PlayersCreated)
	require.Equal(t, 2, result.MatchesInserted)
	require.Equal(t, 0, result.MatchesSkipped)

	var players []models.Player
	require.NoError(t, db.Find(&players).Error)
	require.Len(t, players, 3)
	for _, player := range players {
		require.Equal(t, models.DefaultRating, player.Rating)
	}

	// Matches reference canonical player ids, not Challonge participant
	// ids, and keep their external match id.
	var match models.Match
	require.NoError(t, db.First(&match, 501).Error)
	require.NotZero(t, match.Player1ID)
	require.NotEqual(t, uint(11), match.Player1ID)
	require.Equal(t, "2-1", match.ScoresCSV)
	require.Equal(t, models.MatchUnprocessed, match.Status)

	// An empty score falls back to the default. Reset the struct so the
	// previous primary key does not leak into the query conditions.
	match = models.Match{}
	require.NoError(t, db.First(&match, 502).Error)
	require.Equal(t, "2-0", match.ScoresCSV)
}

func TestIngestTournamentDeduplicatesPlayersAcrossTournaments(t *testing.T) {
	db := setupTestDB(t)
	existing := createTestPlayer(t, db, "Alice Anderson", 1340)

	svc := NewIngestService(db, &fakeFetcher{tournament: bracket()}, NewMatchService(db))

	result, err := svc.IngestTournament("weekly12")
	require.NoError(t, err)
	require.Equal(t, 3, result.PlayersResolved)
	require.Equal(t, 2, result.PlayersCreated)

	// The returning player kept her record and rating.
	var match models.Match
	require.NoError(t, db.First(&match, 501).Error)
	require.Equal(t, existing.ID, match.Player1ID)
	require.Equal(t, 1340, playerRating(t, db, existing.ID))
}

func TestIngestTournamentRerunIsNoOp(t *testing.T) {
	db := setupTestDB(t)

	svc := NewIngestService(db, &fakeFetcher{tournament: bracket()}, NewMatchService(db))

	_, err := svc.IngestTournament("weekly12")
	require.NoError(t, err)

	result, err := svc.IngestTournament("weekly12")
	require.NoError(t, err)
	require.Equal(t, 0, result.MatchesInserted)
	require.Equal(t, 2, result.DuplicateMatches)
	require.Equal(t, 0, result.PlayersCreated)

	var matchCount, playerCount int64
	require.NoError(t, db.Model(&models.Match{}).Count(&matchCount).Error)
	require.NoError(t, db.Model(&models.Player{}).Count(&playerCount).Error)
	require.EqualValues(t, 2, matchCount)
	require.EqualValues(t, 3, playerCount)
}

func TestIngestTournamentSkipsMatchesWithoutResult(t *testing.T) {
	db := setupTestDB(t)

	tournament := bracket()
	tournament.Matches = append(tournament.Matches, challonge.Match{
		ID:           503,
		TournamentID: 900,
		Player1ID:    ptr(12),
		Player2ID:    ptr(13),
		// Not played yet: no winner or loser.
	})

	svc := NewIngestService(db, &fakeFetcher{tournament: tournament}, NewMatchService(db))

	result, err := svc.IngestTournament("weekly12")
	require.NoError(t, err)
	require.Equal(t, 2, result.MatchesInserted)
	require.Equal(t, 1, result.MatchesSkipped)
}

func TestIngestTournamentFetchFailureMutatesNothing(t *testing.T) {
	db := setupTestDB(t)

	svc := NewIngestService(db, &fakeFetcher{err: errors.New("boom")}, NewMatchService(db))

	_, err := svc.IngestTournament("weekly12")
	require.Error(t, err)

	var matchCount, playerCount int64
	require.NoError(t, db.Model(&models.Match{}).Count(&matchCount).Error)
	require.NoError(t, db.Model(&models.Player{}).Count(&playerCount).Error)
	require.EqualValues(t, 0, matchCount)
	require.EqualValues(t, 0, playerCount)
}
