package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tournament-elo-api/internal/models"
)

func TestCreateMatchIdempotentOnExternalID(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestPlayer(t, db, "Alice Anderson", 1200)
	bob := createTestPlayer(t, db, "Bob Burton", 1200)

	svc := NewMatchService(db)

	req := models.CreateMatchRequest{
		MatchID:            42,
		TournamentID:       7,
		Player1ID:          alice.ID,
		Player2ID:          bob.ID,
		WinnerID:           alice.ID,
		LoserID:            bob.ID,
		ScoresCSV:          "2-1",
		SuggestedPlayOrder: 1,
	}

	created, err := svc.CreateMatch(req)
	require.NoError(t, err)
	require.True(t, created)

	// Re-insert with different field values: must be a no-op.
	dup := req
	dup.ScoresCSV = "0-2"
	dup.WinnerID = bob.ID
	dup.LoserID = alice.ID

	created, err = svc.CreateMatch(dup)
	require.NoError(t, err)
	require.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	var match models.Match
	require.NoError(t, db.First(&match, 42).Error)
	require.Equal(t, "2-1", match.ScoresCSV)
	require.Equal(t, alice.ID, match.WinnerID)
	require.Equal(t, models.MatchUnprocessed, match.Status)
}

func TestCreateMatchValidation(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestPlayer(t, db, "Alice Anderson", 1200)
	bob := createTestPlayer(t, db, "Bob Burton", 1200)
	carol := createTestPlayer(t, db, "Carol Chen", 1200)

	svc := NewMatchService(db)

	base := models.CreateMatchRequest{
		MatchID:      1,
		TournamentID: 7,
		Player1ID:    alice.ID,
		Player2ID:    bob.ID,
		WinnerID:     alice.ID,
		LoserID:      bob.ID,
	}

	tests := []struct {
		name    string
		mutate  func(*models.CreateMatchRequest)
		wantErr error
	}{
		{
			name:    "same player on both sides",
			mutate:  func(r *models.CreateMatchRequest) { r.Player2ID = alice.ID },
			wantErr: ErrSamePlayer,
		},
		{
			name:    "winner not a participant",
			mutate:  func(r *models.CreateMatchRequest) { r.WinnerID = carol.ID },
			wantErr: ErrInvalidWinner,
		},
		{
			name:    "loser not a participant",
			mutate:  func(r *models.CreateMatchRequest) { r.LoserID = carol.ID },
			wantErr: ErrInvalidLoser,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			_, err := svc.CreateMatch(req)
			require.ErrorIs(t, err, tt.wantErr)

			var count int64
			require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
			require.EqualValues(t, 0, count)
		})
	}
}

func TestTournamentsWithUnprocessed(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestPlayer(t, db, "Alice Anderson", 1200)
	bob := createTestPlayer(t, db, "Bob Burton", 1200)

	svc := NewMatchService(db)

	insert := func(matchID, tournamentID uint, status int) {
		match := models.Match{
			ID:           matchID,
			TournamentID: tournamentID,
			Player1ID:    alice.ID,
			Player2ID:    bob.ID,
			WinnerID:     alice.ID,
			LoserID:      bob.ID,
			Status:       status,
		}
		require.NoError(t, db.Create(&match).Error)
	}

	insert(1, 100, models.MatchUnprocessed)
	insert(2, 100, models.MatchUnprocessed)
	insert(3, 200, models.MatchProcessed)
	insert(4, 300, models.MatchUnprocessed)

	ids, err := svc.TournamentsWithUnprocessed()
	require.NoError(t, err)
	require.ElementsMatch(t, []uint{100, 300}, ids)
}

func TestDeleteByTournament(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestPlayer(t, db, "Alice Anderson", 1200)
	bob := createTestPlayer(t, db, "Bob Burton", 1200)

	svc := NewMatchService(db)

	for i := uint(1); i <= 3; i++ {
		match := models.Match{
			ID:           i,
			TournamentID: 100,
			Player1ID:    alice.ID,
			Player2ID:    bob.ID,
			WinnerID:     alice.ID,
			LoserID:      bob.ID,
		}
		require.NoError(t, db.Create(&match).Error)
	}

	deleted, err := svc.DeleteByTournament(100)
	require.NoError(t, err)
	require.EqualValues(t, 3, deleted)

	var count int64
	require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
