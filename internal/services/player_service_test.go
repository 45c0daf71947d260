package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRankingsSortedByRatingDescending(t *testing.T) {
	db := setupTestDB(t)
	createTestPlayer(t, db, "Alice Anderson", 1405)
	createTestPlayer(t, db, "Bob Burton", 1187)
	createTestPlayer(t, db, "Carol Chen", 1312)
	createTestPlayer(t, db, "Dave Diaz", 1200)

	svc := NewPlayerService(db)

	rankings, err := svc.GetRankings()
	require.NoError(t, err)
	require.Len(t, rankings, 4)

	require.True(t, sort.SliceIsSorted(rankings, func(i, j int) bool {
		return rankings[i].Rating > rankings[j].Rating
	}), "rankings must be sorted by rating descending")

	require.Equal(t, "Alice Anderson", rankings[0].Name)
	require.Equal(t, 1405, rankings[0].Rating)
	require.Equal(t, 1, rankings[0].Rank)
	require.Equal(t, 4, rankings[3].Rank)
}

func TestGetTopPlayersLimit(t *testing.T) {
	db := setupTestDB(t)
	createTestPlayer(t, db, "Alice Anderson", 1405)
	createTestPlayer(t, db, "Bob Burton", 1187)
	createTestPlayer(t, db, "Carol Chen", 1312)

	svc := NewPlayerService(db)

	players, err := svc.GetTopPlayers(2)
	require.NoError(t, err)
	require.Len(t, players, 2)
	require.Equal(t, "Alice Anderson", players[0].Name)
	require.Equal(t, "Carol Chen", players[1].Name)
}

func TestGetPlayerByIDNotFound(t *testing.T) {
	db := setupTestDB(t)

	svc := NewPlayerService(db)

	_, err := svc.GetPlayerByID(9999)
	require.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestRenamePlayer(t *testing.T) {
	db := setupTestDB(t)
	player := createTestPlayer(t, db, "Alice Andersn", 1405)

	svc := NewPlayerService(db)

	require.NoError(t, svc.RenamePlayer(player.ID, "Alice Anderson"))

	got, err := svc.GetPlayerByID(player.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice Anderson", got.Name)
	require.Equal(t, 1405, got.Rating)

	require.ErrorIs(t, svc.RenamePlayer(9999, "Nobody"), ErrPlayerNotFound)
}
