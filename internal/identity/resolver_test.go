package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tournament-elo-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Player{}, &models.PlayerAlias{}, &models.Match{}))
	return db
}

func createPlayer(t *testing.T, db *gorm.DB, name string, rating int) models.Player {
	t.Helper()
	player := models.Player{Name: name, Rating: rating}
	require.NoError(t, db.Create(&player).Error)
	return player
}

func TestResolveOrCreateMatchesSimilarName(t *testing.T) {
	db := setupTestDB(t)
	existing := createPlayer(t, db, "Jon Smith", 1340)

	resolver := NewResolver(db)

	playerID, created, err := resolver.ResolveOrCreate("John Smith")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing.ID, playerID)

	// No new player row was written.
	var count int64
	require.NoError(t, db.Model(&models.Player{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestResolveOrCreateIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	existing := createPlayer(t, db, "JON SMITH", 1200)

	resolver := NewResolver(db)

	playerID, created, err := resolver.ResolveOrCreate("jon smith")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing.ID, playerID)
}

func TestResolveOrCreateCreatesDistinctPlayer(t *testing.T) {
	db := setupTestDB(t)
	existing := createPlayer(t, db, "Jon Smith", 1340)

	resolver := NewResolver(db)

	playerID, created, err := resolver.ResolveOrCreate("Xyz Qrst")
	require.NoError(t, err)
	require.True(t, created)
	require.NotEqual(t, existing.ID, playerID)

	var player models.Player
	require.NoError(t, db.First(&player, playerID).Error)
	require.Equal(t, "Xyz Qrst", player.Name)
	require.Equal(t, models.DefaultRating, player.Rating)
}

func TestResolveOrCreateRejectsBlankName(t *testing.T) {
	db := setupTestDB(t)

	resolver := NewResolver(db)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, _, err := resolver.ResolveOrCreate(name)
		require.ErrorIs(t, err, ErrBlankName)
	}

	var count int64
	require.NoError(t, db.Model(&models.Player{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestResolveOrCreateFirstMatchWins(t *testing.T) {
	db := setupTestDB(t)
	first := createPlayer(t, db, "Sam Carter", 1200)
	createPlayer(t, db, "Sam Carters", 1200)

	resolver := NewResolver(db)

	playerID, created, err := resolver.ResolveOrCreate("Sam Carter")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, playerID)
}

func TestResolveAliasAttachesNewSpelling(t *testing.T) {
	db := setupTestDB(t)
	player := createPlayer(t, db, "Jon Smith", 1200)
	require.NoError(t, db.Create(&models.PlayerAlias{PlayerID: player.ID, AliasName: "JSmith"}).Error)

	resolver := NewResolver(db)

	playerID, err := resolver.ResolveAlias("J Smith")
	require.NoError(t, err)
	require.Equal(t, player.ID, playerID)

	// The new spelling was recorded as another alias of the same player.
	var aliases []models.PlayerAlias
	require.NoError(t, db.Where("player_id = ?", player.ID).Find(&aliases).Error)
	require.Len(t, aliases, 2)
}

func TestResolveAliasMissDoesNotCreateAnything(t *testing.T) {
	db := setupTestDB(t)
	player := createPlayer(t, db, "Jon Smith", 1200)
	require.NoError(t, db.Create(&models.PlayerAlias{PlayerID: player.ID, AliasName: "JSmith"}).Error)

	resolver := NewResolver(db)

	_, err := resolver.ResolveAlias("Completely Different")
	require.ErrorIs(t, err, ErrNoAliasMatch)

	var aliasCount, playerCount int64
	require.NoError(t, db.Model(&models.PlayerAlias{}).Count(&aliasCount).Error)
	require.NoError(t, db.Model(&models.Player{}).Count(&playerCount).Error)
	require.EqualValues(t, 1, aliasCount)
	require.EqualValues(t, 1, playerCount)
}

func TestResolveAliasIgnoresCanonicalNames(t *testing.T) {
	db := setupTestDB(t)
	createPlayer(t, db, "Jon Smith", 1200)

	resolver := NewResolver(db)

	// "Jon Smith" is a canonical name, not an alias; the alias path must
	// not match against it.
	_, err := resolver.ResolveAlias("Jon Smith")
	require.ErrorIs(t, err, ErrNoAliasMatch)
}

func TestAssignAlias(t *testing.T) {
	db := setupTestDB(t)
	player := createPlayer(t, db, "Jon Smith", 1200)

	resolver := NewResolver(db)

	require.NoError(t, resolver.AssignAlias("Jonny", player.ID))

	var alias models.PlayerAlias
	require.NoError(t, db.Where("alias_name = ?", "Jonny").First(&alias).Error)
	require.Equal(t, player.ID, alias.PlayerID)
}

func TestAssignAliasUnknownPlayer(t *testing.T) {
	db := setupTestDB(t)

	resolver := NewResolver(db)

	err := resolver.AssignAlias("Jonny", 9999)
	require.True(t, errors.Is(err, ErrUnknownPlayer))

	var count int64
	require.NoError(t, db.Model(&models.PlayerAlias{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
