package services

import (
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

func createTestPlayer(t *testing.T, db *gorm.DB, name string, rating int) models.Player {
	t.Helper()
	player := models.Player{Name: name, Rating: rating}
	require.NoError(t, db.Create(&player).Error)
	return player
}

func playerRating(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var player models.Player
	require.NoError(t, db.First(&player, id).Error)
	return player.Rating
}

func matchStatus(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var match models.Match
	require.NoError(t, db.First(&match, id).Error)
	return match.Status
}
