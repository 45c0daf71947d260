package migrations

import (
	"gorm.io/gorm"

	"tournament-elo-api/internal/models"
)

// GetDomainMigrations returns the migrations for the tournament ELO
// tables. Schema creation goes through the gorm migrator so the same
// definitions work on SQLite and Postgres.
func GetDomainMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_02_01_000000_create_players_table",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.Player{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Player{})
			},
		},
		{
			Name: "2024_02_01_000001_create_player_aliases_table",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.PlayerAlias{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.PlayerAlias{})
			},
		},
		{
			Name: "2024_02_01_000002_create_matches_table",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.Match{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Match{})
			},
		},
	}
}
