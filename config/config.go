package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the store and keeps the handle in config.DB for
// the composition roots. Components never reach for this global; they get
// the handle through their constructors. With DATABASE_URL set the store
// is Postgres; otherwise a local SQLite file (SQLITE_PATH, default
// tournament.db).
func ConnectDatabase() {
	db, err := openDatabase()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// One process, one writer. SQLite enforces this anyway; keeping the
	// pool at a single connection makes the behavior uniform.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access database pool: ", err)
	}
	sqlDB.SetMaxOpenConns(1)

	DB = db
}

func openDatabase() (*gorm.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		log.Println("Connecting to Postgres database")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "tournament.db"
	}
	log.Printf("Opening SQLite database at %s", path)
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// ChallongeAPIKey returns the API key for the tournament host.
func ChallongeAPIKey() string {
	return os.Getenv("CHALLONGE_API_KEY")
}

// ServerPort returns the HTTP port for the API server.
func ServerPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
