// Package api wires the services and HTTP handlers together.
package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tournament-elo-api/internal/cron"
	"tournament-elo-api/internal/handlers"
	"tournament-elo-api/internal/services"
)

type Module struct {
	PlayerHandler     *handlers.PlayerHandler
	PlayerService     *services.PlayerService
	MatchHandler      *handlers.MatchHandler
	MatchService      *services.MatchService
	TournamentHandler *handlers.TournamentHandler
	IngestService     *services.IngestService
	RatingService     *services.RatingService
	StatsHandler      *handlers.StatsHandler
	StatsService      *services.StatsService
	Scheduler         *cron.Scheduler
	db                *gorm.DB
}

func NewModule(db *gorm.DB, fetcher services.TournamentFetcher) *Module {
	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	ratingService := services.NewRatingService(db)
	ingestService := services.NewIngestService(db, fetcher, matchService)
	tournamentHandler := handlers.NewTournamentHandler(ingestService, ratingService, matchService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	scheduler := cron.NewScheduler(ratingService, matchService)

	return &Module{
		PlayerHandler:     playerHandler,
		PlayerService:     playerService,
		MatchHandler:      matchHandler,
		MatchService:      matchService,
		TournamentHandler: tournamentHandler,
		IngestService:     ingestService,
		RatingService:     ratingService,
		StatsHandler:      statsHandler,
		StatsService:      statsService,
		Scheduler:         scheduler,
		db:                db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	players := r.Group("/players")
	{
		players.GET("", m.PlayerHandler.GetAllPlayers)
		players.GET("/top", m.PlayerHandler.GetTopPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.GET("/:id/matches", m.PlayerHandler.GetPlayerMatches)
	}

	r.GET("/rankings", m.PlayerHandler.GetRankings)

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.GET("/recent", m.MatchHandler.GetRecentMatches)
	}

	tournaments := r.Group("/tournaments")
	{
		tournaments.GET("", m.TournamentHandler.ListTournaments)
		tournaments.POST("/:code/ingest", m.TournamentHandler.IngestTournament)
		tournaments.POST("/:id/process", m.TournamentHandler.ProcessTournament)
		tournaments.DELETE("/:id/matches", m.TournamentHandler.DeleteTournamentMatches)
	}

	r.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the cron scheduler for periodic rating processing
func (m *Module) StartScheduler() error {
	log.Println("Starting scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping scheduler...")
	m.Scheduler.Stop()
}
