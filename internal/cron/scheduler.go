package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"tournament-elo-api/internal/services"
)

// Scheduler periodically sweeps tournaments that still have unprocessed
// matches and runs the rating pipeline over them. Processing is
// idempotent, so a sweep that overlaps manual processing is harmless.
type Scheduler struct {
	cron          *cron.Cron
	ratingService *services.RatingService
	matchService  *services.MatchService
}

func NewScheduler(ratingService *services.RatingService, matchService *services.MatchService) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:          c,
		ratingService: ratingService,
		matchService:  matchService,
	}
}

// Start schedules the hourly processing sweep.
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// At minute 0 of every hour.
	_, err := s.cron.AddFunc("0 0 * * * *", s.runProcessing)
	if err != nil {
		log.Printf("Error scheduling processing job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runProcessing() {
	log.Println("Running rating processing sweep...")

	tournamentIDs, err := s.matchService.TournamentsWithUnprocessed()
	if err != nil {
		log.Printf("Error finding tournaments with unprocessed matches: %v", err)
		return
	}

	if len(tournamentIDs) == 0 {
		log.Println("No unprocessed matches")
		return
	}

	for _, tournamentID := range tournamentIDs {
		result, err := s.ratingService.ProcessTournament(tournamentID)
		if err != nil {
			log.Printf("Error processing tournament %d: %v", tournamentID, err)
			continue
		}
		log.Printf("Tournament %d: %d matches processed, %d skipped", tournamentID, result.MatchesProcessed, result.MatchesSkipped)
	}

	log.Println("Rating processing sweep completed")
}

// RunNow manually triggers the processing sweep (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering processing sweep...")
	s.runProcessing()
}
