package models

type Stats struct {
	TotalPlayers       int64   `json:"total_players"`
	TotalMatches       int64   `json:"total_matches"`
	ProcessedMatches   int64   `json:"processed_matches"`
	UnprocessedMatches int64   `json:"unprocessed_matches"`
	AverageRating      float64 `json:"average_rating"`
	TopPlayer          *Player `json:"top_player,omitempty"`
}

type IngestResult struct {
	TournamentID     uint `json:"tournament_id"`
	PlayersResolved  int  `json:"players_resolved"`
	PlayersCreated   int  `json:"players_created"`
	MatchesInserted  int  `json:"matches_inserted"`
	MatchesSkipped   int  `json:"matches_skipped"`
	DuplicateMatches int  `json:"duplicate_matches"`
}

type ProcessResult struct {
	TournamentID     uint `json:"tournament_id"`
	MatchesProcessed int  `json:"matches_processed"`
	MatchesSkipped   int  `json:"matches_skipped"`
}
