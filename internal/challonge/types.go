package challonge

// Tournament is a bracket as returned by the Challonge v1 API, with
// participants and matches included.
type Tournament struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	URL          string        `json:"url"`
	State        string        `json:"state"`
	Participants []Participant `json:"-"`
	Matches      []Match       `json:"-"`
}

// Participant ids are assigned per tournament by Challonge and are not
// stable across tournaments; only the display name carries identity.
type Participant struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Match mirrors Challonge's match payload. Winner and loser are nil while
// a match has not been played yet.
type Match struct {
	ID                 uint   `json:"id"`
	TournamentID       uint   `json:"tournament_id"`
	Player1ID          *uint  `json:"player1_id"`
	Player2ID          *uint  `json:"player2_id"`
	WinnerID           *uint  `json:"winner_id"`
	LoserID            *uint  `json:"loser_id"`
	ScoresCSV          string `json:"scores_csv"`
	SuggestedPlayOrder int    `json:"suggested_play_order"`
}

// Challonge wraps every object in a single-key envelope:
// {"tournament": {...}}, [{"participant": {...}}], [{"match": {...}}].

type tournamentEnvelope struct {
	Tournament tournamentPayload `json:"tournament"`
}

type tournamentPayload struct {
	Tournament
	Participants []participantEnvelope `json:"participants"`
	Matches      []matchEnvelope       `json:"matches"`
}

type participantEnvelope struct {
	Participant Participant `json:"participant"`
}

type matchEnvelope struct {
	Match Match `json:"match"`
}

func (p tournamentPayload) unwrap() Tournament {
	t := p.Tournament

	t.Participants = make([]Participant, 0, len(p.Participants))
	for _, env := range p.Participants {
		t.Participants = append(t.Participants, env.Participant)
	}

	t.Matches = make([]Match, 0, len(p.Matches))
	for _, env := range p.Matches {
		t.Matches = append(t.Matches, env.Match)
	}

	return t
}
