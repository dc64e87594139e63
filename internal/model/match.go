package model

// Match statuses as reported by the esports API.
const (
	MatchRunning    = "running"
	MatchNotStarted = "not_started"
	MatchFinished   = "finished"
)

// EsportsMatch is a normalized live or upcoming esports match. A fresh set is
// built on every poll; only the upstream ID carries identity across polls.
type EsportsMatch struct {
	ID         int     `json:"id"`
	Team1      string  `json:"team1"`
	Team2      string  `json:"team2"`
	Score1     int     `json:"score1"`
	Score2     int     `json:"score2"`
	Game       string  `json:"game"`
	GameLabel  string  `json:"gameLabel"`
	Tournament string  `json:"tournament"`
	Status     string  `json:"status"`
	BeginAt    *string `json:"begin_at"`
	StreamURL  *string `json:"streamUrl"`
}
