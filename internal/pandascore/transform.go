// Package pandascore fetches live and upcoming esports matches and transforms
// them into the normalized match shape consumed by the score widgets.
package pandascore

import (
	"fmt"

	"gamepulse/internal/model"
)

// RawMatch mirrors the subset of the PandaScore match record we consume.
type RawMatch struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	BeginAt   *string `json:"begin_at"`
	Videogame struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"videogame"`
	Tournament struct {
		Name string `json:"name"`
	} `json:"tournament"`
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Opponents []struct {
		Opponent struct {
			ID       int     `json:"id"`
			Name     string  `json:"name"`
			ImageURL *string `json:"image_url"`
		} `json:"opponent"`
	} `json:"opponents"`
	Results []struct {
		Score  int `json:"score"`
		TeamID int `json:"team_id"`
	} `json:"results"`
	StreamsList []struct {
		RawURL   string `json:"raw_url"`
		Main     bool   `json:"main"`
		Language string `json:"language"`
	} `json:"streams_list"`
}

// gameLabels maps known game names to short display labels.
var gameLabels = map[string]string{
	"Counter-Strike 2":  "CS2",
	"League of Legends": "LoL",
	"Dota 2":            "Dota 2",
	"Valorant":          "Valorant",
	"Overwatch":         "OW2",
	"Rainbow Six Siege": "R6",
	"PUBG Mobile":       "PUBG",
}

// GameLabel returns the display shorthand for a game, passing unknown names
// through unchanged.
func GameLabel(name string) string {
	if label, ok := gameLabels[name]; ok {
		return label
	}
	return name
}

// FormatScore renders two scores for display.
func FormatScore(score1, score2 int) string {
	return fmt.Sprintf("%d - %d", score1, score2)
}

// TransformMatch normalizes one raw match record. Missing opponents default
// to "TBD", missing result entries default to a 0 score, and the stream URL
// prefers an English main stream, then any main stream, then none.
func TransformMatch(m RawMatch) model.EsportsMatch {
	team1, team2 := "TBD", "TBD"
	var team1ID, team2ID int
	if len(m.Opponents) > 0 {
		team1 = m.Opponents[0].Opponent.Name
		team1ID = m.Opponents[0].Opponent.ID
	}
	if len(m.Opponents) > 1 {
		team2 = m.Opponents[1].Opponent.Name
		team2ID = m.Opponents[1].Opponent.ID
	}

	scoreFor := func(teamID int) int {
		for _, r := range m.Results {
			if r.TeamID == teamID {
				return r.Score
			}
		}
		return 0
	}
	score1, score2 := 0, 0
	if len(m.Opponents) > 0 {
		score1 = scoreFor(team1ID)
	}
	if len(m.Opponents) > 1 {
		score2 = scoreFor(team2ID)
	}

	var streamURL *string
	for _, s := range m.StreamsList {
		if s.Main && s.Language == "en" {
			url := s.RawURL
			streamURL = &url
			break
		}
	}
	if streamURL == nil {
		for _, s := range m.StreamsList {
			if s.Main {
				url := s.RawURL
				streamURL = &url
				break
			}
		}
	}

	return model.EsportsMatch{
		ID:         m.ID,
		Team1:      team1,
		Team2:      team2,
		Score1:     score1,
		Score2:     score2,
		Game:       m.Videogame.Name,
		GameLabel:  GameLabel(m.Videogame.Name),
		Tournament: m.Tournament.Name,
		Status:     m.Status,
		BeginAt:    m.BeginAt,
		StreamURL:  streamURL,
	}
}
