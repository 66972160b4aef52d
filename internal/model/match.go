package model

import "time"

// MatchID uniquely identifies a match across the system
type MatchID string

// Match is an append-only record of a completed match between two
// teams. Immutable once created.
type Match struct {
	ID      MatchID `json:"id"`
	Team1ID TeamID  `json:"team1_id"`
	Team2ID TeamID  `json:"team2_id"`

	// WinningTeamID is nil for a draw; otherwise it equals Team1ID or
	// Team2ID.
	WinningTeamID *TeamID `json:"winning_team_id"`

	// Duration is the match length in whole hours, at least 1.
	Duration int `json:"duration"`

	CreatedAt time.Time `json:"created_at"`
}
