package model

import "time"

// TeamID uniquely identifies a team across the system
type TeamID string

// TeamSize is the fixed roster cardinality. Teams are created with
// exactly this many players and membership never changes.
const TeamSize = 5

// Team is a named set of exactly five players. Players holds embedded
// snapshots of the canonical player records; they are denormalized
// copies and must be re-synced whenever a member's record changes.
type Team struct {
	ID       TeamID   `json:"id"`
	TeamName string   `json:"team_name"` // unique across all teams
	Players  []Player `json:"players"`   // ordered, always TeamSize entries

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberIndex returns the roster position of the player with the given
// ID, or -1 if the player is not on this team.
func (t *Team) MemberIndex(playerID PlayerID) int {
	for i := range t.Players {
		if t.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

// AverageRating returns the mean rating of the roster.
func (t *Team) AverageRating() float64 {
	if len(t.Players) == 0 {
		return 0
	}
	var sum float64
	for i := range t.Players {
		sum += t.Players[i].Rating
	}
	return sum / float64(len(t.Players))
}
