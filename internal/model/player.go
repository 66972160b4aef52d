package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is the canonical record for a competitor.
// A copy of this record is embedded in the roster of the team the player
// belongs to; every mutation must be propagated there (see Team).
type Player struct {
	ID       PlayerID `json:"id"`
	Nickname string   `json:"nickname"` // unique, immutable after creation
	Wins     int      `json:"wins"`
	Losses   int      `json:"losses"`
	Rating   float64  `json:"rating"`

	// HoursPlayed accrues match durations and is monotonically
	// non-decreasing. It selects the rating sensitivity tier.
	HoursPlayed int `json:"hours_played"`

	// Team is nil while the player is unassigned. A player belongs to at
	// most one team at a time.
	Team *TeamID `json:"team"`

	// RatingAdjustment is carried on the record but unused by the
	// current rating algorithm.
	RatingAdjustment int `json:"rating_adjustment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultRatingAdjustment is assigned at creation when no value is given.
const DefaultRatingAdjustment = 50
