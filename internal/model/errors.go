package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound        = errors.New("player not found")
	ErrDuplicateNickname     = errors.New("nickname already exists")
	ErrPlayerAlreadyAssigned = errors.New("player is already in a team")
	ErrPlayerNotInTeam       = errors.New("player is not in this team")

	// Team errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrDuplicateTeamName = errors.New("team name already exists")
	ErrInvalidTeamSize   = errors.New("a team must have exactly five players")

	// Match errors
	ErrMatchNotFound      = errors.New("match not found")
	ErrInvalidDuration    = errors.New("duration must be at least 1 hour")
	ErrInvalidWinningTeam = errors.New("winning team is not a participant")
	ErrInvalidMatchup     = errors.New("a match requires two distinct teams")
)
