package request

// CreatePlayerRequest is the request body for registering a player.
// Initial stats are optional; RatingAdjustment defaults to 50 when
// omitted.
type CreatePlayerRequest struct {
	Nickname         string  `json:"nickname"`
	Wins             int     `json:"wins,omitempty"`
	Losses           int     `json:"losses,omitempty"`
	Rating           float64 `json:"rating,omitempty"`
	HoursPlayed      int     `json:"hours_played,omitempty"`
	RatingAdjustment *int    `json:"rating_adjustment,omitempty"`
}

// CreateTeamRequest is the request body for creating a team
type CreateTeamRequest struct {
	TeamName  string   `json:"team_name"`
	PlayerIDs []string `json:"player_ids"`
}

// CreateMatchRequest is the request body for recording a match.
// WinningTeamID is omitted or null for a draw.
type CreateMatchRequest struct {
	Team1ID       string  `json:"team1_id"`
	Team2ID       string  `json:"team2_id"`
	WinningTeamID *string `json:"winning_team_id,omitempty"`
	Duration      int     `json:"duration"`
}
