package response

import (
	"time"

	"github.com/kweston/matchrank/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID               string  `json:"id"`
	Nickname         string  `json:"nickname"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Rating           float64 `json:"rating"`
	HoursPlayed      int     `json:"hours_played"`
	Team             *string `json:"team"`
	RatingAdjustment int     `json:"rating_adjustment"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	var team *string
	if p.Team != nil {
		t := string(*p.Team)
		team = &t
	}
	return Player{
		ID:               string(p.ID),
		Nickname:         p.Nickname,
		Wins:             p.Wins,
		Losses:           p.Losses,
		Rating:           p.Rating,
		HoursPlayed:      p.HoursPlayed,
		Team:             team,
		RatingAdjustment: p.RatingAdjustment,
	}
}

// PlayerList is the response for listing all players
type PlayerList struct {
	Players []Player `json:"players"`
}

// PlayerListFromModels converts a slice of players
func PlayerListFromModels(players []*model.Player) PlayerList {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return PlayerList{Players: out}
}

// Team represents a team in API responses
type Team struct {
	ID       string   `json:"id"`
	TeamName string   `json:"team_name"`
	Players  []Player `json:"players"`
}

// TeamFromModel converts model.Team
func TeamFromModel(t *model.Team) Team {
	players := make([]Player, len(t.Players))
	for i := range t.Players {
		players[i] = PlayerFromModel(&t.Players[i])
	}
	return Team{
		ID:       string(t.ID),
		TeamName: t.TeamName,
		Players:  players,
	}
}

// Match represents a match in API responses
type Match struct {
	ID            string    `json:"id"`
	Team1ID       string    `json:"team1_id"`
	Team2ID       string    `json:"team2_id"`
	WinningTeamID *string   `json:"winning_team_id"`
	Duration      int       `json:"duration"`
	CreatedAt     time.Time `json:"created_at"`
}

// MatchFromModel converts model.Match
func MatchFromModel(m *model.Match) Match {
	var winner *string
	if m.WinningTeamID != nil {
		w := string(*m.WinningTeamID)
		winner = &w
	}
	return Match{
		ID:            string(m.ID),
		Team1ID:       string(m.Team1ID),
		Team2ID:       string(m.Team2ID),
		WinningTeamID: winner,
		Duration:      m.Duration,
		CreatedAt:     m.CreatedAt,
	}
}
