package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case Team:
		o.printTeam(v)
	case Match:
		o.printMatch(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
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

// PlayerList response type
type PlayerList struct {
	Players []Player `json:"players"`
}

// Team response type
type Team struct {
	ID       string   `json:"id"`
	TeamName string   `json:"team_name"`
	Players  []Player `json:"players"`
}

// Match response type
type Match struct {
	ID            string  `json:"id"`
	Team1ID       string  `json:"team1_id"`
	Team2ID       string  `json:"team2_id"`
	WinningTeamID *string `json:"winning_team_id"`
	Duration      int     `json:"duration"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	teamStr := "unassigned"
	if p.Team != nil {
		teamStr = *p.Team
	}
	fmt.Printf("Player: %s (%s)\n", p.Nickname, p.ID)
	fmt.Printf("Rating: %.0f\n", p.Rating)
	fmt.Printf("Record: %dW-%dL\n", p.Wins, p.Losses)
	fmt.Printf("Hours Played: %d\n", p.HoursPlayed)
	fmt.Printf("Team: %s\n", teamStr)
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Printf("Players (%d):\n", len(l.Players))
	for _, p := range l.Players {
		fmt.Printf("  - %s (%s) rating %.0f, %dW-%dL, %dh\n",
			p.Nickname, p.ID, p.Rating, p.Wins, p.Losses, p.HoursPlayed)
	}
}

func (o *Output) printTeam(t Team) {
	fmt.Printf("Team: %s (%s)\n", t.TeamName, t.ID)
	fmt.Printf("Roster (%d):\n", len(t.Players))
	for _, p := range t.Players {
		fmt.Printf("  - %s (%s) rating %.0f, %dW-%dL\n",
			p.Nickname, p.ID, p.Rating, p.Wins, p.Losses)
	}
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match: %s\n", m.ID)
	fmt.Printf("Teams: %s vs %s\n", m.Team1ID, m.Team2ID)
	if m.WinningTeamID != nil {
		fmt.Printf("Winner: %s\n", *m.WinningTeamID)
	} else {
		fmt.Println("Result: draw")
	}
	fmt.Printf("Duration: %dh\n", m.Duration)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
