package rating

import (
	"math"

	"github.com/kweston/matchrank/internal/model"
)

// Outcome scores per player for a match result
const (
	ScoreWin  = 1.0
	ScoreLoss = 0.0
	ScoreDraw = 0.5
)

// K-factor tiers keyed by hours played, most experienced first.
// Evaluated against the post-accrual hours for the match being recorded.
var kTiers = []struct {
	minHours int
	k        int
}{
	{5000, 10},
	{3000, 20},
	{1000, 30},
	{500, 40},
	{0, 50},
}

// Service computes Elo-style rating updates. It is pure computation
// with no storage access.
type Service struct{}

// New creates a new rating Service
func New() *Service {
	return &Service{}
}

// ExpectedScore returns the predicted probability of the player's side
// winning given the opposing team's average rating. Always in (0, 1).
func (s *Service) ExpectedScore(playerRating, opponentAvg float64) float64 {
	return 1 / (1 + math.Pow(10, (opponentAvg-playerRating)/400))
}

// KFactor returns the rating sensitivity for a player with the given
// hours played. Less experienced players move faster.
func (s *Service) KFactor(hoursPlayed int) int {
	for _, tier := range kTiers {
		if hoursPlayed >= tier.minHours {
			return tier.k
		}
	}
	return kTiers[len(kTiers)-1].k
}

// Delta returns the rounded rating change for one player given the
// outcome score and the opposing team's pre-match average rating.
func (s *Service) Delta(playerRating, opponentAvg, score float64, hoursPlayed int) int {
	k := float64(s.KFactor(hoursPlayed))
	e := s.ExpectedScore(playerRating, opponentAvg)
	return int(math.Round(k * (score - e)))
}

// Apply updates a player's rating and win/loss tally in place.
// opponentAvg must be the opposing team's average rating as of before
// any player in the match was mutated, and the player's HoursPlayed
// must already include the match being recorded.
func (s *Service) Apply(p *model.Player, opponentAvg, score float64) {
	p.Rating += float64(s.Delta(p.Rating, opponentAvg, score, p.HoursPlayed))

	switch score {
	case ScoreWin:
		p.Wins++
	case ScoreLoss:
		p.Losses++
	}
	// A draw leaves the tally unchanged
}

// ServiceInterface for dependency injection
type ServiceInterface interface {
	ExpectedScore(playerRating, opponentAvg float64) float64
	KFactor(hoursPlayed int) int
	Delta(playerRating, opponentAvg, score float64, hoursPlayed int) int
	Apply(p *model.Player, opponentAvg, score float64)
}

var _ ServiceInterface = (*Service)(nil)
