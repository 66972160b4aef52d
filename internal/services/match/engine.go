package match

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/kweston/matchrank/internal/dependencies/clock"
	"github.com/kweston/matchrank/internal/dependencies/random"
	"github.com/kweston/matchrank/internal/model"
	"github.com/kweston/matchrank/internal/services/player"
	"github.com/kweston/matchrank/internal/services/rating"
	"github.com/kweston/matchrank/internal/services/team"
	"github.com/kweston/matchrank/internal/storage"
)

const (
	// IDLength is the length of generated match IDs
	IDLength = 12
	// IDAlphabet is the characters used in IDs (avoid confusing chars)
	IDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// CreateParams describes a match to record
type CreateParams struct {
	Team1ID model.TeamID
	Team2ID model.TeamID
	// WinningTeamID is nil for a draw
	WinningTeamID *model.TeamID
	// Duration in whole hours, at least 1
	Duration int
}

// Engine records matches and applies the resulting player updates.
type Engine struct {
	storage storage.Storage
	players *player.Service
	teams   *team.Service
	rating  *rating.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// Per-team mutexes serialize concurrent matches that share a team.
	// Entries are never released; the map is bounded by the number of
	// teams that have ever played.
	mu        sync.Mutex
	teamLocks map[model.TeamID]*sync.Mutex
}

// NewEngine creates a new match Engine
func NewEngine(
	storage storage.Storage,
	players *player.Service,
	teams *team.Service,
	rating *rating.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		storage:   storage,
		players:   players,
		teams:     teams,
		rating:    rating,
		clock:     clock,
		random:    random,
		logger:    logger,
		teamLocks: make(map[model.TeamID]*sync.Mutex),
	}
}

// Create validates and records a match, accruing playtime and applying
// rating and win/loss updates to all ten players.
//
// All validation happens before the first write. After that the player
// updates, roster re-syncs and match record are separate storage writes
// with no surrounding transaction: an error part-way through leaves the
// earlier writes applied. Callers must treat any error as "state may be
// partially mutated" and re-fetch before retrying.
func (e *Engine) Create(ctx context.Context, params CreateParams) (*model.Match, error) {
	if params.Duration < 1 {
		return nil, model.ErrInvalidDuration
	}
	if params.Team1ID == params.Team2ID {
		return nil, model.ErrInvalidMatchup
	}

	unlock := e.lockPair(params.Team1ID, params.Team2ID)
	defer unlock()

	team1, err := e.teams.Get(ctx, params.Team1ID)
	if err != nil {
		return nil, err
	}
	team2, err := e.teams.Get(ctx, params.Team2ID)
	if err != nil {
		return nil, err
	}

	score1, score2, err := outcomeScores(params, team1, team2)
	if err != nil {
		return nil, err
	}

	// Opponent averages are snapshotted before any player is mutated
	// and used for every player on the side; never recomputed mid-loop.
	avg1 := team1.AverageRating()
	avg2 := team2.AverageRating()

	if err := e.applySide(ctx, team1, avg2, score1, params.Duration); err != nil {
		return nil, err
	}
	if err := e.applySide(ctx, team2, avg1, score2, params.Duration); err != nil {
		return nil, err
	}

	id, err := e.generateID(ctx)
	if err != nil {
		return nil, err
	}

	match := &model.Match{
		ID:            id,
		Team1ID:       params.Team1ID,
		Team2ID:       params.Team2ID,
		WinningTeamID: params.WinningTeamID,
		Duration:      params.Duration,
		CreatedAt:     e.clock.Now(),
	}

	if err := e.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	e.logger.Info("match recorded",
		slog.String("match_id", string(match.ID)),
		slog.String("team1_id", string(match.Team1ID)),
		slog.String("team2_id", string(match.Team2ID)),
		slog.Int("duration_hours", match.Duration),
	)

	return match, nil
}

// Get retrieves a match by ID
func (e *Engine) Get(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return e.storage.GetMatch(ctx, id)
}

// applySide accrues playtime and applies the rating update for every
// player on one team, persisting each through the player registry so
// the roster snapshots are re-synced as a side effect.
func (e *Engine) applySide(ctx context.Context, t *model.Team, opponentAvg, score float64, duration int) error {
	for i := range t.Players {
		p := t.Players[i]

		// Accrue before applying: the K-factor tier is chosen from the
		// post-accrual hours.
		p.HoursPlayed += duration
		e.rating.Apply(&p, opponentAvg, score)

		if err := e.players.Replace(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}

// outcomeScores maps the winner (or its absence) to per-player outcome
// scores for each side.
func outcomeScores(params CreateParams, team1, team2 *model.Team) (float64, float64, error) {
	if params.WinningTeamID == nil {
		return rating.ScoreDraw, rating.ScoreDraw, nil
	}

	switch *params.WinningTeamID {
	case team1.ID:
		return rating.ScoreWin, rating.ScoreLoss, nil
	case team2.ID:
		return rating.ScoreLoss, rating.ScoreWin, nil
	default:
		return 0, 0, model.ErrInvalidWinningTeam
	}
}

// lockPair acquires the update locks for both teams in sorted ID order
// so overlapping matches can never deadlock, and returns the release.
func (e *Engine) lockPair(a, b model.TeamID) func() {
	first, second := a, b
	if second < first {
		first, second = second, first
	}

	firstMu := e.teamLock(first)
	secondMu := e.teamLock(second)

	firstMu.Lock()
	secondMu.Lock()

	return func() {
		secondMu.Unlock()
		firstMu.Unlock()
	}
}

// teamLock returns the mutex for a team, allocating it on first use
func (e *Engine) teamLock(id model.TeamID) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	mu, ok := e.teamLocks[id]
	if !ok {
		mu = &sync.Mutex{}
		e.teamLocks[id] = mu
	}
	return mu
}

// generateID produces an ID not currently in use
func (e *Engine) generateID(ctx context.Context) (model.MatchID, error) {
	for {
		id := model.MatchID(e.random.String(IDLength, IDAlphabet))
		_, err := e.storage.GetMatch(ctx, id)
		if errors.Is(err, model.ErrMatchNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
}
