package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kweston/matchrank/internal/dependencies/clock"
	"github.com/kweston/matchrank/internal/dependencies/random"
	"github.com/kweston/matchrank/internal/model"
	"github.com/kweston/matchrank/internal/services/player"
	"github.com/kweston/matchrank/internal/storage"
)

const (
	// IDLength is the length of generated team IDs
	IDLength = 12
	// IDAlphabet is the characters used in IDs (avoid confusing chars)
	IDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Service is the team registry. A team's membership is fixed at
// creation; its embedded roster snapshots are mutated in place as the
// canonical player records change.
type Service struct {
	storage storage.Storage
	players *player.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new team Service
func New(storage storage.Storage, players *player.Service, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		players: players,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Ensure the team registry can serve as the player registry's roster sync
var _ player.RosterSync = (*Service)(nil)

// Create validates and registers a new team of exactly five unassigned
// players. Validation order is fixed for deterministic error reporting:
// size, then name uniqueness, then per-player checks. No record is
// written until all validation passes; the subsequent team write plus
// five player writes are not atomic.
func (s *Service) Create(ctx context.Context, teamName string, playerIDs []model.PlayerID) (*model.Team, error) {
	if len(playerIDs) != model.TeamSize {
		return nil, model.ErrInvalidTeamSize
	}

	exists, err := s.storage.TeamNameExists(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrDuplicateTeamName
	}

	members := make([]model.Player, 0, model.TeamSize)
	for _, id := range playerIDs {
		p, err := s.players.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if p.Team != nil {
			return nil, fmt.Errorf("%w: %s", model.ErrPlayerAlreadyAssigned, p.Nickname)
		}
		members = append(members, *p)
	}

	id, err := s.generateID(ctx)
	if err != nil {
		return nil, err
	}

	// Stamp the membership onto the snapshots before the team record is
	// first written, so the embedded copies are never stale.
	now := s.clock.Now()
	for i := range members {
		teamID := id
		members[i].Team = &teamID
		members[i].UpdatedAt = now
	}

	team := &model.Team{
		ID:        id,
		TeamName:  teamName,
		Players:   members,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveTeam(ctx, team); err != nil {
		return nil, err
	}

	// Write the membership back to the canonical player records. Each
	// Replace is a separate registry write; a failure part-way leaves
	// the earlier assignments applied.
	for i := range team.Players {
		member := team.Players[i]
		if err := s.players.Replace(ctx, &member); err != nil {
			return nil, err
		}
	}

	s.logger.Info("team created",
		slog.String("team_id", string(team.ID)),
		slog.String("team_name", team.TeamName),
	)

	return team, nil
}

// Get retrieves a team by ID
func (s *Service) Get(ctx context.Context, id model.TeamID) (*model.Team, error) {
	return s.storage.GetTeam(ctx, id)
}

// SyncMember replaces the roster entry matching the given player's ID
// with the updated record and persists the team. This closes the gap
// between the canonical player records and the denormalized roster.
func (s *Service) SyncMember(ctx context.Context, teamID model.TeamID, updated model.Player) error {
	team, err := s.storage.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}

	idx := team.MemberIndex(updated.ID)
	if idx < 0 {
		return fmt.Errorf("%w: player %s in team %s", model.ErrPlayerNotInTeam, updated.ID, teamID)
	}

	team.Players[idx] = updated
	team.UpdatedAt = s.clock.Now()

	return s.storage.SaveTeam(ctx, team)
}

// generateID produces an ID not currently in use
func (s *Service) generateID(ctx context.Context) (model.TeamID, error) {
	for {
		id := model.TeamID(s.random.String(IDLength, IDAlphabet))
		_, err := s.storage.GetTeam(ctx, id)
		if errors.Is(err, model.ErrTeamNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
}
