package player

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kweston/matchrank/internal/dependencies/clock"
	"github.com/kweston/matchrank/internal/dependencies/random"
	"github.com/kweston/matchrank/internal/model"
	"github.com/kweston/matchrank/internal/storage"
)

const (
	// IDLength is the length of generated player IDs
	IDLength = 12
	// IDAlphabet is the characters used in IDs (avoid confusing chars)
	IDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// RosterSync re-embeds an updated player into a team's roster snapshot.
// Implemented by the team registry; declared here so the player service
// does not import it.
type RosterSync interface {
	SyncMember(ctx context.Context, teamID model.TeamID, player model.Player) error
}

// CreateParams holds the initial stats for a new player
type CreateParams struct {
	Nickname         string
	Wins             int
	Losses           int
	Rating           float64
	HoursPlayed      int
	RatingAdjustment int
}

// Service is the player registry. It owns the canonical player records.
type Service struct {
	storage    storage.Storage
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
	rosterSync RosterSync
}

// New creates a new player Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// SetRosterSync wires the team-side roster sync. Called once by the
// factory after both registries exist.
func (s *Service) SetRosterSync(sync RosterSync) {
	s.rosterSync = sync
}

// Create registers a new player with a fresh unique ID.
// Fails with model.ErrDuplicateNickname if the nickname is taken
// (case-sensitive).
func (s *Service) Create(ctx context.Context, params CreateParams) (*model.Player, error) {
	_, err := s.storage.GetPlayerByNickname(ctx, params.Nickname)
	if err == nil {
		return nil, model.ErrDuplicateNickname
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	id, err := s.generateID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:               id,
		Nickname:         params.Nickname,
		Wins:             params.Wins,
		Losses:           params.Losses,
		Rating:           params.Rating,
		HoursPlayed:      params.HoursPlayed,
		Team:             nil,
		RatingAdjustment: params.RatingAdjustment,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("nickname", player.Nickname),
	)

	return player, nil
}

// Get retrieves a player by ID
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// List retrieves all players. An empty registry yields an empty slice.
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []*model.Player{}
	}
	return players, nil
}

// Replace overwrites the stored record for player.ID with the given
// record. If the player belongs to a team, the team's embedded roster
// copy is re-synced so the two never diverge.
func (s *Service) Replace(ctx context.Context, player *model.Player) error {
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return err
	}

	if player.Team != nil && s.rosterSync != nil {
		if err := s.rosterSync.SyncMember(ctx, *player.Team, *player); err != nil {
			return err
		}
	}

	return nil
}

// generateID produces an ID not currently in use
func (s *Service) generateID(ctx context.Context) (model.PlayerID, error) {
	for {
		id := model.PlayerID(s.random.String(IDLength, IDAlphabet))
		_, err := s.storage.GetPlayer(ctx, id)
		if errors.Is(err, model.ErrPlayerNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
}
