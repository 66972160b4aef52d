package storage

import (
	"context"

	"github.com/kweston/matchrank/internal/model"
)

// Storage defines the interface for data persistence.
// Implementations provide get, equality lookup, insert and update by key;
// there are no transactions spanning multiple records.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByNickname(ctx context.Context, nickname string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Team operations
	SaveTeam(ctx context.Context, team *model.Team) error
	GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error)
	TeamNameExists(ctx context.Context, name string) (bool, error)

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
}
