package memory

import (
	"context"
	"sync"

	"github.com/kweston/matchrank/internal/model"
	"github.com/kweston/matchrank/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are cloned on save and get so callers never share memory with
// the stored copy; team roster snapshots must not alias the canonical
// player records.
type Storage struct {
	mu sync.RWMutex

	players       map[model.PlayerID]*model.Player
	nicknameIndex map[string]model.PlayerID
	teams         map[model.TeamID]*model.Team
	teamNameIndex map[string]model.TeamID
	matches       map[model.MatchID]*model.Match
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[model.PlayerID]*model.Player),
		nicknameIndex: make(map[string]model.PlayerID),
		teams:         make(map[model.TeamID]*model.Team),
		teamNameIndex: make(map[string]model.TeamID),
		matches:       make(map[model.MatchID]*model.Match),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func clonePlayer(p *model.Player) *model.Player {
	c := *p
	if p.Team != nil {
		team := *p.Team
		c.Team = &team
	}
	return &c
}

func cloneTeam(t *model.Team) *model.Team {
	c := *t
	c.Players = make([]model.Player, len(t.Players))
	for i := range t.Players {
		c.Players[i] = *clonePlayer(&t.Players[i])
	}
	return &c
}

func cloneMatch(m *model.Match) *model.Match {
	c := *m
	if m.WinningTeamID != nil {
		winner := *m.WinningTeamID
		c.WinningTeamID = &winner
	}
	return &c
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = clonePlayer(player)
	s.nicknameIndex[player.Nickname] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) GetPlayerByNickname(ctx context.Context, nickname string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nicknameIndex[nickname]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, clonePlayer(p))
	}
	return players, nil
}

// Team operations

func (s *Storage) SaveTeam(ctx context.Context, team *model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = cloneTeam(team)
	s.teamNameIndex[team.TeamName] = team.ID
	return nil
}

func (s *Storage) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[id]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	return cloneTeam(team), nil
}

func (s *Storage) TeamNameExists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.teamNameIndex[name]
	return ok, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = cloneMatch(match)
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return cloneMatch(match), nil
}
