package redis

import (
	"fmt"

	"github.com/kweston/matchrank/internal/model"
)

// Key prefix for all league data
const keyPrefix = "matchrank"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// nicknameIndexKey returns the Redis key for the nickname -> player_id index
func nicknameIndexKey(nickname string) string {
	return fmt.Sprintf("%s:idx:nickname:%s", keyPrefix, nickname)
}

// allPlayersKey returns the Redis key for the SET of all player IDs
func allPlayersKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// teamKey returns the Redis key for a Team
func teamKey(id model.TeamID) string {
	return fmt.Sprintf("%s:team:%s", keyPrefix, id)
}

// teamNameIndexKey returns the Redis key for the team_name -> team_id index
func teamNameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:team_name:%s", keyPrefix, name)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}
