package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/kweston/matchrank/internal/dependencies/clock"
	"github.com/kweston/matchrank/internal/dependencies/random"
	"github.com/kweston/matchrank/internal/services/match"
	"github.com/kweston/matchrank/internal/services/player"
	"github.com/kweston/matchrank/internal/services/rating"
	"github.com/kweston/matchrank/internal/services/team"
	"github.com/kweston/matchrank/internal/storage"
	"github.com/kweston/matchrank/internal/storage/memory"
	redisstorage "github.com/kweston/matchrank/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PlayerService *player.Service
	TeamService   *team.Service
	RatingService *rating.Service
	MatchEngine   *match.Engine
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	playerService := player.New(store, clk, rnd, logger)
	teamService := team.New(store, playerService, clk, rnd, logger)
	ratingService := rating.New()
	matchEngine := match.NewEngine(store, playerService, teamService, ratingService, clk, rnd, logger)

	// The player registry pushes updates into team rosters; wired here
	// to avoid a player -> team import cycle
	playerService.SetRosterSync(teamService)

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		PlayerService: playerService,
		TeamService:   teamService,
		RatingService: ratingService,
		MatchEngine:   matchEngine,
	}
}
