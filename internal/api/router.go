package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kweston/matchrank/internal/api/handler"
	apimiddleware "github.com/kweston/matchrank/internal/api/middleware"
	"github.com/kweston/matchrank/internal/middleware"
	"github.com/kweston/matchrank/internal/services/match"
	"github.com/kweston/matchrank/internal/services/player"
	"github.com/kweston/matchrank/internal/services/team"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *player.Service
	TeamService   *team.Service
	MatchEngine   *match.Engine
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	teamHandler := handler.NewTeamHandler(cfg.TeamService)
	matchHandler := handler.NewMatchHandler(cfg.MatchEngine)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)

	// Team routes
	api.HandleFunc("/teams", teamHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/teams/{id}", teamHandler.Get).Methods(http.MethodGet)

	// Match routes
	api.HandleFunc("/matches", matchHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/matches/{id}", matchHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
