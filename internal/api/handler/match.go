package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kweston/matchrank/internal/api/request"
	"github.com/kweston/matchrank/internal/api/response"
	"github.com/kweston/matchrank/internal/model"
	"github.com/kweston/matchrank/internal/services/match"
)

// MatchHandler handles match-related endpoints
type MatchHandler struct {
	engine *match.Engine
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(engine *match.Engine) *MatchHandler {
	return &MatchHandler{
		engine: engine,
	}
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Team1ID == "" {
		WriteError(w, NewInvalidRequestError("team1_id is required"))
		return
	}
	if req.Team2ID == "" {
		WriteError(w, NewInvalidRequestError("team2_id is required"))
		return
	}

	var winner *model.TeamID
	if req.WinningTeamID != nil {
		id := model.TeamID(*req.WinningTeamID)
		winner = &id
	}

	m, err := h.engine.Create(r.Context(), match.CreateParams{
		Team1ID:       model.TeamID(req.Team1ID),
		Team2ID:       model.TeamID(req.Team2ID),
		WinningTeamID: winner,
		Duration:      req.Duration,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(m))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	m, err := h.engine.Get(r.Context(), model.MatchID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}
