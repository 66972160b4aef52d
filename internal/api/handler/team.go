package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kweston/matchrank/internal/api/request"
	"github.com/kweston/matchrank/internal/api/response"
	"github.com/kweston/matchrank/internal/model"
	"github.com/kweston/matchrank/internal/services/team"
)

// TeamHandler handles team-related endpoints
type TeamHandler struct {
	teams *team.Service
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teams *team.Service) *TeamHandler {
	return &TeamHandler{
		teams: teams,
	}
}

// Create handles POST /api/v1/teams
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.TeamName == "" {
		WriteError(w, NewInvalidRequestError("team_name is required"))
		return
	}
	if len(req.PlayerIDs) == 0 {
		WriteError(w, NewInvalidRequestError("player_ids is required"))
		return
	}

	playerIDs := make([]model.PlayerID, len(req.PlayerIDs))
	for i, id := range req.PlayerIDs {
		playerIDs[i] = model.PlayerID(id)
	}

	t, err := h.teams.Create(r.Context(), req.TeamName, playerIDs)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TeamFromModel(t))
}

// Get handles GET /api/v1/teams/{id}
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	t, err := h.teams.Get(r.Context(), model.TeamID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(t))
}
