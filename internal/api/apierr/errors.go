package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kweston/matchrank/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeInvalidDuration       = "INVALID_DURATION"
	CodeInvalidWinningTeam    = "INVALID_WINNING_TEAM"
	CodeInvalidMatchup        = "INVALID_MATCHUP"
	CodeInvalidTeamSize       = "INVALID_TEAM_SIZE"
	CodePlayerNotFound        = "PLAYER_NOT_FOUND"
	CodeTeamNotFound          = "TEAM_NOT_FOUND"
	CodeMatchNotFound         = "MATCH_NOT_FOUND"
	CodeDuplicateNickname     = "DUPLICATE_NICKNAME"
	CodeDuplicateTeamName     = "DUPLICATE_TEAM_NAME"
	CodePlayerAlreadyAssigned = "PLAYER_ALREADY_ASSIGNED"
	CodePlayerNotInTeam       = "PLAYER_NOT_IN_TEAM"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTeamNotFound, "Team not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrInvalidDuration):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDuration, "Duration must be at least 1 hour"}}
	case errors.Is(err, model.ErrInvalidWinningTeam):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWinningTeam, "Winning team must be one of the participants"}}
	case errors.Is(err, model.ErrInvalidMatchup):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMatchup, "A match requires two distinct teams"}}
	case errors.Is(err, model.ErrInvalidTeamSize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTeamSize, "A team must have exactly five players"}}
	case errors.Is(err, model.ErrDuplicateNickname):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateNickname, "Nickname already exists"}}
	case errors.Is(err, model.ErrDuplicateTeamName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateTeamName, "Team name already exists"}}
	case errors.Is(err, model.ErrPlayerAlreadyAssigned):
		return &httpError{http.StatusConflict, APIError{CodePlayerAlreadyAssigned, err.Error()}}
	case errors.Is(err, model.ErrPlayerNotInTeam):
		return &httpError{http.StatusConflict, APIError{CodePlayerNotInTeam, "Player is not in this team"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
