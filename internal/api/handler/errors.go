package handler

import (
	"net/http"

	"github.com/kweston/matchrank/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest        = apierr.CodeInvalidRequest
	CodeInvalidDuration       = apierr.CodeInvalidDuration
	CodeInvalidWinningTeam    = apierr.CodeInvalidWinningTeam
	CodeInvalidMatchup        = apierr.CodeInvalidMatchup
	CodeInvalidTeamSize       = apierr.CodeInvalidTeamSize
	CodePlayerNotFound        = apierr.CodePlayerNotFound
	CodeTeamNotFound          = apierr.CodeTeamNotFound
	CodeMatchNotFound         = apierr.CodeMatchNotFound
	CodeDuplicateNickname     = apierr.CodeDuplicateNickname
	CodeDuplicateTeamName     = apierr.CodeDuplicateTeamName
	CodePlayerAlreadyAssigned = apierr.CodePlayerAlreadyAssigned
	CodePlayerNotInTeam       = apierr.CodePlayerNotInTeam
	CodeInternalError         = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
