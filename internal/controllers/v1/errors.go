package v1

import (
	"errors"
	"net/http"

	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/reconcile"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, reconcile.ErrCandidateNotFound) {
		return http.StatusNotFound
	}

	// A transaction that already has a committed match is a state
	// conflict, not a malformed request
	if errors.Is(err, reconcile.ErrAlreadyMatched) || errors.Is(err, models.ErrTransactionMatched) {
		return http.StatusConflict
	}

	// The audit sink failing is a server problem, the caller should
	// retry the whole match call
	if errors.Is(err, reconcile.ErrCommit) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

var (
	errCandidateTypeInvalid = errors.New("the specified candidate type is invalid")
	errCandidateIDNotSet    = errors.New("the candidateId field must be set")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
