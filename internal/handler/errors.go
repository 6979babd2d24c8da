package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/PetBot_Go/internal/cooldown"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/logger"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgPetNotFoundError    = "You don't have a pet here yet. Adopt one first!"
	ErrMsgPetExistsError      = "You already have a pet in this community"
	ErrMsgSpeciesNotFoundErr  = "Unknown species"
	ErrMsgItemNotFoundError   = "That item is not sold in the shop"
	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgOutOfStockError     = "You don't have that item in your backpack"
	ErrMsgNotFoodError        = "That item can't be eaten"
	ErrMsgInvalidQuantityErr  = "Quantity must be positive"
	ErrMsgFinalFormError      = "Your pet is already in its final form"
	ErrMsgLevelTooLowError    = "Your pet is not strong enough to evolve yet"
	ErrMsgSelfDuelError       = "You can't duel yourself"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgOnCooldownError     = "Action is on cooldown. Try again later"
)

// Log messages
const (
	LogMsgServiceError      = "Service error"
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgValidationFailure = "Request validation failed"
	LogMsgPetAdopted        = "Pet adopted"
)

// CooldownErrorResponse carries the remaining wait for rate-limited actions
type CooldownErrorResponse struct {
	Error            string `json:"error"`
	Action           string `json:"action"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

// mapServiceError maps domain errors to an HTTP status and a user-facing
// message. Anything unrecognized is a server error.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, ErrMsgPetNotFoundError
	case errors.Is(err, domain.ErrSpeciesNotFound):
		return http.StatusNotFound, ErrMsgSpeciesNotFoundErr
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrPetAlreadyExists):
		return http.StatusConflict, ErrMsgPetExistsError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusUnprocessableEntity, ErrMsgOutOfStockError
	case errors.Is(err, domain.ErrNotFood):
		return http.StatusUnprocessableEntity, ErrMsgNotFoodError
	case errors.Is(err, domain.ErrAlreadyFinalForm):
		return http.StatusUnprocessableEntity, ErrMsgFinalFormError
	case errors.Is(err, domain.ErrLevelTooLow):
		return http.StatusUnprocessableEntity, ErrMsgLevelTooLowError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityErr
	case errors.Is(err, domain.ErrSelfDuel):
		return http.StatusBadRequest, ErrMsgSelfDuelError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err with request context and writes the mapped
// response. Cooldown errors carry the remaining wait.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceError(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", op, "error", err)
	} else {
		log.Debug(LogMsgServiceError, "operation", op, "error", err, "status", status)
	}

	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		respondJSON(w, status, CooldownErrorResponse{
			Error:            msg,
			Action:           cd.Action,
			RemainingSeconds: int(cd.Remaining.Seconds()),
		})
		return
	}
	respondError(w, status, msg)
}

// Success messages for API responses
const (
	MsgBackpackEmpty = "Your backpack is empty"
)
