package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/logger"
)

// Path parameter names shared by the router and the handlers
const (
	ParamCommunity = "community"
	ParamOwner     = "owner"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type petPath struct {
	OwnerID     string `validate:"required,max=64,petid"`
	CommunityID string `validate:"required,max=64,petid"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "action", actionName)

	return validateRequest(w, r, req, actionName)
}

// PetKeyFromPath reads the owner and community path parameters. If ok is
// false the response has already been written.
func PetKeyFromPath(w http.ResponseWriter, r *http.Request) (domain.PetKey, bool) {
	p := petPath{
		OwnerID:     chi.URLParam(r, ParamOwner),
		CommunityID: chi.URLParam(r, ParamCommunity),
	}
	if p.OwnerID == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, ParamOwner))
		return domain.PetKey{}, false
	}
	if p.CommunityID == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, ParamCommunity))
		return domain.PetKey{}, false
	}
	if err := validateRequest(w, r, &p, "pet path"); err != nil {
		return domain.PetKey{}, false
	}
	return domain.NewPetKey(p.OwnerID, p.CommunityID), true
}

func validateRequest(w http.ResponseWriter, r *http.Request, req interface{}, actionName string) error {
	if err := GetValidator().ValidateStruct(req); err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgValidationFailure, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}
