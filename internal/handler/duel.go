package handler

import (
	"net/http"

	"github.com/osse101/PetBot_Go/internal/duel"
)

// DuelRequest names the opponent in the challenger's community
type DuelRequest struct {
	OpponentOwnerID string `json:"opponent_owner_id" validate:"required,max=64,petid"`
}

// HandleDuel settles a duel between the path pet and an opponent
// @Summary Duel
// @Description Battles two pets of the same community. Both must be off the duel cooldown.
// @Tags pets
// @Accept json
// @Produce json
// @Param community path string true "Community id"
// @Param owner path string true "Challenger owner id"
// @Param request body DuelRequest true "Opponent"
// @Success 200 {object} duel.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} CooldownErrorResponse
// @Router /api/v1/pets/{community}/{owner}/duel [post]
func HandleDuel(service duel.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := PetKeyFromPath(w, r)
		if !ok {
			return
		}

		var req DuelRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Duel"); err != nil {
			return
		}

		res, err := service.Duel(r.Context(), key, req.OpponentOwnerID)
		if err != nil {
			respondServiceError(w, r, "Duel", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
