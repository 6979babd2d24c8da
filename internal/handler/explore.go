package handler

import (
	"net/http"

	"github.com/osse101/PetBot_Go/internal/explore"
)

// HandleExplore sends a pet on a walk
// @Summary Explore
// @Description Resolves a random event or a wild battle. Rate limited by the explore cooldown.
// @Tags pets
// @Produce json
// @Param community path string true "Community id"
// @Param owner path string true "Owner id"
// @Success 200 {object} explore.Result
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} CooldownErrorResponse
// @Router /api/v1/pets/{community}/{owner}/explore [post]
func HandleExplore(service explore.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := PetKeyFromPath(w, r)
		if !ok {
			return
		}

		res, err := service.Explore(r.Context(), key)
		if err != nil {
			respondServiceError(w, r, "Explore", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
