package handler

import (
	"net/http"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/logger"
	"github.com/osse101/PetBot_Go/internal/pet"
)

// QueryOwnerName overrides the owner display name on rendered cards
const QueryOwnerName = "owner_name"

// AdoptRequest is the body of an adoption. Empty species picks one at
// random; empty name uses the species' first stage name.
type AdoptRequest struct {
	OwnerID     string `json:"owner_id" validate:"required,max=64,petid"`
	CommunityID string `json:"community_id" validate:"required,max=64,petid"`
	Name        string `json:"name" validate:"max=32"`
	SpeciesID   string `json:"species_id" validate:"max=64"`
}

// PetHandler serves the adopt, status, card and evolve endpoints
type PetHandler struct {
	service pet.Service
}

// NewPetHandler creates a pet handler
func NewPetHandler(service pet.Service) *PetHandler {
	return &PetHandler{service: service}
}

// HandleAdopt adopts a new pet
// @Summary Adopt a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param request body AdoptRequest true "Adoption"
// @Success 201 {object} domain.Pet
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/pets [post]
func (h *PetHandler) HandleAdopt(w http.ResponseWriter, r *http.Request) {
	var req AdoptRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adopt"); err != nil {
		return
	}

	key := domain.NewPetKey(req.OwnerID, req.CommunityID)
	p, err := h.service.Adopt(r.Context(), key, req.Name, req.SpeciesID)
	if err != nil {
		respondServiceError(w, r, "Adopt", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgPetAdopted, "pet", key.String(), "species", p.SpeciesID)
	respondJSON(w, http.StatusCreated, p)
}

// HandleStatus returns the decay-resolved snapshot of a pet
// @Summary Pet status
// @Tags pets
// @Produce json
// @Param community path string true "Community id"
// @Param owner path string true "Owner id"
// @Success 200 {object} status.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pets/{community}/{owner} [get]
func (h *PetHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	key, ok := PetKeyFromPath(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Status(r.Context(), key)
	if err != nil {
		respondServiceError(w, r, "Status", err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandleCard renders the pet status card
// @Summary Rendered status card
// @Tags pets
// @Produce plain
// @Param community path string true "Community id"
// @Param owner path string true "Owner id"
// @Param owner_name query string false "Owner display name"
// @Success 200 {string} string
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pets/{community}/{owner}/card [get]
func (h *PetHandler) HandleCard(w http.ResponseWriter, r *http.Request) {
	key, ok := PetKeyFromPath(w, r)
	if !ok {
		return
	}

	rendered, err := h.service.Card(r.Context(), key, r.URL.Query().Get(QueryOwnerName))
	if err != nil {
		respondServiceError(w, r, "Card", err)
		return
	}

	w.Header().Set("Content-Type", rendered.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(rendered.Body); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgWriteFailed, "error", err)
	}
}

// HandleEvolve evolves a pet to its next stage
// @Summary Evolve a pet
// @Tags pets
// @Produce json
// @Param community path string true "Community id"
// @Param owner path string true "Owner id"
// @Success 200 {object} pet.EvolveResult
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/pets/{community}/{owner}/evolve [post]
func (h *PetHandler) HandleEvolve(w http.ResponseWriter, r *http.Request) {
	key, ok := PetKeyFromPath(w, r)
	if !ok {
		return
	}

	res, err := h.service.Evolve(r.Context(), key)
	if err != nil {
		respondServiceError(w, r, "Evolve", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
