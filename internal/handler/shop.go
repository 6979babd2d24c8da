package handler

import (
	"net/http"

	"github.com/osse101/PetBot_Go/internal/economy"
)

// PurchaseRequest buys quantity units of a shop item
type PurchaseRequest struct {
	ItemName string `json:"item_name" validate:"required,max=64"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

// FeedRequest feeds one unit of a backpack item
type FeedRequest struct {
	ItemName string `json:"item_name" validate:"required,max=64"`
}

// ShopHandler serves the shop and backpack endpoints
type ShopHandler struct {
	service economy.Service
}

// NewShopHandler creates a shop handler
func NewShopHandler(service economy.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

// HandleListShop lists the shop catalog
// @Summary List shop items
// @Tags shop
// @Produce json
// @Success 200 {array} catalog.ShopItem
// @Router /api/v1/shop [get]
func (h *ShopHandler) HandleListShop(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.ListShop())
}

// HandlePurchase buys items into the pet's backpack
// @Summary Purchase items
// @Tags shop
// @Accept json
// @Produce json
// @Param community path string true "Community id"
// @Param owner path string true "Owner id"
// @Param request body PurchaseRequest true "Purchase"
// @Success 200 {object} economy.PurchaseResult
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/pets/{community}/{owner}/purchase [post]
func (h *ShopHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	key, ok := PetKeyFromPath(w, r)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
		return
	}

	res, err := h.service.Purchase(r.Context(), key, req.ItemName, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Purchase", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleFeed feeds the pet from its backpack
// @Summary Feed
// @Tags shop
// @Accept json
// @Produce json
// @Param community path string true "Community id"
// @Param owner path string true "Owner id"
// @Param request body FeedRequest true "Item"
// @Success 200 {object} economy.FeedResult
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/pets/{community}/{owner}/feed [post]
func (h *ShopHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	key, ok := PetKeyFromPath(w, r)
	if !ok {
		return
	}

	var req FeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Feed"); err != nil {
		return
	}

	res, err := h.service.Feed(r.Context(), key, req.ItemName)
	if err != nil {
		respondServiceError(w, r, "Feed", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleBackpack lists the pet's backpack
// @Summary Backpack contents
// @Tags shop
// @Produce json
// @Param community path string true "Community id"
// @Param owner path string true "Owner id"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pets/{community}/{owner}/backpack [get]
func (h *ShopHandler) HandleBackpack(w http.ResponseWriter, r *http.Request) {
	key, ok := PetKeyFromPath(w, r)
	if !ok {
		return
	}

	items, err := h.service.Backpack(r.Context(), key)
	if err != nil {
		respondServiceError(w, r, "Backpack", err)
		return
	}

	resp := DataResponse{Data: items}
	if len(items) == 0 {
		resp.Message = MsgBackpackEmpty
	}
	respondJSON(w, http.StatusOK, resp)
}
