package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/cooldown"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/duel"
	"github.com/osse101/PetBot_Go/internal/explore"
	"github.com/osse101/PetBot_Go/internal/pet"
	"github.com/osse101/PetBot_Go/internal/progression"
	"github.com/osse101/PetBot_Go/internal/status"
)

const petPattern = "/api/v1/pets/{community}/{owner}"

var testKey = domain.NewPetKey("u1", "c1")

// serve routes a single request through a chi router so path params resolve
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHandleAdopt(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockPetService)
		expectedStatus int
		verifyBody     func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "Success",
			body: `{"owner_id":"u1","community_id":"c1","name":"Ripple","species_id":"bubble_fish"}`,
			setupMock: func(m *MockPetService) {
				m.On("Adopt", mock.Anything, testKey, "Ripple", "bubble_fish").
					Return(&domain.Pet{OwnerID: "u1", CommunityID: "c1", Name: "Ripple", SpeciesID: "bubble_fish", Level: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
			verifyBody: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var p domain.Pet
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
				assert.Equal(t, "Ripple", p.Name)
				assert.Equal(t, 1, p.Level)
			},
		},
		{
			name:           "Missing owner",
			body:           `{"community_id":"c1"}`,
			setupMock:      func(m *MockPetService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
				assert.Contains(t, resp.Fields, "ownerid")
			},
		},
		{
			name:           "Owner with separator",
			body:           `{"owner_id":"u:1","community_id":"c1"}`,
			setupMock:      func(m *MockPetService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"owner_id":`,
			setupMock:      func(m *MockPetService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, ErrMsgInvalidRequest, decodeError(t, rec))
			},
		},
		{
			name: "Already adopted",
			body: `{"owner_id":"u1","community_id":"c1"}`,
			setupMock: func(m *MockPetService) {
				m.On("Adopt", mock.Anything, testKey, "", "").Return(nil, domain.ErrPetAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			verifyBody: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, ErrMsgPetExistsError, decodeError(t, rec))
			},
		},
		{
			name: "Unknown species",
			body: `{"owner_id":"u1","community_id":"c1","species_id":"dragon"}`,
			setupMock: func(m *MockPetService) {
				m.On("Adopt", mock.Anything, testKey, "", "dragon").
					Return(nil, fmt.Errorf("%w: dragon", domain.ErrSpeciesNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockPetService{}
			tt.setupMock(svc)
			h := NewPetHandler(svc)

			rec := serve(http.MethodPost, "/api/v1/pets", "/api/v1/pets", tt.body, h.HandleAdopt)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.verifyBody != nil {
				tt.verifyBody(t, rec)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockPetService{}
		svc.On("Status", mock.Anything, testKey).Return(&status.Snapshot{Key: testKey, Name: "Ripple", Mood: 90, Satiety: 65}, nil)
		h := NewPetHandler(svc)

		rec := serve(http.MethodGet, petPattern, "/api/v1/pets/c1/u1", "", h.HandleStatus)

		require.Equal(t, http.StatusOK, rec.Code)
		var snap status.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, 65, snap.Satiety)
		assert.Equal(t, 90, snap.Mood)
		svc.AssertExpectations(t)
	})

	t.Run("No pet", func(t *testing.T) {
		svc := &MockPetService{}
		svc.On("Status", mock.Anything, testKey).Return(nil, domain.ErrPetNotFound)
		h := NewPetHandler(svc)

		rec := serve(http.MethodGet, petPattern, "/api/v1/pets/c1/u1", "", h.HandleStatus)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, ErrMsgPetNotFoundError, decodeError(t, rec))
	})

	t.Run("Invalid path", func(t *testing.T) {
		svc := &MockPetService{}
		h := NewPetHandler(svc)

		rec := serve(http.MethodGet, petPattern, "/api/v1/pets/c1/u:1", "", h.HandleStatus)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Status", mock.Anything, mock.Anything)
	})
}

func TestHandleCard(t *testing.T) {
	svc := &MockPetService{}
	svc.On("Card", mock.Anything, testKey, "Ash").
		Return(status.Rendered{ContentType: status.ContentTypeText, Body: []byte("Ripple Lv.1")}, nil)
	h := NewPetHandler(svc)

	rec := serve(http.MethodGet, petPattern+"/card", "/api/v1/pets/c1/u1/card?owner_name=Ash", "", h.HandleCard)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, status.ContentTypeText, rec.Header().Get("Content-Type"))
	assert.Equal(t, "Ripple Lv.1", rec.Body.String())
}

func TestHandleEvolve(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"Success", nil, http.StatusOK, ""},
		{"Level too low", domain.ErrLevelTooLow, http.StatusUnprocessableEntity, ErrMsgLevelTooLowError},
		{"Final form", domain.ErrAlreadyFinalForm, http.StatusUnprocessableEntity, ErrMsgFinalFormError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockPetService{}
			if tt.err == nil {
				svc.On("Evolve", mock.Anything, testKey).Return(&pet.EvolveResult{
					Evolution: progression.Evolution{FromStage: 1, ToStage: 2, ToName: "Tide Fish"},
					Pet:       &domain.Pet{Stage: 2},
				}, nil)
			} else {
				svc.On("Evolve", mock.Anything, testKey).Return(nil, tt.err)
			}
			h := NewPetHandler(svc)

			rec := serve(http.MethodPost, petPattern+"/evolve", "/api/v1/pets/c1/u1/evolve", "", h.HandleEvolve)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeError(t, rec))
			} else {
				assert.Contains(t, rec.Body.String(), `"to_name":"Tide Fish"`)
			}
		})
	}
}

func TestHandleExplore(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockExploreService{}
		svc.On("Explore", mock.Anything, testKey).Return(&explore.Result{
			Outcome: domain.ExploreOutcomeBattle, Won: true, ExpGain: 25, MoneyGain: 13,
		}, nil)

		rec := serve(http.MethodPost, petPattern+"/explore", "/api/v1/pets/c1/u1/explore", "", HandleExplore(svc))

		require.Equal(t, http.StatusOK, rec.Code)
		var res explore.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Won)
		assert.Equal(t, 25, res.ExpGain)
	})

	t.Run("On cooldown", func(t *testing.T) {
		svc := &MockExploreService{}
		svc.On("Explore", mock.Anything, testKey).
			Return(nil, cooldown.ErrOnCooldown{Action: cooldown.ActionExplore, Remaining: time.Minute})

		rec := serve(http.MethodPost, petPattern+"/explore", "/api/v1/pets/c1/u1/explore", "", HandleExplore(svc))

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		var resp CooldownErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgOnCooldownError, resp.Error)
		assert.Equal(t, cooldown.ActionExplore, resp.Action)
		assert.Equal(t, 60, resp.RemainingSeconds)
	})
}

func TestHandleDuel(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockDuelService{}
		svc.On("Duel", mock.Anything, testKey, "u2").Return(&duel.Result{
			Challenger: duel.Side{Won: true, ExpGain: 16, MoneyGain: 20},
			Opponent:   duel.Side{ExpGain: 8},
		}, nil)

		rec := serve(http.MethodPost, petPattern+"/duel", "/api/v1/pets/c1/u1/duel", `{"opponent_owner_id":"u2"}`, HandleDuel(svc))

		require.Equal(t, http.StatusOK, rec.Code)
		var res duel.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Challenger.Won)
		assert.Equal(t, 20, res.Challenger.MoneyGain)
		svc.AssertExpectations(t)
	})

	t.Run("Self duel", func(t *testing.T) {
		svc := &MockDuelService{}
		svc.On("Duel", mock.Anything, testKey, "u1").Return(nil, domain.ErrSelfDuel)

		rec := serve(http.MethodPost, petPattern+"/duel", "/api/v1/pets/c1/u1/duel", `{"opponent_owner_id":"u1"}`, HandleDuel(svc))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, ErrMsgSelfDuelError, decodeError(t, rec))
	})

	t.Run("Missing opponent", func(t *testing.T) {
		svc := &MockDuelService{}

		rec := serve(http.MethodPost, petPattern+"/duel", "/api/v1/pets/c1/u1/duel", `{}`, HandleDuel(svc))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Duel", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestShopHandlers(t *testing.T) {
	t.Run("List shop", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("ListShop").Return([]catalog.ShopItem{{Name: "basic ration", Price: 10, Category: catalog.CategoryFood}})
		h := NewShopHandler(svc)

		rec := serve(http.MethodGet, "/api/v1/shop", "/api/v1/shop", "", h.HandleListShop)

		require.Equal(t, http.StatusOK, rec.Code)
		var items []catalog.ShopItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "basic ration", items[0].Name)
	})

	t.Run("Purchase insufficient funds", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("Purchase", mock.Anything, testKey, "basic ration", 3).Return(nil, domain.ErrInsufficientFunds)
		h := NewShopHandler(svc)

		rec := serve(http.MethodPost, petPattern+"/purchase", "/api/v1/pets/c1/u1/purchase",
			`{"item_name":"basic ration","quantity":3}`, h.HandlePurchase)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, ErrMsgNotEnoughMoneyError, decodeError(t, rec))
	})

	t.Run("Purchase zero quantity", func(t *testing.T) {
		svc := &MockEconomyService{}
		h := NewShopHandler(svc)

		rec := serve(http.MethodPost, petPattern+"/purchase", "/api/v1/pets/c1/u1/purchase",
			`{"item_name":"basic ration","quantity":0}`, h.HandlePurchase)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Feed storage failure hides details", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("Feed", mock.Anything, testKey, "basic ration").
			Return(nil, fmt.Errorf("%w: update pet: connection reset", domain.ErrStorageFailure))
		h := NewShopHandler(svc)

		rec := serve(http.MethodPost, petPattern+"/feed", "/api/v1/pets/c1/u1/feed",
			`{"item_name":"basic ration"}`, h.HandleFeed)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, ErrMsgGenericServerError, decodeError(t, rec))
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("Empty backpack", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("Backpack", mock.Anything, testKey).Return([]domain.InventoryEntry{}, nil)
		h := NewShopHandler(svc)

		rec := serve(http.MethodGet, petPattern+"/backpack", "/api/v1/pets/c1/u1/backpack", "", h.HandleBackpack)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgBackpackEmpty)
	})
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		err            error
		expectedStatus int
	}{
		{domain.ErrPetNotFound, http.StatusNotFound},
		{domain.ErrItemNotFound, http.StatusNotFound},
		{domain.ErrPetAlreadyExists, http.StatusConflict},
		{domain.ErrOutOfStock, http.StatusUnprocessableEntity},
		{domain.ErrNotFood, http.StatusUnprocessableEntity},
		{domain.ErrInvalidQuantity, http.StatusBadRequest},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("opponent: %w", cooldown.ErrOnCooldown{Action: cooldown.ActionDuel}), http.StatusTooManyRequests},
		{fmt.Errorf("wrapped: %w", domain.ErrPetNotFound), http.StatusNotFound},
		{domain.ErrStorageFailure, http.StatusInternalServerError},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			code, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.expectedStatus, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestHealthHandlers(t *testing.T) {
	rec := serve(http.MethodGet, "/healthz", "/healthz", "", HandleHealthz())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", rec.Body.String())

	rec = serve(http.MethodGet, "/readyz", "/readyz", "", HandleReadyz(stubPinger{}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(http.MethodGet, "/readyz", "/readyz", "", HandleReadyz(stubPinger{err: assert.AnError}))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unavailable"`)
}
