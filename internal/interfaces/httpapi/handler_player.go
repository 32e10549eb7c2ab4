package httpapi

import (
	"net/http"
	"strings"

	"github.com/ligaescolar/kings-api/internal/usecase"
)

type createPlayerRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	Position     string `json:"position" validate:"required"`
	Price        int64  `json:"price" validate:"gte=0"`
	MarketValue  int64  `json:"marketValue" validate:"gte=0"`
	TeamID       string `json:"teamId"`
	IsOnMarket   bool   `json:"isOnMarket"`
	LinkedUserID string `json:"linkedUserId"`
}

// updatePlayerRequest is a partial patch; absent fields stay untouched.
type updatePlayerRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Position    *string `json:"position"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
	MarketValue *int64  `json:"marketValue" validate:"omitempty,gte=0"`
	TeamID      *string `json:"teamId"`
	IsOnMarket  *bool   `json:"isOnMarket"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	limit, err := queryLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sortKey := strings.TrimSpace(r.URL.Query().Get("sort"))
	players, err := h.services.Players.ListPlayers(ctx, sortKey, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "sort", sortKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	p, err := h.services.Players.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) ListMarket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMarket")
	defer span.End()

	players, err := h.services.Players.Market(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list market failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.services.Players.CreatePlayer(ctx, usecase.CreatePlayerInput{
		Name:         req.Name,
		Position:     req.Position,
		Price:        req.Price,
		MarketValue:  req.MarketValue,
		TeamID:       req.TeamID,
		IsOnMarket:   req.IsOnMarket,
		LinkedUserID: req.LinkedUserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(p))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req updatePlayerRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.services.Players.UpdatePlayer(ctx, playerID, usecase.UpdatePlayerInput{
		Name:        req.Name,
		Position:    req.Position,
		Price:       req.Price,
		MarketValue: req.MarketValue,
		TeamID:      req.TeamID,
		IsOnMarket:  req.IsOnMarket,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}
