package httpapi

import (
	"net/http"

	"github.com/ligaescolar/kings-api/internal/usecase"
)

type publishNewsRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"max=5000"`
}

type createSuspensionRequest struct {
	PlayerID   string `json:"playerId" validate:"required"`
	MatchCount int    `json:"matchCount" validate:"required,gt=0"`
	Reason     string `json:"reason" validate:"max=500"`
}

type createAwardRequest struct {
	Season   string `json:"season" validate:"required,max=20"`
	Category string `json:"category" validate:"required,max=120"`
	PlayerID string `json:"playerId"`
	TeamID   string `json:"teamId"`
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	limit, err := queryLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.News.ListNews(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]newsDTO, 0, len(items))
	for _, n := range items {
		out = append(out, newsToDTO(n))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) PublishNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishNews")
	defer span.End()

	var req publishNewsRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.services.News.PublishNews(ctx, usecase.PublishNewsInput{Title: req.Title, Body: req.Body})
	if err != nil {
		h.logger.WarnContext(ctx, "publish news failed", "title", req.Title, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, newsToDTO(item))
}

func (h *Handler) ListSuspensions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSuspensions")
	defer span.End()

	suspensions, err := h.services.Discipline.ListSuspensions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list suspensions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]suspensionDTO, 0, len(suspensions))
	for _, s := range suspensions {
		items = append(items, suspensionToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSuspension(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSuspension")
	defer span.End()

	var req createSuspensionRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	s, err := h.services.Discipline.CreateSuspension(ctx, usecase.CreateSuspensionInput{
		PlayerID:   req.PlayerID,
		MatchCount: req.MatchCount,
		Reason:     req.Reason,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create suspension failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, suspensionToDTO(s))
}

func (h *Handler) ListAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAwards")
	defer span.End()

	awards, err := h.services.Awards.ListAwards(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list awards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]awardDTO, 0, len(awards))
	for _, a := range awards {
		items = append(items, awardToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAward")
	defer span.End()

	var req createAwardRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	a, err := h.services.Awards.CreateAward(ctx, usecase.CreateAwardInput{
		Season:   req.Season,
		Category: req.Category,
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create award failed", "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, awardToDTO(a))
}
