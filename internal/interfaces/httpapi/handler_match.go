package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/ligaescolar/kings-api/internal/usecase"
)

type scheduleMatchRequest struct {
	HomeTeamID string    `json:"homeTeamId" validate:"required"`
	AwayTeamID string    `json:"awayTeamId" validate:"required"`
	KickoffAt  time.Time `json:"kickoffAt" validate:"required"`
}

type appendEventRequest struct {
	Type        string `json:"type" validate:"required"`
	Minute      int    `json:"minute" validate:"gte=0,lte=130"`
	PlayerID    string `json:"playerId" validate:"required"`
	PlayerOutID string `json:"playerOutId"`
	TeamID      string `json:"teamId" validate:"required"`
}

type setLineupsRequest struct {
	TeamID  string                `json:"teamId" validate:"required"`
	Players []lineupPlayerRequest `json:"players" validate:"required,min=1,dive"`
}

type lineupPlayerRequest struct {
	PlayerID  string `json:"playerId" validate:"required"`
	IsStarter bool   `json:"isStarter"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	limit, err := queryLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	matches, err := h.services.Matches.ListMatches(ctx, status, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	detail, err := h.services.Matches.MatchDetail(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "match detail failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(detail))
}

func (h *Handler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleMatch")
	defer span.End()

	var req scheduleMatchRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.services.Matches.ScheduleMatch(ctx, usecase.ScheduleMatchInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		KickoffAt:  req.KickoffAt,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule match failed", "home", req.HomeTeamID, "away", req.AwayTeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(m))
}

func (h *Handler) AppendMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AppendMatchEvent")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req appendEventRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	ev, err := h.services.Matches.AppendEvent(ctx, usecase.AppendEventInput{
		MatchID:     matchID,
		Type:        req.Type,
		Minute:      req.Minute,
		PlayerID:    req.PlayerID,
		PlayerOutID: req.PlayerOutID,
		TeamID:      req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "append match event failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(ev))
}

func (h *Handler) SetMatchLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetMatchLineups")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req setLineupsRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	players := make([]usecase.LineupPlayerInput, 0, len(req.Players))
	for _, p := range req.Players {
		players = append(players, usecase.LineupPlayerInput{PlayerID: p.PlayerID, IsStarter: p.IsStarter})
	}

	if err := h.services.Matches.SetLineups(ctx, usecase.SetLineupsInput{
		MatchID: matchID,
		TeamID:  req.TeamID,
		Players: players,
	}); err != nil {
		h.logger.WarnContext(ctx, "set lineups failed", "match_id", matchID, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}
