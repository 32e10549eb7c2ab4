package httpapi

import (
	"net/http"
	"strings"

	"github.com/ligaescolar/kings-api/internal/usecase"
)

type createTeamRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	OwnerID    string `json:"ownerId" validate:"omitempty"`
	EurosKings int64  `json:"eurosKings" validate:"gte=0"`
}

type teamDetailDTO struct {
	Team    teamDTO     `json:"team"`
	Players []playerDTO `json:"players"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.services.Teams.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Standings")
	defer span.End()

	teams, err := h.services.Teams.Standings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	detail, err := h.services.Teams.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailDTO{
		Team:    teamToDTO(detail.Team),
		Players: playersToDTO(detail.Players),
	})
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.services.Teams.CreateTeam(ctx, usecase.CreateTeamInput{
		Name:       req.Name,
		OwnerID:    req.OwnerID,
		EurosKings: req.EurosKings,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(t))
}
