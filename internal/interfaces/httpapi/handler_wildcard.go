package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ligaescolar/kings-api/internal/domain/wildcard"
	"github.com/ligaescolar/kings-api/internal/usecase"
)

type createWildcardRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=500"`
	Effect      string `json:"effect" validate:"max=200"`
	Price       int64  `json:"price" validate:"gte=0"`
	TeamID      string `json:"teamId" validate:"required"`
}

func (h *Handler) ListWildcards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWildcards")
	defer span.End()

	var (
		wildcards []wildcard.Wildcard
		err       error
	)
	if teamID := strings.TrimSpace(r.URL.Query().Get("teamId")); teamID != "" {
		wildcards, err = h.services.Wildcards.ListWildcardsByTeam(ctx, teamID)
	} else {
		wildcards, err = h.services.Wildcards.ListWildcards(ctx)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list wildcards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]wildcardDTO, 0, len(wildcards))
	for _, wc := range wildcards {
		items = append(items, wildcardToDTO(wc))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateWildcard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateWildcard")
	defer span.End()

	var req createWildcardRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	wc, err := h.services.Wildcards.CreateWildcard(ctx, usecase.CreateWildcardInput{
		Name:        req.Name,
		Description: req.Description,
		Effect:      req.Effect,
		Price:       req.Price,
		TeamID:      req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create wildcard failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, wildcardToDTO(wc))
}

func (h *Handler) UseWildcard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UseWildcard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	wildcardID := strings.TrimSpace(r.PathValue("wildcardID"))
	wc, err := h.services.Wildcards.UseWildcard(ctx, principal.UserID, wildcardID)
	if err != nil {
		h.logger.WarnContext(ctx, "use wildcard failed", "wildcard_id", wildcardID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wildcardToDTO(wc))
}
