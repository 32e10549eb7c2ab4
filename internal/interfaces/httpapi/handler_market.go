package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ligaescolar/kings-api/internal/domain/market"
	"github.com/ligaescolar/kings-api/internal/domain/user"
	"github.com/ligaescolar/kings-api/internal/usecase"
)

type submitOfferRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
}

type offerResultDTO struct {
	Transfer    transferDTO    `json:"transfer"`
	Transaction transactionDTO `json:"transaction"`
}

func (h *Handler) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitOffer")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req submitOfferRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.services.Market.SubmitOffer(ctx, usecase.SubmitOfferInput{
		BuyerUserID: principal.UserID,
		PlayerID:    req.PlayerID,
		Price:       req.Price,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit offer failed", "player_id", req.PlayerID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, offerResultDTO{
		Transfer:    transferToDTO(result.Transfer),
		Transaction: transactionToDTO(result.Transaction),
	})
}

// ListTransfers answers the whole market to admins and only the caller's
// team to presidents.
func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfers")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var (
		transfers []market.Transfer
		err       error
	)
	if principal.Role == user.RoleAdmin {
		status := strings.TrimSpace(r.URL.Query().Get("status"))
		transfers, err = h.services.Market.ListTransfers(ctx, status)
	} else {
		transfers, err = h.services.Market.ListTransfersForOwner(ctx, principal.UserID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list transfers failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transferDTO, 0, len(transfers))
	for _, t := range transfers {
		items = append(items, transferToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
